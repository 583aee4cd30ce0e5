package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcticode/icebreaker/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the recorded match history",
	Long: `Display win totals and the most recent matches.

Examples:
  icebreaker scores
  icebreaker scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of matches to show")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	wins, err := store.WinCounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving win counts: %v\n", err)
		os.Exit(1)
	}

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	names := [2]string{cfg.Players.Zero.Name, cfg.Players.One.Name}

	fmt.Println("Match History")
	fmt.Println()
	fmt.Printf("%s: %d wins   %s: %d wins\n", names[0], wins[0], names[1], wins[1])
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'icebreaker play' to record the first match!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "#", "Winner", "Tiles", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "----", "------", "-----", "----", "----")

	for i, m := range matches {
		name := fmt.Sprintf("PLAYER %d", m.Winner)
		if m.Winner == 0 || m.Winner == 1 {
			name = names[m.Winner]
		}
		dur := time.Duration(m.DurationSecs) * time.Second
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %-8s  %s\n", i+1, name, m.TilesBroken, dur, dateStr)
	}
}
