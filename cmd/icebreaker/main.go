// icebreaker is a two-player turn-based ice breaking game for the terminal.
//
// Usage:
//
//	icebreaker play     - Play a local two-player game
//	icebreaker scores   - Show the recorded match history
//	icebreaker serve    - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--db <path>      - Set database path (default from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcticode/icebreaker/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icebreaker",
	Short: "Icebreaker - trap your opponent on thin ice",
	Long: `Icebreaker is a two-player turn-based game played on a 6x5 ice floe.

Each turn the active player moves one step (including diagonals) onto an
adjacent intact tile, then breaks any other unoccupied intact tile. A
player with no legal move left is trapped and loses.

Available commands:
  play     - Play a local two-player game
  scores   - View the recorded match history
  serve    - Start SSH server for remote play

Examples:
  icebreaker play
  icebreaker play --config ./my-config.yaml
  icebreaker serve --ssh :2222
  icebreaker scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the YAML config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}
