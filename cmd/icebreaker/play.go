package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcticode/icebreaker/internal/core"
	"github.com/arcticode/icebreaker/internal/platform/tui"
	"github.com/arcticode/icebreaker/internal/storage"
)

var flagNoMouse bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local two-player game",
	Long: `Start a local two-player game in the current terminal.

Both players share the keyboard and mouse: click a tile (or move the
cursor with arrows/wasd and press Enter) to move, then click another
tile to break it.

Controls:
  Mouse       - Click tiles and buttons
  Arrows/WASD - Move the cursor
  Enter/Space - Select the cursor tile
  R           - Reset the game
  Q/Esc       - Quit (click twice to confirm)
  Ctrl+C      - Force quit

Examples:
  icebreaker play
  icebreaker play --no-mouse
  icebreaker play --config ./my-config.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable mouse input")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Mouse:   !flagNoMouse,
	}

	// Open match storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, rt)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
