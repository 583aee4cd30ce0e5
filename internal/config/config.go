// Package config provides YAML-based configuration loading for the
// Icebreaker game: player appearance, UI options and storage paths.
package config

import (
	"time"

	"github.com/arcticode/icebreaker/internal/core"
)

// Config contains all configuration for the Icebreaker game.
type Config struct {
	Players PlayersConfig `yaml:"players"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// PlayersConfig holds per-player display settings.
type PlayersConfig struct {
	Zero PlayerConfig `yaml:"player0"`
	One  PlayerConfig `yaml:"player1"`
}

// PlayerConfig defines how a single player is rendered.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// UIConfig defines presentation options.
type UIConfig struct {
	Mouse           bool `yaml:"mouse"`
	GameOverDelayMS int  `yaml:"game_over_delay_ms"`
}

// StorageConfig defines persistence options.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// GameOverDelay returns the pause shown after a player is trapped,
// before switching to the end screen.
func (u UIConfig) GameOverDelay() time.Duration {
	return time.Duration(u.GameOverDelayMS) * time.Millisecond
}

// ColorForName maps a config color name to a screen color.
// Unknown names fall back to the default color.
func ColorForName(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "blue":
		return core.ColorBlue
	case "cyan":
		return core.ColorCyan
	case "bright_cyan":
		return core.ColorBrightCyan
	case "yellow":
		return core.ColorYellow
	case "green":
		return core.ColorGreen
	case "white":
		return core.ColorWhite
	case "gray":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}
