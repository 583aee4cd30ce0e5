package config

import (
	_ "embed"
)

//go:embed defaults/icebreaker.yaml
var defaultYAML []byte

// Default returns the default Icebreaker configuration.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			Zero: PlayerConfig{Name: "PLAYER 0", Color: "red"},
			One:  PlayerConfig{Name: "PLAYER 1", Color: "blue"},
		},
		UI: UIConfig{
			Mouse:           true,
			GameOverDelayMS: 1200,
		},
		Storage: StorageConfig{
			DBPath: "~/.icebreaker/icebreaker.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
