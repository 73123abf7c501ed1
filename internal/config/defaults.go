package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: KeyConfig{
			Up:      "w",
			Down:    "s",
			Left:    "a",
			Right:   "d",
			Restart: "r",
			Quit:    "q",
		},
		RestartDelay: 3 * time.Second,
		CellWidth:    4,
		HighScore:    HighScoreSession,
	}
}
