// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Config contains all configuration for a 2048 session.
type Config struct {
	Keys         KeyConfig     `yaml:"keys"`
	RestartDelay time.Duration `yaml:"restart_delay"`
	CellWidth    int           `yaml:"cell_width"`
	HighScore    string        `yaml:"high_score"` // "session" or "game"
}

// KeyConfig maps each player action to a single-character key.
type KeyConfig struct {
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Restart string `yaml:"restart"`
	Quit    string `yaml:"quit"`
}

// High score policies accepted by the high_score field.
const (
	HighScoreSession = "session"
	HighScoreGame    = "game"
)

// named returns the keys paired with their field names, in declaration order.
func (k KeyConfig) named() [][2]string {
	return [][2]string{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"restart", k.Restart},
		{"quit", k.Quit},
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	seen := make(map[string]string)
	for _, kv := range c.Keys.named() {
		name, key := kv[0], kv[1]
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("config: key %s must be a single character, got %q", name, key)
		}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("config: key %q bound to both %s and %s", key, other, name)
		}
		seen[key] = name
	}

	if c.CellWidth < 1 {
		return fmt.Errorf("config: cell_width must be at least 1, got %d", c.CellWidth)
	}
	if c.RestartDelay < 0 {
		return fmt.Errorf("config: restart_delay must not be negative, got %s", c.RestartDelay)
	}

	switch c.HighScore {
	case HighScoreSession, HighScoreGame:
	default:
		return fmt.Errorf("config: high_score must be %q or %q, got %q", HighScoreSession, HighScoreGame, c.HighScore)
	}
	return nil
}
