package console

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
)

// KeyMap translates the first character of an input line into an action.
type KeyMap map[rune]core.Action

// NewKeyMap builds a key map from configured keys.
// Keys are assumed valid (see config.Config.Validate).
func NewKeyMap(keys config.KeyConfig) KeyMap {
	km := make(KeyMap, 6)
	bind := func(key string, a core.Action) {
		if r, size := utf8.DecodeRuneInString(key); size > 0 {
			km[r] = a
		}
	}
	bind(keys.Up, core.ActionUp)
	bind(keys.Down, core.ActionDown)
	bind(keys.Left, core.ActionLeft)
	bind(keys.Right, core.ActionRight)
	bind(keys.Restart, core.ActionRestart)
	bind(keys.Quit, core.ActionQuit)
	return km
}

// Lookup returns the action for an input line.
// Only the first character counts; an empty line maps to ActionNone.
func (km KeyMap) Lookup(line string) core.Action {
	line = strings.TrimRight(line, "\r\n")
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 {
		return core.ActionNone
	}
	return km[r]
}
