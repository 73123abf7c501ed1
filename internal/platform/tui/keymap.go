package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding

	// Move summarizes the four direction bindings in the short help.
	Move key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Quit},
	}
}

// NewKeyMap returns bindings for the configured keys plus the arrow keys.
func NewKeyMap(keys config.KeyConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", keys.Up),
			key.WithHelp("↑/"+keys.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", keys.Down),
			key.WithHelp("↓/"+keys.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", keys.Left),
			key.WithHelp("←/"+keys.Left, "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", keys.Right),
			key.WithHelp("→/"+keys.Right, "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys(keys.Restart),
			key.WithHelp(keys.Restart, "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", keys.Quit),
			key.WithHelp(keys.Quit, "quit"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", keys.Up, keys.Down, keys.Left, keys.Right),
			key.WithHelp("↑↓←→/"+keys.Up+keys.Left+keys.Down+keys.Right, "move"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
