// Package tui provides the Bubble Tea front-end: key-press input, a colored
// board view, and a timed restart after a loss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RestartMsg asks the model to start a new game after a loss.
// Game is the game number that was lost, so stale messages are ignored.
type RestartMsg struct {
	Game int
}

// restartCmd returns a command that sends a RestartMsg after the delay.
func restartCmd(delay time.Duration, game int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RestartMsg{Game: game}
	})
}
