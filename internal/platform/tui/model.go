package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// helpHeight is the number of rows reserved below the board for key hints.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing 2048.
type Model struct {
	game     *t2048.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	delay    time.Duration
	seed     int64
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards debug events.
func NewModel(game *t2048.Game, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(rt.ScreenW, max(rt.ScreenH-helpHeight, 0)),
		keys:   NewKeyMap(cfg.Keys),
		help:   help.New(),
		delay:  cfg.RestartDelay,
		seed:   rt.Seed,
		logger: logger,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "game", m.game.Games(), "seed", m.seed)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case RestartMsg:
		// Ignore restarts for a game the player already replaced
		if msg.Game == m.game.Games() && m.game.Status() == t2048.StatusLost {
			m.game.Reset()
			m.logger.Debug("game restarted", "game", m.game.Games())
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit || m.game.Status() == t2048.StatusWon {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionRestart {
		m.game.Reset()
		m.logger.Debug("game restarted", "game", m.game.Games())
		return m, nil
	}

	dir, ok := t2048.DirectionFor(action)
	if !ok {
		return m, nil
	}
	if !m.game.Move(dir) {
		m.logger.Debug("move has no effect", "direction", dir)
		return m, nil
	}
	m.logger.Debug("move", "direction", dir, "score", m.game.Score())

	switch m.game.Status() {
	case t2048.StatusWon:
		m.logger.Debug("game won", "score", m.game.Score(), "moves", m.game.Moves())
	case t2048.StatusLost:
		m.logger.Debug("game lost", "score", m.game.Score(), "high_score", m.game.HighScore())
		return m, restartCmd(m.delay, m.game.Games())
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *t2048.Game, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
