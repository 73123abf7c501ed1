// Package console runs the game as a line-based terminal loop: one line of
// input per turn, the whole board reprinted after every accepted action.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Game is the turn state machine a Session drives.
// *t2048.Game implements it.
type Game interface {
	Reset()
	Move(dir t2048.Direction) bool
	Board() t2048.Board
	Status() t2048.Status
	Score() int
	HighScore() int
	Moves() int
	Games() int
	LastSpawn() t2048.Spawned
}

// Options configures a Session.
type Options struct {
	Config config.Config

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger

	// Sleep pauses after a loss. Nil means time.Sleep.
	Sleep func(time.Duration)

	// Clear emits the clear-screen sequence before each render.
	Clear bool
}

// Session drives a game from line-based input.
type Session struct {
	game   Game
	in     *bufio.Reader
	out    io.Writer
	keys   KeyMap
	cfg    config.Config
	logger *log.Logger
	sleep  func(time.Duration)
	clear  bool
}

// NewSession creates a session reading turns from in and printing to out.
func NewSession(game Game, in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	return &Session{
		game:   game,
		in:     bufio.NewReader(in),
		out:    out,
		keys:   NewKeyMap(opts.Config.Keys),
		cfg:    opts.Config,
		logger: logger,
		sleep:  sleep,
		clear:  opts.Clear,
	}
}

// Run plays until the player quits, wins, or input ends.
// A read error other than end of input is returned.
func (s *Session) Run() error {
	s.logger.Debug("game started", "game", s.game.Games())

	for {
		s.render()

		switch s.game.Status() {
		case t2048.StatusLost:
			s.lose()
			continue
		case t2048.StatusWon:
			s.logger.Debug("game won", "score", s.game.Score(), "moves", s.game.Moves())
			fmt.Fprint(s.out, "\nYou win! :D\n")
			return nil
		}

		quit, err := s.turn()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// turn reads input until an action changes the game.
// Returns true if the player quit or input ended.
func (s *Session) turn() (bool, error) {
	for {
		action, err := s.readAction()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed")
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("console: read input: %w", err)
		}

		switch action {
		case core.ActionQuit:
			s.logger.Debug("quit", "score", s.game.Score())
			return true, nil

		case core.ActionRestart:
			s.game.Reset()
			s.logger.Debug("game restarted", "game", s.game.Games())
			return false, nil
		}

		dir, ok := t2048.DirectionFor(action)
		if !ok {
			s.logger.Debug("input ignored")
			continue
		}
		if !s.game.Move(dir) {
			s.logger.Debug("move has no effect", "direction", dir)
			continue
		}

		spawned := s.game.LastSpawn()
		s.logger.Debug("move",
			"direction", dir,
			"score", s.game.Score(),
			"spawn", spawned.Value,
			"row", spawned.Pos.Row,
			"col", spawned.Pos.Col,
		)
		return false, nil
	}
}

// readAction reads one line and maps its first character.
func (s *Session) readAction() (core.Action, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return core.ActionNone, err
	}
	return s.keys.Lookup(line), nil
}

// lose reports the final score, pauses, and starts a new game.
func (s *Session) lose() {
	score := s.game.Score()
	high := s.game.HighScore()
	s.logger.Debug("game lost", "score", score, "high_score", high, "moves", s.game.Moves())

	fmt.Fprintf(s.out, "\nYou lost :(\nYour score: %d\n", score)
	fmt.Fprintf(s.out, "High score: %d\n\nRestarting in %s...", high, s.cfg.RestartDelay)

	s.sleep(s.cfg.RestartDelay)
	fmt.Fprintln(s.out)
	s.game.Reset()
	s.logger.Debug("game restarted", "game", s.game.Games())
}

// render prints the board.
func (s *Session) render() {
	if s.clear {
		fmt.Fprint(s.out, clearScreen)
	}
	fmt.Fprint(s.out, FormatBoard(s.game.Board(), s.cfg.CellWidth))
}
