package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play with single key presses",
	Long: `Play 2048 full-screen with immediate key presses.

Controls:
  Arrows/WASD  - Swipe
  R            - Restart
  Q/Ctrl+C     - Quit

After a win, any key exits. After a loss a new game starts automatically.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, game, seed, err := setup(logger)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(game, cfg, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
