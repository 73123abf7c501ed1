package main

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/platform/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in line mode",
	Long: `Play 2048 by typing one command per line.

Controls (first character of each line):
  w  - Swipe up
  s  - Swipe down
  a  - Swipe left
  d  - Swipe right
  r  - Restart with an empty board
  q  - Quit

Any other input is ignored. Keys can be changed in the config file.

Examples:
  t2048 play
  t2048 play --seed 42
  printf 'a\nd\nq\n' | t2048 play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, game, _, err := setup(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	session := console.NewSession(game, cmd.InOrStdin(), out, console.Options{
		Config: cfg,
		Logger: logger,
		Clear:  isTerminal(out),
	})

	if err := session.Run(); err != nil {
		// Without input there is no way to continue
		logger.Fatal("game aborted", "err", err)
	}
	return nil
}

// isTerminal reports whether w writes to a terminal.
// Piped or captured output gets no clear-screen sequences.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
