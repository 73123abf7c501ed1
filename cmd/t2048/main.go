// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                 - Play in line mode (same as "t2048 play")
//	t2048 play            - Type one command per line: w/a/s/d, r, q
//	t2048 tui             - Play with single key presses and arrow keys
//	t2048 version         - Print version information
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load settings from a YAML file
//	--debug          - Log game events to stderr
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagDebug  bool
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the root command and reports a failure to stderr.
// Returns the process exit code.
func run(stderr io.Writer) int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the classic 2048 puzzle on a 4x4 board.

Slide all tiles in one direction; equal tiles that collide merge into
their sum. Reach 2048 to win. When the board is full and nothing can
move, the game is lost and a new one starts.

Available commands:
  play     - Line mode: type a key and press Enter (default)
  tui      - Key-press mode with arrow keys and colors
  version  - Show version information

Examples:
  t2048
  t2048 play --seed 42
  t2048 tui --config ./my-keys.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events to stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger creates the stderr logger shared by both front-ends.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           log.WarnLevel,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// setup loads configuration and creates a seeded game.
func setup(logger *log.Logger) (config.Config, *t2048.Game, int64, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, 0, err
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "seed", seed, "high_score", cfg.HighScore, "restart_delay", cfg.RestartDelay)

	game := t2048.New(
		rand.New(rand.NewSource(seed)),
		t2048.WithHighScorePolicy(t2048.HighScorePolicy(cfg.HighScore)),
	)
	return cfg, game, seed, nil
}
