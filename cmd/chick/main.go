// chick is Jumping Chick: jump over the eggs, don't touch them.
//
// Usage:
//
//	chick                   - Play in the terminal (same as "chick play")
//	chick play              - Play in the terminal
//	chick window            - Play in a desktop window
//	chick headless          - Run without a display and print a report
//	chick version           - Print the version
//
// Controls: Up/Space/W to jump, Q/Esc/Ctrl+C to quit.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumping-chick/internal/config"
	"github.com/vovakirdan/jumping-chick/internal/games/chick"
	"github.com/vovakirdan/jumping-chick/internal/platform/tui"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "chick",
})

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An interrupt is a normal way to stop; only real failures exit 1.
	if err := rootCmd.ExecuteContext(ctx); err != nil && !tui.Interrupted(err) {
		logger.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chick",
	Short: "Jumping Chick - jump over the eggs",
	Long: `Jumping Chick is a one-button game. The chick stands on the grass
while eggs roll in from the right. Jump over an egg to score a point;
touch one and the game is over.

Available commands:
  play      - Play in the terminal (default)
  window    - Play in a desktop window
  headless  - Run without a display and print a report
  version   - Print the version

Examples:
  chick
  chick window
  chick headless --ticks 3600 --autopilot --png last.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(versionCmd)
}

// newSession loads the embedded constants and starts a session.
// Invalid constants are a fatal startup error.
func newSession() (*chick.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return chick.New(cfg)
}
