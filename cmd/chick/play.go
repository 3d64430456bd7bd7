package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumping-chick/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Jumping Chick in the terminal.

Controls:
  Up/Space/W     - Jump
  Ctrl+S         - Save a text screenshot to ~/.chick/screenshots
  Q/Esc/Ctrl+C   - Quit

Log output is shown after the game exits.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	// Get terminal size early; Bubble Tea sends the real size on start
	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	return tui.Run(cmd.Context(), session, tui.Options{
		Cols:      cols,
		Rows:      rows,
		LogOutput: os.Stderr,
	})
}
