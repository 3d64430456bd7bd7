package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumping-chick/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play Jumping Chick.

Controls:
  Up/Space/W   - Jump
  Q/Esc        - Quit (closing the window works too)`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return window.Run(cmd.Context(), session, logger)
}
