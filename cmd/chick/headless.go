package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumping-chick/internal/headless"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagRealtime  bool
	flagPNG       string
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run without a display and print a report",
	Long: `Run the game loop without a terminal or window.

By default the chick never jumps and the run ends in a game over. With
--autopilot it jumps whenever an egg gets close. Ticks are not paced unless
--realtime is set.

Examples:
  chick headless
  chick headless --ticks 3600 --autopilot
  chick headless --png final.png`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Loop iterations before quitting")
	headlessCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Jump over eggs automatically")
	headlessCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the game's tick rate")
	headlessCmd.Flags().StringVar(&flagPNG, "png", "", "Write the final frame to this PNG file")
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	report, err := headless.Run(cmd.Context(), session, logger, headless.Options{
		Ticks:     flagTicks,
		Autopilot: flagAutopilot,
		Realtime:  flagRealtime,
		PNGPath:   flagPNG,
	})
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout())
}
