package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumping-chick/internal/games/chick"
	"github.com/vovakirdan/jumping-chick/internal/loop"
	"github.com/vovakirdan/jumping-chick/internal/render"
)

// Options configures a headless run.
type Options struct {
	Ticks     int    // Loop iterations before quitting; must be positive
	Autopilot bool   // Jump over eggs instead of idling
	Realtime  bool   // Pace ticks with the rate-capping clock
	PNGPath   string // Write the final frame here when set
}

// Report summarizes a finished run.
type Report struct {
	Interrupted bool // ctx ended the run before the tick budget
	Iterations  int
	Ticks       int // Ticks the simulation advanced; stops growing at game over
	Spawned     int
	Score       int
	State       chick.RunState
	Jumps       int
	Frames      int
	Elapsed     time.Duration
}

// Run drives session for opts.Ticks iterations and returns the report.
// Cancelling ctx ends the run early; the report covers what ran.
func Run(ctx context.Context, session *chick.Session, logger *log.Logger, opts Options) (Report, error) {
	if opts.Ticks <= 0 {
		return Report{}, fmt.Errorf("headless: ticks must be positive, got %d", opts.Ticks)
	}

	cfg := session.Config()
	canvas, err := render.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return Report{}, fmt.Errorf("headless: %w", err)
	}

	var clk loop.Clock = loop.NewFixedClock(cfg.Screen.TickRate)
	if opts.Realtime {
		clk = loop.NewRateClock(cfg.Screen.TickRate)
	}

	pilot := NewAutopilot(session, opts.Ticks, opts.Autopilot)
	l := loop.New(session, logger)

	start := time.Now()
	if err := l.Run(ctx, pilot, canvas, clk); err != nil {
		return Report{}, fmt.Errorf("headless: %w", err)
	}
	elapsed := time.Since(start)

	if opts.PNGPath != "" {
		if err := canvas.SavePNG(opts.PNGPath); err != nil {
			return Report{}, fmt.Errorf("headless: %w", err)
		}
	}

	st := session.Status()
	return Report{
		Interrupted: ctx.Err() != nil,
		Iterations:  pilot.Polls(),
		Ticks:       st.Ticks,
		Spawned:     st.Spawned,
		Score:       st.Score,
		State:       st.State,
		Jumps:       pilot.Jumps(),
		Frames:      canvas.Frames(),
		Elapsed:     elapsed,
	}, nil
}

// Write prints the report.
func (r Report) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"=== Headless Run Report ===\n"+
			"iterations=%d ticks=%d frames=%d elapsed=%s\n"+
			"eggs_spawned=%d jumps=%d score=%d state=%s interrupted=%t\n",
		r.Iterations, r.Ticks, r.Frames, r.Elapsed.Round(time.Millisecond),
		r.Spawned, r.Jumps, r.Score, r.State, r.Interrupted)
	return err
}
