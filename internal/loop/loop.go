// Package loop drives a game session at a fixed rate: drain input, update,
// draw, then wait for the next tick.
package loop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/games/chick"
	"github.com/vovakirdan/jumping-chick/internal/render"
)

// ErrQuit is returned by Step once the session has asked to exit.
var ErrQuit = errors.New("loop: quit requested")

// Source yields the input events gathered since the previous call.
type Source interface {
	Poll() []core.Event
}

// Clock caps the iteration rate and hands out the duration of each tick.
type Clock interface {
	Wait(ctx context.Context) error
	Next() time.Duration
}

// Loop runs one session.
type Loop struct {
	session *chick.Session
	logger  *log.Logger
	state   chick.RunState // State observed after the previous Step
}

// New creates a loop for session. A nil logger discards output.
func New(session *chick.Session, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		session: session,
		logger:  logger,
		state:   session.State(),
	}
}

// Session returns the driven session.
func (l *Loop) Session() *chick.Session {
	return l.session
}

// Restart resets the session to a fresh run.
func (l *Loop) Restart() {
	l.session.Reset()
	l.state = l.session.State()
	l.logger.Info("reset")
}

// Step runs one iteration: events, update, draw. A quit event still lets
// the iteration finish; ErrQuit is returned after the frame is drawn.
func (l *Loop) Step(events []core.Event, dt time.Duration, dst render.Surface) error {
	s := l.session

	s.HandleEvents(events)
	s.Update(dt)

	if st := s.State(); st != l.state {
		if st == chick.GameOver {
			status := s.Status()
			l.logger.Info("game over", "score", status.Score, "ticks", status.Ticks)
		}
		l.state = st
	}

	if err := s.Draw(dst); err != nil {
		return err
	}

	if s.QuitRequested() {
		l.logger.Info("quit", "score", s.Score(), "state", s.State())
		return ErrQuit
	}
	return nil
}

// Run steps until quit, a Step error, or ctx cancellation at the rate cap.
// Quit and cancellation both end the run with a nil error.
func (l *Loop) Run(ctx context.Context, src Source, dst render.Surface, clk Clock) error {
	for {
		if err := l.Step(src.Poll(), clk.Next(), dst); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		if err := clk.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				l.logger.Info("interrupted", "reason", ctx.Err(), "score", l.session.Score(), "state", l.session.State())
				return nil
			}
			return err
		}
	}
}
