// Package window runs Jumping Chick in a desktop window through ebiten.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/games/chick"
	"github.com/vovakirdan/jumping-chick/internal/loop"
	"github.com/vovakirdan/jumping-chick/internal/platform/keynames"
)

// Game adapts a loop to ebiten.Game. ebiten's TPS is the rate cap; each
// Update is one loop iteration drawn into an offscreen frame.
type Game struct {
	ctx     context.Context
	loop    *loop.Loop
	queue   *core.EventQueue
	surface *Surface
	clock   *loop.TickSchedule
	w, h    int
	err     error
}

// Run opens the window and blocks until the session quits, the window is
// closed, or ctx is cancelled.
func Run(ctx context.Context, session *chick.Session, logger *log.Logger) error {
	cfg := session.Config()

	g := &Game{
		ctx:   ctx,
		loop:  loop.New(session, logger),
		queue: core.NewEventQueue(),
		clock: loop.NewTickSchedule(cfg.Screen.TickRate),
		w:     cfg.Screen.Width,
		h:     cfg.Screen.Height,
	}

	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(cfg.Screen.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return g.err
}

// Update gathers input and runs one loop iteration.
func (g *Game) Update() error {
	if g.surface == nil {
		s, err := NewSurface(g.w, g.h)
		if err != nil {
			g.err = err
			return ebiten.Termination
		}
		g.surface = s
	}

	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.QuitEvent())
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		g.queue.Push(keynames.Event(k.String()))
	}

	err := g.loop.Step(g.queue.Poll(), g.clock.Next(), g.surface)
	switch {
	case errors.Is(err, loop.ErrQuit):
		return ebiten.Termination
	case err != nil:
		g.err = err
		return ebiten.Termination
	}
	return nil
}

// Draw shows the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		return
	}
	screen.DrawImage(g.surface.Frame(), nil)
}

// Layout keeps the logical resolution; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}
