// Package chick implements Jumping Chick: a chick standing on the ground
// jumps over eggs that scroll in from the right. Passing an egg scores a
// point, touching one ends the run.
package chick

import (
	"fmt"
	"time"

	"github.com/vovakirdan/jumping-chick/internal/config"
	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/render"
)

// RunState is the two-state lifecycle of a run.
type RunState int

const (
	Running RunState = iota
	GameOver
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Status is a read-only summary of a session.
type Status struct {
	Score   int
	State   RunState
	Eggs    int
	Ticks   int
	Spawned int
	Quit    bool
}

// Session owns all mutable game state. It is driven by a single loop and
// is not safe for concurrent use.
type Session struct {
	cfg     config.ChickConfig
	palette config.Palette

	player Player
	eggs   *EggField
	score  int
	state  RunState

	sinceSpawn time.Duration // Time accumulated toward the next spawn
	quit       bool
	ticks      int // Running ticks since the last Reset
	spawned    int
}

// New creates a session in its initial state.
func New(cfg config.ChickConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		palette: palette,
		eggs:    NewEggField(cfg.Eggs),
	}
	s.Reset()
	return s, nil
}

// Reset restores the initial state: chick on the ground, no eggs, score 0.
// The quit flag survives a reset.
func (s *Session) Reset() {
	s.player = Player{
		X:      s.cfg.Player.X,
		Y:      float64(s.cfg.Ground.Level - s.cfg.Player.Height),
		Width:  s.cfg.Player.Width,
		Height: s.cfg.Player.Height,
	}
	s.eggs.Reset()
	s.score = 0
	s.state = Running
	s.sinceSpawn = 0
	s.ticks = 0
	s.spawned = 0
}

// HandleEvents applies the events gathered since the previous tick.
// Quit is honored in any state. Jump is honored only while running and
// only from the ground.
func (s *Session) HandleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			s.quit = true
		case core.EventKeyDown:
			if ev.Key == core.KeyUp && s.state == Running {
				s.player.jump(s.cfg.Physics.JumpStrength)
			}
		}
	}
}

// Update advances the simulation by one tick. dt is the wall time the tick
// represents and only drives the spawn cadence; motion is per tick.
// Nothing changes once the run is over.
func (s *Session) Update(dt time.Duration) {
	if s.state != Running {
		return
	}
	s.ticks++

	s.sinceSpawn += dt
	period := s.cfg.SpawnPeriod()
	for s.sinceSpawn >= period {
		s.sinceSpawn -= period
		s.eggs.Spawn(s.cfg.Screen.Width, s.cfg.Ground.Level)
		s.spawned++
	}

	s.player.integrate(s.cfg.Physics.Gravity, s.cfg.Ground.Level)

	s.score += s.eggs.Advance(s.player.X)

	if s.eggs.Collides(s.player.Rect()) {
		s.state = GameOver
	}
}

// Draw renders the current frame and presents it. It runs in every state.
func (s *Session) Draw(dst render.Surface) error {
	w, _ := dst.Size()
	pal := s.palette

	dst.Clear(pal.Sky)
	dst.FillRect(0, float64(s.cfg.Ground.Level), float64(w), float64(s.cfg.Ground.Height), pal.Grass)

	s.drawChick(dst)

	for _, e := range s.eggs.Eggs() {
		b := e.Box
		dst.FillEllipse(float64(b.X), float64(b.Y), float64(b.W), float64(b.H), pal.Egg)
		dst.StrokeEllipse(float64(b.X), float64(b.Y), float64(b.W), float64(b.H), 2, pal.EggOutline)
	}

	if s.state == GameOver {
		cx := float64(s.cfg.Screen.Width) / 2
		cy := float64(s.cfg.Screen.Height) / 2
		dst.DrawText("GAME OVER", cx, cy-40, s.cfg.Fonts.GameOverSize, render.AnchorCenter, pal.GameOver)
		dst.DrawText(fmt.Sprintf("Final Score: %d", s.score), cx, cy+20, s.cfg.Fonts.ScoreSize, render.AnchorCenter, pal.GameOver)
	} else {
		dst.DrawText(fmt.Sprintf("Score: %d", s.score), 10, 10, s.cfg.Fonts.ScoreSize, render.AnchorTopLeft, pal.Score)
	}

	return dst.Present()
}

func (s *Session) drawChick(dst render.Surface) {
	p := s.player
	x, y := float64(p.X), p.Y
	w, h := float64(p.Width), float64(p.Height)
	pal := s.palette

	// Body and wing
	dst.FillEllipse(x, y, w, h, pal.Chick)
	dst.FillEllipse(x-10, y+15, 20, 15, pal.Chick)

	dst.FillCircle(x+w*0.7, y+h*0.3, 4, pal.Eye)

	dst.FillPolygon([]core.Point{
		core.Pt(x+w-2, y+20),
		core.Pt(x+w+10, y+25),
		core.Pt(x+w-2, y+30),
	}, pal.Beak)
}

// Score returns the number of eggs passed this run.
func (s *Session) Score() int {
	return s.score
}

// State returns the run state.
func (s *Session) State() RunState {
	return s.state
}

// QuitRequested reports whether a quit event was received.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Player returns a copy of the chick.
func (s *Session) Player() Player {
	return s.player
}

// Eggs returns the active eggs in spawn order. Callers must not modify it.
func (s *Session) Eggs() []Egg {
	return s.eggs.Eggs()
}

// Config returns the constants the session runs with.
func (s *Session) Config() config.ChickConfig {
	return s.cfg
}

// Status returns a summary for logs and reports.
func (s *Session) Status() Status {
	return Status{
		Score:   s.score,
		State:   s.state,
		Eggs:    s.eggs.Len(),
		Ticks:   s.ticks,
		Spawned: s.spawned,
		Quit:    s.quit,
	}
}
