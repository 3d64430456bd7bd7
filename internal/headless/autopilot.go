// Package headless runs a session without a display, for smoke runs,
// benchmarks and frame captures.
package headless

import (
	"github.com/vovakirdan/jumping-chick/internal/core"
	"github.com/vovakirdan/jumping-chick/internal/games/chick"
)

// jumpGap is how close (in logical units) the next egg's left edge may get
// to the chick's right edge before the autopilot jumps. At the default
// speed the chick then clears the egg with room to spare on both sides.
const jumpGap = 84

// Autopilot is a loop.Source that plays the session: it jumps when the
// next egg gets close. After limit polls it yields quit; limit <= 0 runs
// until the caller stops the loop.
type Autopilot struct {
	session *chick.Session
	limit   int
	polls   int
	jumps   int
	enabled bool
}

// NewAutopilot creates a source for session. With enabled false it never
// jumps, which is handy for idle runs.
func NewAutopilot(session *chick.Session, limit int, enabled bool) *Autopilot {
	return &Autopilot{session: session, limit: limit, enabled: enabled}
}

// Poll returns this tick's input.
func (a *Autopilot) Poll() []core.Event {
	a.polls++
	if a.limit > 0 && a.polls > a.limit {
		return []core.Event{core.QuitEvent()}
	}
	if !a.enabled || !a.shouldJump() {
		return nil
	}
	a.jumps++
	return []core.Event{core.KeyDownEvent(core.KeyUp)}
}

func (a *Autopilot) shouldJump() bool {
	if a.session.State() != chick.Running {
		return false
	}
	p := a.session.Player()
	if p.Airborne {
		return false
	}

	front := p.X + p.Width
	for _, e := range a.session.Eggs() {
		if e.Box.X < front {
			continue
		}
		// Eggs are in spawn order, so the first one ahead is the nearest.
		return e.Box.X-front <= jumpGap
	}
	return false
}

// Jumps returns how many jumps were requested.
func (a *Autopilot) Jumps() int {
	return a.jumps
}

// Polls returns how many times Poll was called.
func (a *Autopilot) Polls() int {
	return a.polls
}
