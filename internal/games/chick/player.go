package chick

import "github.com/vovakirdan/jumping-chick/internal/core"

// Player is the chick. X never changes; Y is the top of the hitbox in
// screen space (down is positive).
type Player struct {
	X        int
	Y        float64
	Vel      float64 // Vertical velocity, units per tick
	Width    int
	Height   int
	Airborne bool
}

// Rect returns the hitbox. Y is truncated to whole units, the same way the
// eggs are stored, so overlap tests are integer-exact.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, int(p.Y), p.Width, p.Height)
}

// Bottom returns the y of the chick's bottom edge.
func (p Player) Bottom() float64 {
	return p.Y + float64(p.Height)
}

// jump starts a jump. Ignored while airborne: no double jump, no stacking.
func (p *Player) jump(strength float64) bool {
	if p.Airborne {
		return false
	}
	p.Airborne = true
	p.Vel = strength
	return true
}

// integrate applies one tick of gravity, then clamps to the ground.
// The clamp runs after integration so a tick can both move and land.
// Reports whether the chick landed this tick.
func (p *Player) integrate(gravity float64, groundY int) bool {
	if p.Airborne {
		p.Vel += gravity
		p.Y += p.Vel
	}

	rest := float64(groundY - p.Height)
	if p.Y >= rest {
		landed := p.Airborne
		p.Y = rest
		p.Vel = 0
		p.Airborne = false
		return landed
	}
	return false
}
