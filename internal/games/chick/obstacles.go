package chick

import (
	"github.com/vovakirdan/jumping-chick/internal/config"
	"github.com/vovakirdan/jumping-chick/internal/core"
)

// Egg is a ground obstacle the chick must jump over.
type Egg struct {
	Box    core.Rect
	Scored bool // Already credited to the score
}

// EggField holds the active eggs in spawn order and moves them.
type EggField struct {
	eggs   []Egg
	width  int
	height int
	speed  int
}

// NewEggField creates an empty field using the egg constants.
func NewEggField(cfg config.EggConfig) *EggField {
	return &EggField{
		eggs:   make([]Egg, 0, 8),
		width:  cfg.Width,
		height: cfg.Height,
		speed:  cfg.Speed,
	}
}

// Reset removes all eggs.
func (f *EggField) Reset() {
	f.eggs = f.eggs[:0]
}

// Spawn appends one unscored egg with its left edge at x, resting on groundY.
func (f *EggField) Spawn(x, groundY int) {
	f.eggs = append(f.eggs, Egg{
		Box: core.NewRect(x, groundY-f.height, f.width, f.height),
	})
}

// Advance moves every egg left by one tick, credits eggs whose right edge
// has just passed strictly left of playerX, and drops eggs that are fully
// off-screen (right edge <= 0). Returns the number of eggs credited.
//
// The work is split in two passes over a snapshot: movement and scoring
// first, then the retained set is materialized. The active slice is never
// filtered while it is being iterated.
func (f *EggField) Advance(playerX int) int {
	moved := make([]Egg, len(f.eggs))
	scored := 0
	for i, e := range f.eggs {
		e.Box = e.Box.Translate(-f.speed, 0)
		if !e.Scored && e.Box.Right() < playerX {
			e.Scored = true
			scored++
		}
		moved[i] = e
	}

	retained := f.eggs[:0]
	for _, e := range moved {
		if e.Box.Right() > 0 {
			retained = append(retained, e)
		}
	}
	f.eggs = retained

	return scored
}

// Collides reports whether r overlaps any egg. Which egg is irrelevant.
func (f *EggField) Collides(r core.Rect) bool {
	for _, e := range f.eggs {
		if r.Intersects(e.Box) {
			return true
		}
	}
	return false
}

// Eggs returns the active eggs in spawn order. Callers must not modify it.
func (f *EggField) Eggs() []Egg {
	return f.eggs
}

// Len returns the number of active eggs.
func (f *EggField) Len() int {
	return len(f.eggs)
}
