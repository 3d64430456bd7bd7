// Package keynames maps window key names, as ebiten's Key.String reports
// them, to session events. It has no display dependency so the bindings
// can be tested anywhere.
package keynames

import "github.com/vovakirdan/jumping-chick/internal/core"

var bindings = map[string]core.Event{
	"ArrowUp": core.KeyDownEvent(core.KeyUp),
	"Space":   core.KeyDownEvent(core.KeyUp),
	"W":       core.KeyDownEvent(core.KeyUp),
	"Escape":  core.QuitEvent(),
	"Q":       core.QuitEvent(),
}

// Event returns the event for the named key. Unbound keys are a key-down
// of core.KeyOther, which the session ignores.
func Event(name string) core.Event {
	if ev, ok := bindings[name]; ok {
		return ev
	}
	return core.KeyDownEvent(core.KeyOther)
}
