package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumping-chick/internal/core"
)

// Binding is what a terminal key does.
type Binding int

const (
	BindNone Binding = iota
	BindJump
	BindQuit
	BindScreenshot
)

// KeyMapper translates Bubble Tea key messages to bindings and game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map returns the binding for a key.
func (km *KeyMapper) Map(msg tea.KeyMsg) Binding {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return BindQuit
	case "ctrl+s":
		return BindScreenshot
	case "up", "w", " ":
		return BindJump
	}
	return BindNone
}

// Event translates a key into the event the session sees. Screenshot keys
// never reach the session and report false.
func (km *KeyMapper) Event(msg tea.KeyMsg) (core.Event, bool) {
	switch km.Map(msg) {
	case BindQuit:
		return core.QuitEvent(), true
	case BindJump:
		return core.KeyDownEvent(core.KeyUp), true
	case BindScreenshot:
		return core.Event{}, false
	}
	return core.KeyDownEvent(core.KeyOther), true
}
