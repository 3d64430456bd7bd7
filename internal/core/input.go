package core

// Key identifies a physical key, already abstracted from the frontend's
// own key codes. Only the keys the game reacts to get a name.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // Up arrow - ascend (jump)
	KeyOther     // Any key the game ignores
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the input events a frontend can deliver.
type EventKind int

const (
	EventNone    EventKind = iota
	EventQuit            // Window closed / Ctrl+C
	EventKeyDown         // Key pressed this tick
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "Unknown"
	}
}

// Event is a single input event delivered by a frontend.
type Event struct {
	Kind EventKind
	Key  Key // Set for EventKeyDown
}

// QuitEvent returns a termination request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDownEvent returns a key-press event for k.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// EventQueue collects the events that arrive between two ticks.
// Frontends push as input arrives; the loop drains once per tick so the
// whole batch is applied before physics runs.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 4)}
}

// Push appends an event in arrival order.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Poll implements loop.Source by draining the queue.
func (q *EventQueue) Poll() []Event {
	return q.Drain()
}
