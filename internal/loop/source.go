package loop

import "github.com/vovakirdan/jumping-chick/internal/core"

// ScriptSource replays a fixed sequence: the i-th Poll returns script[i].
// Once the script runs out it yields quit, so a replay always terminates.
type ScriptSource struct {
	script [][]core.Event
	polls  int
}

// NewScriptSource creates a source over script.
func NewScriptSource(script [][]core.Event) *ScriptSource {
	return &ScriptSource{script: script}
}

// Poll returns the next scripted batch.
func (s *ScriptSource) Poll() []core.Event {
	i := s.polls
	s.polls++
	if i >= len(s.script) {
		return []core.Event{core.QuitEvent()}
	}
	return s.script[i]
}

// Polls returns how many batches have been handed out.
func (s *ScriptSource) Polls() int {
	return s.polls
}

var (
	_ Source = (*ScriptSource)(nil)
	_ Source = (*core.EventQueue)(nil)
	_ Clock  = (*RateClock)(nil)
	_ Clock  = FixedClock{}
)
