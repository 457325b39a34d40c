// Package capture holds the in-flight death event context. Death
// notifications from the host can re-enter: a death effect may spawn a
// creature that dies before the outer death finishes processing. A
// single mutable slot would let the nested event clobber the outer
// one, so the context lives on an explicit LIFO stack instead:
// push before processing, pop after, balanced on every path.
package capture

// Event is the captured context of one death notification.
type Event struct {
	TargetID   string
	SpawnLevel int
	BossName   string
}

// Stack is the LIFO of in-flight events. Not safe for concurrent use;
// the engine serializes event handling.
type Stack struct {
	frames []Event
}

// NewStack creates an empty capture stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push records a new in-flight event before its processing begins.
func (s *Stack) Push(e Event) {
	s.frames = append(s.frames, e)
}

// Pop removes the innermost event after its processing finishes.
// Callers pair it with Push via defer so early returns stay balanced.
func (s *Stack) Pop() (Event, bool) {
	if len(s.frames) == 0 {
		return Event{}, false
	}
	e := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return e, true
}

// Current returns the innermost in-flight event without removing it.
func (s *Stack) Current() (Event, bool) {
	if len(s.frames) == 0 {
		return Event{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// Depth returns the number of in-flight events.
func (s *Stack) Depth() int {
	return len(s.frames)
}
