package timer

import "time"

// EventKind defines the type of event a tick can emit.
type EventKind string

const (
	EventHalfway   EventKind = "halfway"
	EventCompleted EventKind = "completed"
)

// Event is a notification produced by Advance.
type Event struct {
	Kind     EventKind
	TimerID  int64
	Name     string
	Category string
	At       time.Time
}

// TickResult is the outcome of one Advance call. Events from the same tick
// are always reported together.
type TickResult struct {
	Timers  []Timer
	Events  []Event
	Changed bool
}
