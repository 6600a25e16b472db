// Package timer contains the domain logic for category countdown timers: the
// Timer entity, the typed Config used to create one, and the Store state
// machine that applies single-timer and category-wide transitions.
//
// Maintenance notes:
//   - Store is not goroutine-safe. The engine package owns the single lock
//     that serializes commands and ticks; keep all mutations behind it.
//   - Timer values handed out by the Store are copies. Mutating them does
//     not change the collection.
package timer

// Status defines the possible states of a timer. The string values are
// the ones written to storage.
type Status string

const (
	StatusPaused    Status = "Paused"
	StatusRunning   Status = "Running"
	StatusCompleted Status = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPaused, StatusRunning, StatusCompleted:
		return true
	}
	return false
}

// Timer represents a single countdown's state.
type Timer struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Category           string `json:"category"`
	Duration           int    `json:"duration"`
	Remaining          int    `json:"remaining"`
	Status             Status `json:"status"`
	HalfwayAlert       bool   `json:"halfwayAlert"`
	HalfAlertTriggered bool   `json:"halfAlertTriggered"`
}

// HalfTime is the remaining value at which the halfway event fires.
func (t Timer) HalfTime() int {
	return t.Duration / 2
}

// Progress returns remaining/duration in [0, 1].
func (t Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	p := float64(t.Remaining) / float64(t.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// reset puts the timer back to its initial state.
func (t *Timer) reset() {
	t.Remaining = t.Duration
	t.Status = StatusPaused
	t.HalfAlertTriggered = false
}

// start begins the countdown unless the run is already over.
func (t *Timer) start() bool {
	if t.Status != StatusPaused {
		return false
	}
	t.Status = StatusRunning
	return true
}

// pause freezes a running countdown.
func (t *Timer) pause() bool {
	if t.Status != StatusRunning {
		return false
	}
	t.Status = StatusPaused
	return true
}

// tick processes one second of time passing. It returns the event the
// transition produced, if any.
func (t *Timer) tick() (EventKind, bool) {
	if t.Status != StatusRunning {
		return "", false
	}
	if t.Remaining > 0 {
		t.Remaining--
		if t.Remaining == t.HalfTime() && t.HalfwayAlert && !t.HalfAlertTriggered {
			t.HalfAlertTriggered = true
			return EventHalfway, true
		}
		return "", false
	}
	t.Status = StatusCompleted
	return EventCompleted, true
}
