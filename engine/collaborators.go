package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"TimerBoard/timer"
)

// ErrClosed is returned by Execute once the engine has been closed.
var ErrClosed = errors.New("engine closed")

// Persistence loads and saves the timer collection.
type Persistence interface {
	Load() ([]timer.Timer, error)
	Save([]timer.Timer) error
}

// Notifier receives halfway and completion events. Notify runs on the
// side-effect goroutine, never under the engine lock.
type Notifier interface {
	Notify(timer.Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(timer.Event)

// Notify calls f(ev).
func (f NotifierFunc) Notify(ev timer.Event) { f(ev) }

// Notifiers fans an event out to every notifier in order.
type Notifiers []Notifier

// Notify delivers ev to each non-nil notifier.
func (ns Notifiers) Notify(ev timer.Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(ev)
		}
	}
}

// LogNotifier writes every event to the default logger.
type LogNotifier struct{}

// Notify logs ev.
func (LogNotifier) Notify(ev timer.Event) {
	slog.Info("Timer event", "kind", ev.Kind, "timer_id", ev.TimerID, "name", ev.Name, "category", ev.Category)
}

// PersistenceError wraps a failed collaborator call. The in-memory state is
// kept when one occurs.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
