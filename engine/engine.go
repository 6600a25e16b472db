// Package engine drives the timer Store: it serializes UI commands and the
// periodic tick behind one lock, and dispatches persistence, history and
// notification side effects after each transition completes.
//
// Maintenance notes:
//   - Side effects are queued while the lock is held so that saves reach
//     storage in the same order the transitions happened. They run on the
//     dispatcher goroutine; a failing or slow collaborator never delays a
//     command or the next tick.
//   - An empty collection is never saved, so a fresh start cannot clobber
//     timers persisted by an earlier session.
package engine

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"TimerBoard/control"
	"TimerBoard/history"
	"TimerBoard/timer"
)

// Options configures an Engine. Nil collaborators are skipped.
type Options struct {
	Persistence     Persistence
	History         history.Log
	Notifier        Notifier
	TickInterval    time.Duration
	TimestampLayout string
}

// Update is published to subscribers after every change.
type Update struct {
	Timers []timer.Timer
	Events []timer.Event
}

// Engine owns the Store and is safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	store     *timer.Store
	opts      Options
	scheduler *TickScheduler
	effects   *dispatcher
	subs      []chan Update
	closed    bool
}

// New creates an engine around store. The scheduler is created stopped.
func New(store *timer.Store, opts Options) *Engine {
	if opts.TimestampLayout == "" {
		opts.TimestampLayout = history.DefaultLayout
	}
	e := &Engine{
		store:   store,
		opts:    opts,
		effects: newDispatcher(),
	}
	e.scheduler = NewTickScheduler(opts.TickInterval, e.tick)
	return e
}

// Scheduler exposes the tick scheduler.
func (e *Engine) Scheduler() *TickScheduler { return e.scheduler }

// Load replaces the collection with the persisted one. On failure the
// store is left as it was.
func (e *Engine) Load() error {
	if e.opts.Persistence == nil {
		return nil
	}
	timers, err := e.opts.Persistence.Load()
	if err != nil {
		perr := &PersistenceError{Op: "load", Err: err}
		slog.Error("Failed to load timers", "error", perr)
		return perr
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	skipped := e.store.Load(timers)
	if skipped > 0 {
		slog.Warn("Skipped malformed persisted timers", "count", skipped)
	}
	slog.Info("Loaded timers", "count", e.store.Len())
	e.publishLocked(Update{Timers: e.store.Timers()})
	return nil
}

// Start begins ticking.
func (e *Engine) Start() {
	e.scheduler.Start()
	slog.Debug("Tick scheduler started", "interval", e.scheduler.Interval())
}

// Stop halts ticking. Commands keep working against the now inert store.
func (e *Engine) Stop() {
	e.scheduler.Stop()
	slog.Debug("Tick scheduler stopped")
}

// Close stops ticking, drains pending side effects and closes subscribers.
func (e *Engine) Close() {
	e.Stop()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	subs := e.subs
	e.subs = nil
	e.mu.Unlock()

	e.effects.close()
	for _, ch := range subs {
		close(ch)
	}
}

// Flush waits for side effects queued so far.
func (e *Engine) Flush() { e.effects.flush() }

// Subscribe registers an observer channel. Sends never block; a full
// channel misses that update.
func (e *Engine) Subscribe(buffer int) <-chan Update {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Update, buffer)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(ch)
		return ch
	}
	e.subs = append(e.subs, ch)
	return ch
}

// Timers returns a snapshot of the collection.
func (e *Engine) Timers() []timer.Timer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Timers()
}

// Categories returns the categories in first-seen order.
func (e *Engine) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Categories()
}

// Execute applies cmd to the store.
func (e *Engine) Execute(cmd control.Command) control.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return control.Result{Err: ErrClosed}
	}

	var res control.Result
	switch cmd.Type {
	case control.CmdAdd:
		t, err := e.store.Add(cmd.Config)
		if err != nil {
			slog.Debug("Rejected new timer", "error", err)
			res.Err = err
		} else {
			res.Timer = t
			res.Changed = true
			slog.Info("Added timer", "timer_id", t.ID, "name", t.Name, "category", t.Category, "duration", t.Duration)
		}
	case control.CmdStart:
		res.Changed = e.store.Start(cmd.TimerID)
	case control.CmdPause:
		res.Changed = e.store.Pause(cmd.TimerID)
	case control.CmdReset:
		res.Changed = e.store.Reset(cmd.TimerID)
	case control.CmdStartAll:
		res.Changed = e.store.StartAll(cmd.Category)
	case control.CmdPauseAll:
		res.Changed = e.store.PauseAll(cmd.Category)
	case control.CmdResetAll:
		res.Changed = e.store.ResetAll(cmd.Category)
	default:
		slog.Warn("Ignoring unknown command", "type", cmd.Type)
	}
	res.Timers = e.store.Timers()

	if res.Changed {
		slog.Debug("Command applied", "command", cmd.Type, "timer_id", cmd.TimerID, "category", cmd.Category)
		e.saveLocked(res.Timers)
		e.publishLocked(Update{Timers: res.Timers})
	}
	return res
}

// tick is the scheduler callback: one Advance per interval, skipped while
// nothing is running.
func (e *Engine) tick(time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.store.HasRunning() {
		return
	}

	res := e.store.Advance()
	for _, ev := range res.Events {
		e.dispatchEventLocked(ev)
	}
	if res.Changed {
		e.saveLocked(res.Timers)
		e.publishLocked(Update{Timers: res.Timers, Events: res.Events})
	}
}

func (e *Engine) dispatchEventLocked(ev timer.Event) {
	slog.Debug("Timer event", "kind", ev.Kind, "timer_id", ev.TimerID, "name", ev.Name)
	logHistory := e.opts.History
	notifier := e.opts.Notifier
	layout := e.opts.TimestampLayout

	e.effects.submit(func() {
		if ev.Kind == timer.EventCompleted && logHistory != nil {
			rec := history.NewRecord(ev.Name, ev.At, layout)
			if err := logHistory.Append(rec); err != nil {
				slog.Error("Failed to append history", "error", &PersistenceError{Op: "append", Err: err}, "name", ev.Name)
			}
		}
		if notifier != nil {
			notifier.Notify(ev)
		}
	})
}

func (e *Engine) saveLocked(timers []timer.Timer) {
	p := e.opts.Persistence
	if p == nil || len(timers) == 0 {
		return
	}
	e.effects.submit(func() {
		if err := p.Save(timers); err != nil {
			slog.Error("Failed to save timers", "error", &PersistenceError{Op: "save", Err: err}, "count", len(timers))
		}
	})
}

func (e *Engine) publishLocked(u Update) {
	for _, ch := range e.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

// History returns the completed-timer log, oldest first.
func (e *Engine) History() ([]history.Record, error) {
	if e.opts.History == nil {
		return nil, nil
	}
	e.Flush()
	records, err := e.opts.History.List()
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return records, nil
}

// ExportHistory writes the log as a JSON array to w. It returns
// history.ErrEmpty when there is nothing to export.
func (e *Engine) ExportHistory(w io.Writer) error {
	records, err := e.History()
	if err != nil {
		return err
	}
	return history.Export(w, records)
}

// ClearHistory wipes the completed-timer log.
func (e *Engine) ClearHistory() error {
	if e.opts.History == nil {
		return nil
	}
	e.Flush()
	if err := e.opts.History.Clear(); err != nil {
		return &PersistenceError{Op: "clear", Err: err}
	}
	slog.Info("Cleared timer history")
	return nil
}
