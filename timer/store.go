package timer

import "time"

// Store owns the ordered collection of timers. Operations that reference
// an unknown id or category do nothing and report no change.
type Store struct {
	timers []Timer
	ids    IDSource
	lastID int64
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the clock-derived id source.
func WithIDSource(src IDSource) Option {
	return func(s *Store) { s.ids = src }
}

// WithClock sets the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = ClockIDs(s.now)
	}
	return s
}

// Len returns the number of timers.
func (s *Store) Len() int { return len(s.timers) }

// Timers returns a snapshot of the collection in insertion order.
func (s *Store) Timers() []Timer {
	out := make([]Timer, len(s.timers))
	copy(out, s.timers)
	return out
}

// Get returns a copy of the timer with the given id.
func (s *Store) Get(id int64) (Timer, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.timers[i], true
	}
	return Timer{}, false
}

// HasRunning reports whether any timer is counting down.
func (s *Store) HasRunning() bool {
	for i := range s.timers {
		if s.timers[i].Status == StatusRunning {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range s.timers {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// Load replaces the collection with previously persisted timers. Entries
// that cannot satisfy the timer invariants are skipped; the number skipped
// is returned.
func (s *Store) Load(timers []Timer) int {
	s.timers = s.timers[:0]
	seen := make(map[int64]bool, len(timers))
	skipped := 0
	for _, t := range timers {
		cfg := Config{Name: t.Name, Duration: t.Duration, Category: t.Category}
		if cfg.Validate() != nil || seen[t.ID] {
			skipped++
			continue
		}
		seen[t.ID] = true
		if !t.Status.Valid() {
			t.Status = StatusPaused
		}
		if t.Remaining < 0 {
			t.Remaining = 0
		}
		if t.Remaining > t.Duration {
			t.Remaining = t.Duration
		}
		if t.HalfAlertTriggered && t.Remaining > t.HalfTime() {
			t.HalfAlertTriggered = false
		}
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
		s.timers = append(s.timers, t)
	}
	return skipped
}

// Add validates cfg and appends a new paused timer.
func (s *Store) Add(cfg Config) (Timer, error) {
	if err := cfg.Validate(); err != nil {
		return Timer{}, err
	}
	cfg = cfg.Normalize()

	t := Timer{
		ID:           s.nextID(),
		Name:         cfg.Name,
		Category:     cfg.Category,
		Duration:     cfg.Duration,
		Remaining:    cfg.Duration,
		Status:       StatusPaused,
		HalfwayAlert: cfg.HalfwayAlert,
	}
	s.timers = append(s.timers, t)
	return t, nil
}

func (s *Store) nextID() int64 {
	id := s.ids()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Start sets a paused timer running.
func (s *Store) Start(id int64) bool {
	if i := s.indexOf(id); i >= 0 {
		return s.timers[i].start()
	}
	return false
}

// Pause stops a running timer.
func (s *Store) Pause(id int64) bool {
	if i := s.indexOf(id); i >= 0 {
		return s.timers[i].pause()
	}
	return false
}

// Reset restores remaining, status and the halfway latch. Calling it
// repeatedly is the same as calling it once.
func (s *Store) Reset(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	before := s.timers[i]
	s.timers[i].reset()
	return before != s.timers[i]
}

// StartAll starts every timer in category.
func (s *Store) StartAll(category string) bool {
	return s.eachInCategory(category, (*Timer).start)
}

// PauseAll pauses every timer in category.
func (s *Store) PauseAll(category string) bool {
	return s.eachInCategory(category, (*Timer).pause)
}

// ResetAll resets every timer in category.
func (s *Store) ResetAll(category string) bool {
	return s.eachInCategory(category, func(t *Timer) bool {
		before := *t
		t.reset()
		return before != *t
	})
}

func (s *Store) eachInCategory(category string, fn func(*Timer) bool) bool {
	changed := false
	for i := range s.timers {
		if s.timers[i].Category != category {
			continue
		}
		if fn(&s.timers[i]) {
			changed = true
		}
	}
	return changed
}

// Advance moves every running timer forward by one second. A running timer
// observed at zero remaining completes; it does so one tick after the
// decrement that brought it to zero.
func (s *Store) Advance() TickResult {
	var res TickResult
	at := s.now()
	for i := range s.timers {
		t := &s.timers[i]
		if t.Status != StatusRunning {
			continue
		}
		res.Changed = true
		kind, fired := t.tick()
		if !fired {
			continue
		}
		res.Events = append(res.Events, Event{
			Kind:     kind,
			TimerID:  t.ID,
			Name:     t.Name,
			Category: t.Category,
			At:       at,
		})
	}
	res.Timers = s.Timers()
	return res
}

func (s *Store) indexOf(id int64) int {
	for i := range s.timers {
		if s.timers[i].ID == id {
			return i
		}
	}
	return -1
}
