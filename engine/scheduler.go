package engine

import (
	"sync"
	"time"
)

// Ticker delivers periodic ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type systemTicker struct{ t *time.Ticker }

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// SystemTicker wraps time.NewTicker.
func SystemTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

// TickScheduler calls onTick once per interval on its own goroutine. Calls
// never overlap: a tick that arrives while onTick is still running is
// dropped by the underlying ticker rather than queued.
type TickScheduler struct {
	mu        sync.Mutex
	interval  time.Duration
	newTicker TickerFactory
	onTick    func(time.Time)
	stopCh    chan struct{}
	done      chan struct{}
	running   bool
}

// NewTickScheduler creates a stopped scheduler.
func NewTickScheduler(interval time.Duration, onTick func(time.Time)) *TickScheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return &TickScheduler{
		interval:  interval,
		newTicker: SystemTicker,
		onTick:    onTick,
	}
}

// SetTickerFactory replaces the ticker source. It takes effect on the next
// Start.
func (s *TickScheduler) SetTickerFactory(f TickerFactory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newTicker = f
}

// Interval returns the tick period.
func (s *TickScheduler) Interval() time.Duration { return s.interval }

// Running reports whether the tick loop is active.
func (s *TickScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start launches the ticking loop. Starting a running scheduler does nothing.
func (s *TickScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.newTicker(s.interval), s.stopCh, s.done)
}

// Stop terminates the ticking loop. When Stop returns no further onTick
// call will start. It must not be called from inside onTick.
func (s *TickScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	done := s.done
	s.mu.Unlock()

	<-done
}

func (s *TickScheduler) run(ticker Ticker, stopCh, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C():
			select {
			case <-stopCh:
				return
			default:
			}
			s.onTick(tickTime)
		}
	}
}
