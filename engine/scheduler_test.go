package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

func TestTickSchedulerCallsOncePerTick(t *testing.T) {
	ft := &fakeTicker{ch: make(chan time.Time)}
	calls := make(chan time.Time, 10)
	s := NewTickScheduler(time.Second, func(at time.Time) { calls <- at })
	s.SetTickerFactory(func(d time.Duration) Ticker {
		assert.Equal(t, time.Second, d)
		return ft
	})

	s.Start()
	s.Start()
	require.True(t, s.Running())

	base := time.Unix(100, 0)
	for i := 0; i < 3; i++ {
		ft.ch <- base.Add(time.Duration(i) * time.Second)
	}
	for i := 0; i < 3; i++ {
		select {
		case at := <-calls:
			assert.Equal(t, base.Add(time.Duration(i)*time.Second), at)
		case <-time.After(time.Second):
			t.Fatalf("tick %d not delivered", i)
		}
	}

	s.Stop()
	assert.False(t, s.Running())
	assert.True(t, ft.stopped.Load())

	select {
	case ft.ch <- base:
		t.Fatal("stopped scheduler still receiving ticks")
	case <-time.After(20 * time.Millisecond):
	}
	assert.Len(t, calls, 0)
}

func TestTickSchedulerNeverOverlaps(t *testing.T) {
	var active, maxActive atomic.Int32
	var count atomic.Int32
	s := NewTickScheduler(time.Millisecond, func(time.Time) {
		n := active.Add(1)
		if n > maxActive.Load() {
			maxActive.Store(n)
		}
		time.Sleep(3 * time.Millisecond)
		count.Add(1)
		active.Add(-1)
	})
	s.Start()
	require.Eventually(t, func() bool { return count.Load() >= 5 }, 2*time.Second, time.Millisecond)
	s.Stop()

	after := count.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, count.Load(), "no ticks after Stop returns")
	assert.Equal(t, int32(1), maxActive.Load())
}

func TestTickSchedulerRestart(t *testing.T) {
	var count atomic.Int32
	s := NewTickScheduler(time.Millisecond, func(time.Time) { count.Add(1) })
	s.Start()
	require.Eventually(t, func() bool { return count.Load() > 0 }, time.Second, time.Millisecond)
	s.Stop()
	s.Stop()

	before := count.Load()
	s.Start()
	require.Eventually(t, func() bool { return count.Load() > before }, time.Second, time.Millisecond)
	s.Stop()
}

func TestNewTickSchedulerDefaultsInterval(t *testing.T) {
	s := NewTickScheduler(0, func(time.Time) {})
	assert.Equal(t, time.Second, s.Interval())
}
