package storage

import (
	"sync"

	"TimerBoard/history"
	"TimerBoard/timer"
)

// MemoryStore keeps timers and history in process memory. It is used when
// storage.driver is "memory".
type MemoryStore struct {
	mu      sync.Mutex
	timers  []timer.Timer
	records []history.Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load() ([]timer.Timer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]timer.Timer(nil), m.timers...), nil
}

func (m *MemoryStore) Save(timers []timer.Timer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timers = append(m.timers[:0], timers...)
	return nil
}

func (m *MemoryStore) Append(r history.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

func (m *MemoryStore) List() ([]history.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]history.Record(nil), m.records...), nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
