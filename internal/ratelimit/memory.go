package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Sweep expired entries once per this many updates.
const sweepInterval = 5000

// MemoryStore is a mutex-guarded fixed-window counter table. Expired entries
// are swept opportunistically during updates so sustained unique-identity
// traffic cannot grow the map without bound.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	sweepN  uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return Entry{}, false, nil
	}

	return *e, true, nil
}

func (m *MemoryStore) IncrementOrReset(_ context.Context, key string, window time.Duration, now time.Time) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Run the sweep before touching the requested key so a stale entry for
	// that key is never refreshed past eviction.
	m.sweepN++
	if m.sweepN >= sweepInterval {
		for k, e := range m.entries {
			if now.After(e.ResetAt) {
				delete(m.entries, k)
			}
		}
		m.sweepN = 0
	}

	e, ok := m.entries[key]
	if !ok || now.After(e.ResetAt) {
		e = &Entry{Count: 1, ResetAt: now.Add(window)}
		m.entries[key] = e
		return *e, nil
	}

	e.Count++
	return *e, nil
}

// Len reports the number of tracked identities.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
