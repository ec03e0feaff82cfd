// Package state holds the mutable server-side data the cache demos are
// validated against. The store is the only shared mutable resource in the
// application; everything else is computed per request.
package state

import (
	"sync"
	"time"
)

// Snapshot is a consistent, immutable copy of the store at one point in time.
type Snapshot struct {
	Counter     int
	Version     int
	LastUpdated time.Time
}

// Store tracks a counter, a version and the time of the last update.
// Counter and version only ever increase, and always change together:
// a reader never observes one incremented without the other.
type Store struct {
	mu sync.Mutex

	counter     int
	version     int
	lastUpdated time.Time
	startedAt   time.Time

	now func() time.Time
}

// New creates a store with counter 0, version 1 and lastUpdated set to
// the current time.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates a store using the given clock. Tests use this to
// control timestamps.
func NewWithClock(now func() time.Time) *Store {
	t := now()
	return &Store{
		version:     1,
		lastUpdated: t,
		startedAt:   t,
		now:         now,
	}
}

// Snapshot returns a consistent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Counter:     s.counter,
		Version:     s.version,
		LastUpdated: s.lastUpdated,
	}
}

// Update increments counter and version and stamps lastUpdated, all under
// one lock, and returns the resulting snapshot.
func (s *Store) Update() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	s.version++
	s.lastUpdated = s.now()
	return Snapshot{
		Counter:     s.counter,
		Version:     s.version,
		LastUpdated: s.lastUpdated,
	}
}

// Uptime reports how long the store has existed.
func (s *Store) Uptime() time.Duration {
	return s.now().Sub(s.startedAt)
}
