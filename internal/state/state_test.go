package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewStartsAtZero(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	require.Equal(t, 0, snap.Counter)
	require.Equal(t, 1, snap.Version)
	require.False(t, snap.LastUpdated.IsZero())
}

func TestUpdateIncrementsTogether(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return now })

	now = now.Add(time.Minute)
	snap := s.Update()

	require.Equal(t, 1, snap.Counter)
	require.Equal(t, 2, snap.Version)
	require.Equal(t, now, snap.LastUpdated)

	// snapshot observes the same values
	require.Equal(t, snap, s.Snapshot())
}

func TestConcurrentUpdatesLoseNothing(t *testing.T) {
	const n = 100
	s := New()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Update()
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Equal(t, n, snap.Counter)
	require.Equal(t, n+1, snap.Version)
}

func TestConcurrentReadersSeeConsistentPairs(t *testing.T) {
	s := New()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			s.Update()
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
			snap := s.Snapshot()
			// version starts one ahead of counter and they move in lockstep
			require.Equal(t, snap.Counter+1, snap.Version)
		}
	}
}

func TestUptime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return now })

	now = now.Add(90 * time.Second)
	require.Equal(t, 90*time.Second, s.Uptime())
}
