package state

import (
	"maps"
	"sync"
	"time"

	"github.com/five82/cocktaildb"
)

// Snapshot is the featured-drink data available to the UI.
type Snapshot struct {
	Featured          cocktaildb.Drink
	HasFeatured       bool
	LastUpdated       time.Time
	ConsecutiveMisses int // refreshes in a row that came back empty
}

// IsOffline returns true when the API has come back empty for multiple refreshes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveMisses >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the result of one refresh. A nil drink counts as a miss and
// keeps the previous featured drink on screen.
func (s *Store) Update(drink cocktaildb.Drink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if drink == nil {
		s.snapshot.ConsecutiveMisses++
		return
	}
	s.snapshot.Featured = maps.Clone(drink)
	s.snapshot.HasFeatured = true
	s.snapshot.ConsecutiveMisses = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Featured = maps.Clone(s.snapshot.Featured)
	return snap
}
