package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/picket/internal/catalog"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Catalog       catalog.Catalog
	Generation    int // Incremented on every successful reload
	LoadedAt      time.Time
	LastError     error
	FailedReloads int // Number of consecutive reload failures
}

// Degraded returns true when reloads have failed repeatedly. A single
// failure is usually an editor caught mid-save and not worth surfacing.
func (s Snapshot) Degraded() bool {
	return s.FailedReloads >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous
// catalog is kept but the error is recorded for visibility.
func (s *Store) Update(cat *catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.FailedReloads++
		return
	}

	if cat != nil {
		s.snapshot.Catalog = cloneCatalog(*cat)
		s.snapshot.Generation++
		s.snapshot.LoadedAt = time.Now()
	}
	s.snapshot.LastError = nil
	s.snapshot.FailedReloads = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = cloneCatalog(s.snapshot.Catalog)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Generation returns the current catalog generation without copying.
func (s *Store) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Generation
}

func cloneCatalog(cat catalog.Catalog) catalog.Catalog {
	dup := cat
	if len(cat.Categories) > 0 {
		dup.Categories = make([]catalog.Category, len(cat.Categories))
		copy(dup.Categories, cat.Categories)
	}
	if len(cat.Items) > 0 {
		dup.Items = make([]catalog.Item, len(cat.Items))
		copy(dup.Items, cat.Items)
	}
	return dup
}
