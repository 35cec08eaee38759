package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/artshelf/internal/gallery"
)

// Snapshot is the catalog as last loaded.
type Snapshot struct {
	Products            []gallery.Product
	Source              string
	LastLoaded          time.Time
	LastError           error
	ConsecutiveFailures int // reload failures since the last good load
}

// Degraded reports whether the latest reload failed and stale data is served.
func (s Snapshot) Degraded() bool {
	return s.ConsecutiveFailures > 0
}

// Store coordinates concurrent access to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the products. When err is non-nil the previous products are
// kept and the error is recorded.
func (s *Store) Update(products []gallery.Product, source string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Products = gallery.CloneProducts(products)
	s.snapshot.Source = source
	s.snapshot.LastError = nil
	s.snapshot.LastLoaded = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Products = gallery.CloneProducts(s.snapshot.Products)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Lookup returns copies of the products whose ID equals id, in catalog order.
func (s *Store) Lookup(id string) []gallery.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []gallery.Product
	for _, p := range s.snapshot.Products {
		if p.ID == id {
			out = append(out, p)
		}
	}
	return gallery.CloneProducts(out)
}

// Len returns the number of products currently served.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Products)
}
