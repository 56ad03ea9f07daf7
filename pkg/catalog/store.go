package catalog

import (
	"sync/atomic"
	"time"
)

// Snapshot is an immutable view of the catalog at one point in time.
type Snapshot struct {
	Products []Product
	LoadedAt time.Time
	Fallback bool // true when the built-in catalog was substituted
}

// Len returns the number of products in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Products)
}

// Store holds the live catalog. Replace swaps the whole snapshot by reference,
// so callers that already took a Snapshot keep working on their copy.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{Products: []Product{}})
	return s
}

// Replace installs a new catalog. The slice is copied; the store never merges.
func (s *Store) Replace(products []Product, fallback bool) *Snapshot {
	cp := make([]Product, len(products))
	copy(cp, products)

	snap := &Snapshot{
		Products: cp,
		LoadedAt: time.Now(),
		Fallback: fallback,
	}
	s.current.Store(snap)
	return snap
}

// Snapshot returns the catalog as of now.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Products is shorthand for Snapshot().Products.
func (s *Store) Products() []Product {
	return s.current.Load().Products
}
