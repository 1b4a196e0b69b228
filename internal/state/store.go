package state

import (
	"sync"
	"time"

	"github.com/vitrineapp/vitrine/internal/catalog"
	"github.com/vitrineapp/vitrine/internal/fakestore"
)

// Snapshot represents the catalog state visible to the UI at one instant.
type Snapshot struct {
	Products    []fakestore.Product
	Params      catalog.FilterParams
	Loaded      bool // at least one fetch succeeded
	LastFetched time.Time
	LastError   error
}

// Store owns the fetched product list and the current filter parameters.
// ReplaceAll is the only way the product list changes; filter parameters
// persist across re-fetches. The store renders nothing and fetches nothing;
// it is passive state read through Snapshot.
type Store struct {
	mu       sync.RWMutex
	products []fakestore.Product
	params   catalog.FilterParams
	loaded   bool
	fetched  time.Time
	lastErr  error
}

// NewStore returns a store with default filter parameters and no products.
func NewStore() *Store {
	return &Store{params: catalog.DefaultParams()}
}

// ReplaceAll discards any previous product list and installs the new one.
// Last write wins; there are no merge semantics.
func (s *Store) ReplaceAll(products []fakestore.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = cloneProducts(products)
	s.loaded = true
	s.fetched = time.Now()
	s.lastErr = nil
}

// RecordFetchError notes a failed fetch without touching the product list.
func (s *Store) RecordFetchError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	s.fetched = time.Now()
}

// SetSearchText updates the search filter. Immediately visible to Snapshot.
func (s *Store) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.SearchText = text
}

// SetCategory updates the active category filter.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if category == "" {
		category = catalog.AllCategories
	}
	s.params.Category = category
}

// SetSortMode updates the sort mode.
func (s *Store) SetSortMode(mode catalog.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Sort = mode
}

// Snapshot returns an independent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Products:    cloneProducts(s.products),
		Params:      s.params,
		Loaded:      s.loaded,
		LastFetched: s.fetched,
		LastError:   s.lastErr,
	}
}

// Lookup finds a product by id in the full list, independent of any filter.
func (s *Store) Lookup(id int) (fakestore.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return fakestore.Product{}, false
}

func cloneProducts(products []fakestore.Product) []fakestore.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]fakestore.Product, len(products))
	copy(dup, products)
	return dup
}
