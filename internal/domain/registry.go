package domain

import (
	"errors"
	"sync"
)

// ErrWearerNotFound is returned when a query names a wearer with no recorded data.
var ErrWearerNotFound = errors.New("wearer not found")

// Registry holds the in-memory wearer aggregates, one per wearer ID.
// Ingestion creates wearers on first contact; queries do not.
type Registry struct {
	mu      sync.RWMutex
	wearers map[string]*Wearer
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{wearers: make(map[string]*Wearer)}
}

// GetOrCreate returns the wearer for id, creating it on first contact.
func (r *Registry) GetOrCreate(id string) *Wearer {
	r.mu.RLock()
	wearer, ok := r.wearers[id]
	r.mu.RUnlock()
	if ok {
		return wearer
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if wearer, ok = r.wearers[id]; ok {
		return wearer
	}
	wearer = NewWearer(id)
	r.wearers[id] = wearer
	return wearer
}

// Get returns the wearer for id or ErrWearerNotFound.
func (r *Registry) Get(id string) (*Wearer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wearer, ok := r.wearers[id]
	if !ok {
		return nil, ErrWearerNotFound
	}
	return wearer, nil
}

// Len reports the number of known wearers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.wearers)
}
