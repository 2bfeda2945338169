// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"sync"

	"github.com/aniketgond098/servizoapp/models"
)

// Store owns the mutable provider collection. Records keep insertion
// order, Update is the single mutation primitive, and records are never
// deleted: rejection is a reversible flag on the record.
type Store struct {
	mu        sync.RWMutex
	providers []models.ServiceProvider
	version   uint64
}

// NewStore builds a store over the given records, preserving their order.
func NewStore(providers []models.ServiceProvider) *Store {
	s := &Store{providers: make([]models.ServiceProvider, len(providers))}
	copy(s.providers, providers)
	return s
}

// All returns a copy of the catalog in stable insertion order.
func (s *Store) All() []models.ServiceProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ServiceProvider, len(s.providers))
	copy(out, s.providers)
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (models.ServiceProvider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.ServiceProvider{}, false
}

// Update replaces the record matching provider.ID wholesale. It is a no-op
// returning false when no record matches; it never inserts.
func (s *Store) Update(provider models.ServiceProvider) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.providers {
		if p.ID == provider.ID {
			s.providers[i] = provider
			s.version++
			return true
		}
	}
	return false
}

// Version is a monotonic counter bumped on every successful Update. Derived
// views key their memoization on it.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.providers)
}
