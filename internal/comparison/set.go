// Package comparison holds the bounded collection of builds shown side by side
// and turns it into comparison columns.
package comparison

import (
	"github.com/KirkDiggler/general-configurator/internal/entities"
)

// DefaultCapacity is the number of builds compared when nothing else is configured
const DefaultCapacity = 3

// Set is a bounded, insertion ordered collection of builds, de-duplicated by
// ComparisonKey. It is not safe for concurrent use.
type Set struct {
	generals []*entities.General
	keys     map[string]struct{}
	capacity int
}

// New creates a set. A capacity below one falls back to DefaultCapacity.
func New(capacity int) *Set {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Set{
		keys:     make(map[string]struct{}),
		capacity: capacity,
	}
}

// Add appends g, evicting the oldest build when the set is full.
// Returns false for nil builds and builds whose key is already present.
func (s *Set) Add(g *entities.General) bool {
	if g == nil {
		return false
	}
	key := g.ComparisonKey()
	if _, ok := s.keys[key]; ok {
		return false
	}

	if len(s.generals) >= s.capacity {
		s.Remove(0)
	}
	s.keys[key] = struct{}{}
	s.generals = append(s.generals, g)
	return true
}

// Has reports whether a build with the same key is present
func (s *Set) Has(g *entities.General) bool {
	if g == nil {
		return false
	}
	_, ok := s.keys[g.ComparisonKey()]
	return ok
}

// Remove drops the build at index
func (s *Set) Remove(index int) bool {
	if index < 0 || index >= len(s.generals) {
		return false
	}
	delete(s.keys, s.generals[index].ComparisonKey())
	s.generals = append(s.generals[:index], s.generals[index+1:]...)
	return true
}

// RemoveExact drops the build with the same key as g
func (s *Set) RemoveExact(g *entities.General) bool {
	if g == nil {
		return false
	}
	key := g.ComparisonKey()
	for i, existing := range s.generals {
		if existing.ComparisonKey() == key {
			return s.Remove(i)
		}
	}
	return false
}

// At returns the build at index
func (s *Set) At(index int) (*entities.General, bool) {
	if index < 0 || index >= len(s.generals) {
		return nil, false
	}
	return s.generals[index], true
}

// All returns the builds, oldest first
func (s *Set) All() []*entities.General {
	out := make([]*entities.General, len(s.generals))
	copy(out, s.generals)
	return out
}

// Len is the number of builds held
func (s *Set) Len() int {
	return len(s.generals)
}

// Capacity is the maximum number of builds held
func (s *Set) Capacity() int {
	return s.capacity
}

// SetCapacity changes the bound, dropping the oldest builds that no longer fit.
// Returns how many were dropped. A capacity below one is ignored.
func (s *Set) SetCapacity(capacity int) int {
	if capacity < 1 {
		return 0
	}
	s.capacity = capacity

	removed := 0
	for len(s.generals) > s.capacity {
		s.Remove(0)
		removed++
	}
	return removed
}
