// Package store provides the generic keyed in-memory table backing every
// repository. The store itself carries no locking; each repository owns an
// RWMutex around the read-modify-write sequences that span multiple calls.
package store

import (
	"cmp"
	"slices"
)

// EntityStore is a keyed in-memory table with snapshot reads. Read-back
// ordering is deterministic: All returns values in ascending key order.
type EntityStore[K cmp.Ordered, V any] struct {
	items map[K]V
}

// New creates an empty EntityStore.
func New[K cmp.Ordered, V any]() *EntityStore[K, V] {
	return &EntityStore[K, V]{items: make(map[K]V)}
}

// Put inserts or fully replaces the value at key and returns the stored value.
func (s *EntityStore[K, V]) Put(key K, value V) V {
	s.items[key] = value
	return value
}

// Get returns the value at key and whether it exists.
func (s *EntityStore[K, V]) Get(key K) (V, bool) {
	v, ok := s.items[key]
	return v, ok
}

// All returns a snapshot of the current values in ascending key order.
// The returned slice is detached from the table; later mutations do not
// affect it.
func (s *EntityStore[K, V]) All() []V {
	keys := make([]K, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = s.items[k]
	}
	return values
}

// Remove deletes the value at key. Callers resolve existence first; removing
// a missing key is a no-op.
func (s *EntityStore[K, V]) Remove(key K) {
	delete(s.items, key)
}

// Len returns the number of stored values.
func (s *EntityStore[K, V]) Len() int {
	return len(s.items)
}

// Clear removes every value.
func (s *EntityStore[K, V]) Clear() {
	clear(s.items)
}
