package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types.
//
// It is backed by map[T]struct{} and is mutable: Add and Delete modify the
// set in place. A Set is not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
//
// Parameters:
//   - data: zero or more elements to initialize the set with.
//
// Returns:
//   - A Set containing the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
//
// Parameters:
//   - values: elements to add to the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
//
// Parameters:
//   - values: elements to remove from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is in the set.
//
// Parameters:
//   - v: the element to look up.
//
// Returns:
//   - true when v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Clone returns a shallow copy of the set.
//
// Returns:
//   - A new Set with the same elements; mutating it leaves s unchanged.
func (s Set[T]) Clone() Set[T] {
	return maps.Clone(s)
}

// Difference returns the elements of s that are not in other.
//
// Parameters:
//   - other: the set whose elements are excluded.
//
// Returns:
//   - A new Set holding s minus other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if !other.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// ToIter returns an iterator over all elements in the set.
//
// Returns:
//   - A Seq[T] iterator that yields every element once, in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns a slice containing all elements in the set.
//
// Returns:
//   - A slice of all elements in the set, in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}
