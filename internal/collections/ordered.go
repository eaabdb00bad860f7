package collections

import "slices"

// OrderedSet is a set that remembers insertion order. Registration lists
// (checkers, disabled checkers) need stable iteration order, so a plain
// map-backed Set is not enough.
type OrderedSet[T comparable] struct {
	members map[T]struct{}
	order   []T
}

// NewOrderedSet creates a new OrderedSet with the given initial values
func NewOrderedSet[T comparable](vs ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{members: make(map[T]struct{})}
	s.Add(vs...)
	return s
}

// Add appends values that are not already present, preserving first-insertion
// order. Re-adding an existing value does not move it.
func (s *OrderedSet[T]) Add(vs ...T) {
	for _, v := range vs {
		if _, ok := s.members[v]; ok {
			continue
		}
		s.members[v] = struct{}{}
		s.order = append(s.order, v)
	}
}

// Remove removes values from the set; missing values are ignored
func (s *OrderedSet[T]) Remove(vs ...T) {
	for _, v := range vs {
		if _, ok := s.members[v]; !ok {
			continue
		}
		delete(s.members, v)
		if i := slices.Index(s.order, v); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	}
}

// Has checks if the set contains the given value
func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of members
func (s *OrderedSet[T]) Len() int {
	return len(s.order)
}

// Members returns the members in insertion order. The returned slice is a
// copy; callers may mutate it freely.
func (s *OrderedSet[T]) Members() []T {
	return slices.Clone(s.order)
}

// Clear removes all members
func (s *OrderedSet[T]) Clear() {
	s.members = make(map[T]struct{})
	s.order = nil
}
