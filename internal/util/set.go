package util

import (
	"fmt"
	"strings"
)

// OrderedSet is a set of values of type V, each identified by a string key.
// Unlike a plain map, it preserves first-seen insertion order: iterating
// Elements() always yields items in the order Add was first called for each
// distinct key, and re-adding an already-present key is a silent no-op that
// does not change its position.
//
// This is the shape the Earley chart needs for its per-position state sets:
// membership must be checked in O(1) (so duplicate states are never added)
// but the tree builder relies on the order competing completions were first
// discovered in, so a plain map (whose iteration order Go deliberately
// randomizes) cannot be used directly.
type OrderedSet[V any] struct {
	byKey map[string]V
	order []string
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet[V any]() *OrderedSet[V] {
	return &OrderedSet[V]{
		byKey: map[string]V{},
	}
}

// Add inserts val under key if key is not already present. Returns true if
// the set was modified (i.e. key was not already present).
func (s *OrderedSet[V]) Add(key string, val V) bool {
	if _, ok := s.byKey[key]; ok {
		return false
	}
	s.byKey[key] = val
	s.order = append(s.order, key)
	return true
}

// Has returns whether key is present in the set.
func (s *OrderedSet[V]) Has(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

// Get retrieves the value stored under key, along with whether it was
// present.
func (s *OrderedSet[V]) Get(key string) (V, bool) {
	v, ok := s.byKey[key]
	return v, ok
}

// Len returns the number of elements currently in the set.
func (s *OrderedSet[V]) Len() int {
	return len(s.order)
}

// Elements returns the values in the set in first-seen insertion order. The
// returned slice is a fresh copy and is therefore safe to mutate or retain
// even as the set continues to grow.
func (s *OrderedSet[V]) Elements() []V {
	elems := make([]V, len(s.order))
	for i, k := range s.order {
		elems[i] = s.byKey[k]
	}
	return elems
}

// Keys returns the set's keys in first-seen insertion order.
func (s *OrderedSet[V]) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// String renders the set's elements, in insertion order, using fmt's default
// formatting for V.
func (s *OrderedSet[V]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	for i, k := range s.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", s.byKey[k]))
	}
	sb.WriteRune('}')
	return sb.String()
}
