package scanner

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts v.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Sorted returns the elements in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Difference returns the elements of a that are not in b, keeping the order of a.
// Repeated elements of a are reported once.
func Difference[T comparable](a []T, b Set[T]) []T {
	return filter(a, func(v T) bool { return !b.Contains(v) })
}

// Intersection returns the elements of a that are also in b, keeping the order of a.
// Repeated elements of a are reported once.
func Intersection[T comparable](a []T, b Set[T]) []T {
	return filter(a, b.Contains)
}

func filter[T comparable](a []T, keep func(T) bool) []T {
	seen := make(Set[T], len(a))
	out := make([]T, 0)
	for _, v := range a {
		if seen.Contains(v) {
			continue
		}
		seen.Add(v)
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Unique returns a without repeated elements, first occurrence wins.
func Unique[T comparable](a []T) []T {
	return filter(a, func(T) bool { return true })
}
