package search

import "slices"

// Set is an unordered collection of distinct symbol strings.
type Set map[string]struct{}

// NewSet returns a Set holding the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct items.
func (s Set) Len() int {
	return len(s)
}

// Union adds every item of other to s.
func (s Set) Union(other Set) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Items returns the items in no particular order.
func (s Set) Items() []string {
	items := make([]string, 0, len(s))
	for v := range s {
		items = append(items, v)
	}
	return items
}

// Sorted returns the items in byte-wise lexicographic order.
func (s Set) Sorted() []string {
	items := s.Items()
	slices.Sort(items)
	return items
}
