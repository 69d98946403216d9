package arr

import (
	"fmt"
	"iter"
	"strings"
)

// Groups is an ordered mapping from key to the elements that share it.
// Keys are kept in the order they were first encountered; elements within a
// group keep their input order.
//
// A Groups value is never modified after [GroupBy] returns it and is safe for
// concurrent reads. Accessors hand out copies.
type Groups[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// GroupBy scans items once and appends each element to the group for fn(item),
// creating the group on first use. No element is dropped.
//
// To group by the string form of a field, compose the selectors:
//
//	GroupBy(items, Sprint(Field[Item]("Type")))
func GroupBy[T any, K comparable](items []T, fn func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{groups: make(map[K][]T)}
	for _, item := range items {
		k := fn(item)
		group, ok := g.groups[k]
		if !ok {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(group, item)
	}
	return g
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Keys returns the keys in first-encounter order.
func (g *Groups[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Has reports whether key has a group.
func (g *Groups[K, T]) Has(key K) bool {
	_, ok := g.groups[key]
	return ok
}

// Get returns a copy of the group for key and whether it exists.
func (g *Groups[K, T]) Get(key K) ([]T, bool) {
	group, ok := g.groups[key]
	if !ok {
		return nil, false
	}
	return clone(group), true
}

// All iterates over the groups in key order.
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, k := range g.keys {
			if !yield(k, clone(g.groups[k])) {
				return
			}
		}
	}
}

// Map returns the groups as a plain Go map. Key order is lost.
func (g *Groups[K, T]) Map() map[K][]T {
	out := make(map[K][]T, len(g.keys))
	for k, group := range g.groups {
		out[k] = clone(group)
	}
	return out
}

// Values concatenates every group in key order. The result is a permutation
// of the input passed to [GroupBy].
func (g *Groups[K, T]) Values() []T {
	out := make([]T, 0)
	for _, k := range g.keys {
		out = append(out, g.groups[k]...)
	}
	return out
}

// String renders the groups in key order, e.g. "{x:[1 3] y:[2]}".
func (g *Groups[K, T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, g.groups[k])
	}
	b.WriteByte('}')
	return b.String()
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
