package util

import (
	"cmp"
	"sort"
)

// UniqueList is a list of distinct values that remembers the order in which
// values were first added.
type UniqueList[V comparable] struct {
	index  map[V]int
	values []V
}

// Instantiates an empty UniqueList object.
func NewUniqueList[V comparable]() *UniqueList[V] {
	return &UniqueList[V]{index: map[V]int{}}
}

// Add appends `value` unless it is already present. Reports whether the value was added.
func (l *UniqueList[V]) Add(value V) bool {
	if _, ok := l.index[value]; ok {
		return false
	}
	l.index[value] = len(l.values)
	l.values = append(l.values, value)
	return true
}

// Contains reports whether `value` has been added.
func (l *UniqueList[V]) Contains(value V) bool {
	_, ok := l.index[value]
	return ok
}

// Index returns the position at which `value` was first added, or -1.
func (l *UniqueList[V]) Index(value V) int {
	if idx, ok := l.index[value]; ok {
		return idx
	}
	return -1
}

// Len returns the number of distinct values.
func (l *UniqueList[V]) Len() int {
	return len(l.values)
}

// Values returns a copy of the values in first-appearance order.
func (l *UniqueList[V]) Values() []V {
	result := make([]V, len(l.values))
	copy(result, l.values)
	return result
}

// Returns the ordered copy of the provided slice, the values are shallow-copied.
func OrderedSlice[V cmp.Ordered](values []V) []V {
	result := make([]V, len(values))
	copy(result, values)
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Convenience function, returning the list of ordered keys of the input map.
func OrderedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return OrderedSlice(keys)
}
