package domain

import "iter"

// MapOfSets is a one-to-many index from a key to a set of values.
// Each set iterates in insertion order.
type MapOfSets[K comparable, V comparable] struct {
	sets map[K]*orderedSet[V]
	keys []K
}

type orderedSet[V comparable] struct {
	index map[V]struct{}
	items []V
}

// NewMapOfSets creates an empty MapOfSets.
func NewMapOfSets[K comparable, V comparable]() *MapOfSets[K, V] {
	return &MapOfSets[K, V]{
		sets: make(map[K]*orderedSet[V]),
	}
}

// Put adds v to the set of k and returns the size of that set afterwards.
// Adding a value that is already present has no effect.
func (m *MapOfSets[K, V]) Put(k K, v V) int {
	set, ok := m.sets[k]
	if !ok {
		set = &orderedSet[V]{index: make(map[V]struct{})}
		m.sets[k] = set
		m.keys = append(m.keys, k)
	}
	if _, exists := set.index[v]; !exists {
		set.index[v] = struct{}{}
		set.items = append(set.items, v)
	}
	return len(set.items)
}

// PutAll adds every value of vs to the set of k and returns the size of that set afterwards.
func (m *MapOfSets[K, V]) PutAll(k K, vs iter.Seq[V]) int {
	n := m.Len(k)
	for v := range vs {
		n = m.Put(k, v)
	}
	return n
}

// Get returns the values of k in insertion order.
func (m *MapOfSets[K, V]) Get(k K) iter.Seq[V] {
	return func(yield func(V) bool) {
		set, ok := m.sets[k]
		if !ok {
			return
		}
		for _, v := range set.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether k has at least one value.
func (m *MapOfSets[K, V]) Contains(k K) bool {
	_, ok := m.sets[k]
	return ok
}

// Len returns the number of values of k.
func (m *MapOfSets[K, V]) Len(k K) int {
	if set, ok := m.sets[k]; ok {
		return len(set.items)
	}
	return 0
}

// Remove drops k and all of its values.
func (m *MapOfSets[K, V]) Remove(k K) {
	if _, ok := m.sets[k]; !ok {
		return
	}
	delete(m.sets, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in the order they were first added.
func (m *MapOfSets[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Size returns the number of keys.
func (m *MapOfSets[K, V]) Size() int {
	return len(m.sets)
}
