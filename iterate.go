package twodict

import "iter"

// Items yields the (key, value) entries oldest first. The sequence is lazy
// and restartable; mutating the dict while ranging over it is undefined.
func (d *Dict[K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key := range d.order.All() {
			if !yield(key, d.forward[key]) {
				return
			}
		}
	}
}

// Backward yields the entries newest first.
func (d *Dict[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key := range d.order.Backward() {
			if !yield(key, d.forward[key]) {
				return
			}
		}
	}
}

// Keys yields the keys in entry order.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return d.order.All()
}

// Values yields the values in entry order.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for key := range d.order.All() {
			if !yield(d.forward[key]) {
				return
			}
		}
	}
}

// Pairs returns an eager snapshot of the entries in order.
func (d *Dict[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, d.Len())
	for key, value := range d.Items() {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: value})
	}

	return pairs
}
