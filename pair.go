package twodict

import "fmt"

// Pair is a single (key, value) entry.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// FromPairs builds a dict by inserting pairs in order. Duplicate keys or
// values resolve like any other assignment: later entries win.
func FromPairs[K, V comparable](pairs []Pair[K, V]) *Dict[K, V] {
	d := New[K, V]()
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}

	return d
}

// FromZip pairs keys[i] with values[i] and inserts them in order. Slices
// of different lengths return ErrLengthMismatch rather than truncating to
// the shorter one.
func FromZip[K, V comparable](keys []K, values []V) (*Dict[K, V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}

	d := New[K, V]()
	for i, k := range keys {
		d.Set(k, values[i])
	}

	return d, nil
}
