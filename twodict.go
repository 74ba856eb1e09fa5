package twodict

import (
	"fmt"
	"strings"

	"twodict/internal/order"
)

// Dict is a two-way ordered dictionary. It keeps a forward index
// (key -> value), a reverse index (value -> key) and a linked list of live
// keys in insertion order; every mutation updates all three before
// returning, so callers never observe them disagreeing.
type Dict[K, V comparable] struct {
	forward map[K]V
	reverse map[V]K
	order   *order.List[K]
	nodes   map[K]*order.Node[K]
}

// New returns an empty dict.
func New[K, V comparable]() *Dict[K, V] {
	return &Dict[K, V]{
		forward: make(map[K]V),
		reverse: make(map[V]K),
		order:   order.New[K](),
		nodes:   make(map[K]*order.Node[K]),
	}
}

// Len returns the number of live entries.
func (d *Dict[K, V]) Len() int {
	return d.order.Len()
}

// Get returns the value stored under key.
func (d *Dict[K, V]) Get(key K) (V, error) {
	value, ok := d.forward[key]
	if !ok {
		return value, &NotFoundError{Side: KeySide, Elem: key}
	}

	return value, nil
}

// GetByValue returns the key that owns value.
func (d *Dict[K, V]) GetByValue(value V) (K, error) {
	key, ok := d.reverse[value]
	if !ok {
		return key, &NotFoundError{Side: ValueSide, Elem: value}
	}

	return key, nil
}

// Lookup is the comma-ok form of Get.
func (d *Dict[K, V]) Lookup(key K) (V, bool) {
	value, ok := d.forward[key]
	return value, ok
}

// LookupValue is the comma-ok form of GetByValue.
func (d *Dict[K, V]) LookupValue(value V) (K, bool) {
	key, ok := d.reverse[value]
	return key, ok
}

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.forward[key]
	return ok
}

// HasValue reports whether value is present.
func (d *Dict[K, V]) HasValue(value V) bool {
	_, ok := d.reverse[value]
	return ok
}

// Set assigns value to key.
//
// Both sides stay unique: assigning a value that already belongs to a
// different key steals it, evicting the previous owner's entire entry from
// both indices and the order sequence. A new key is appended at the end of
// the order; reassigning an existing key keeps its original slot.
func (d *Dict[K, V]) Set(key K, value V) {
	if old, ok := d.forward[key]; ok {
		if old == value {
			return
		}

		delete(d.reverse, old)
	}

	if owner, ok := d.reverse[value]; ok {
		// owner != key: reverse[value] == key would imply
		// forward[key] == value, handled above.
		delete(d.forward, owner)
		d.unlink(owner)
	}

	if _, ok := d.nodes[key]; !ok {
		d.nodes[key] = d.order.PushBack(key)
	}

	d.forward[key] = value
	d.reverse[value] = key
}

// Delete removes the entry stored under key.
func (d *Dict[K, V]) Delete(key K) error {
	value, ok := d.forward[key]
	if !ok {
		return &NotFoundError{Side: KeySide, Elem: key}
	}

	d.remove(key, value)

	return nil
}

// DeleteByValue removes the entry that owns value.
func (d *Dict[K, V]) DeleteByValue(value V) error {
	key, ok := d.reverse[value]
	if !ok {
		return &NotFoundError{Side: ValueSide, Elem: value}
	}

	d.remove(key, value)

	return nil
}

// Pop removes the entry stored under key and returns its value.
func (d *Dict[K, V]) Pop(key K) (V, error) {
	value, ok := d.forward[key]
	if !ok {
		return value, &NotFoundError{Side: KeySide, Elem: key}
	}

	d.remove(key, value)

	return value, nil
}

// PopItem removes and returns the newest entry, or the oldest when last is
// false. Destructive iteration is its main use. Returns ErrEmpty when
// nothing is left.
func (d *Dict[K, V]) PopItem(last bool) (Pair[K, V], error) {
	n := d.order.Back()
	if !last {
		n = d.order.Front()
	}

	if n == nil {
		return Pair[K, V]{}, ErrEmpty
	}

	value := d.forward[n.Key]
	p := Pair[K, V]{Key: n.Key, Value: value}
	d.remove(n.Key, value)

	return p, nil
}

// SetDefault returns the value stored under key, first inserting fallback
// when the key is absent.
func (d *Dict[K, V]) SetDefault(key K, fallback V) V {
	if value, ok := d.forward[key]; ok {
		return value
	}

	d.Set(key, fallback)

	return fallback
}

// Update applies Set for each pair, in order.
func (d *Dict[K, V]) Update(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
}

// Copy returns a new dict holding the same entries in the same order.
func (d *Dict[K, V]) Copy() *Dict[K, V] {
	return FromPairs(d.Pairs())
}

// Clear drops every entry.
func (d *Dict[K, V]) Clear() {
	d.forward = make(map[K]V)
	d.reverse = make(map[V]K)
	d.order = order.New[K]()
	d.nodes = make(map[K]*order.Node[K])
}

// Equal reports whether both dicts hold the same entries in the same
// order. Order is significant: equal entry sets inserted in different
// orders compare unequal.
func (d *Dict[K, V]) Equal(other *Dict[K, V]) bool {
	if d.Len() != other.Len() {
		return false
	}

	theirs := other.Pairs()

	i := 0
	for key, value := range d.Items() {
		if theirs[i].Key != key || theirs[i].Value != value {
			return false
		}
		i++
	}

	return true
}

// String renders the entries in order, e.g. Dict[a:1 b:2]. Feeding the
// same pair sequence back through FromPairs reproduces an equal dict.
func (d *Dict[K, V]) String() string {
	var b strings.Builder

	b.WriteString("Dict[")

	first := true
	for key, value := range d.Items() {
		if !first {
			b.WriteByte(' ')
		}
		first = false

		fmt.Fprintf(&b, "%v:%v", key, value)
	}

	b.WriteByte(']')

	return b.String()
}

// remove drops a live (key, value) entry from all three structures.
func (d *Dict[K, V]) remove(key K, value V) {
	delete(d.forward, key)
	delete(d.reverse, value)
	d.unlink(key)
}

// unlink detaches a live key from the order sequence.
func (d *Dict[K, V]) unlink(key K) {
	d.order.Remove(d.nodes[key])
	delete(d.nodes, key)
}
