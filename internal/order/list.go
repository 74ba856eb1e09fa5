package order

import "iter"

// List is a doubly linked list of keys with a sentinel root. It records
// the insertion order of a two-way dict's live keys. The zero value is not
// ready for use; call New.
type List[K any] struct {
	root Node[K]
	size int
}

// Node is a single list element. PushBack hands nodes out so the owner can
// unlink them in O(1) without a scan.
type Node[K any] struct {
	prev, next *Node[K]

	Key K
}

// New returns an empty list.
func New[K any]() *List[K] {
	l := &List[K]{}
	l.root.prev = &l.root
	l.root.next = &l.root

	return l
}

// Len returns the number of elements.
func (l *List[K]) Len() int {
	return l.size
}

// Front returns the oldest node, or nil when the list is empty.
func (l *List[K]) Front() *Node[K] {
	if l.size == 0 {
		return nil
	}

	return l.root.next
}

// Back returns the newest node, or nil when the list is empty.
func (l *List[K]) Back() *Node[K] {
	if l.size == 0 {
		return nil
	}

	return l.root.prev
}

// PushBack appends key at the tail and returns its node.
func (l *List[K]) PushBack(key K) *Node[K] {
	n := &Node[K]{Key: key, prev: l.root.prev, next: &l.root}
	l.root.prev.next = n
	l.root.prev = n
	l.size++

	return n
}

// Remove unlinks n. The node must belong to this list and must not be
// removed twice; owners drop their reference after calling.
func (l *List[K]) Remove(n *Node[K]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.size--
}

// All yields keys oldest first.
func (l *List[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.Key) {
				return
			}
		}
	}
}

// Backward yields keys newest first.
func (l *List[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := l.root.prev; n != &l.root; n = n.prev {
			if !yield(n.Key) {
				return
			}
		}
	}
}
