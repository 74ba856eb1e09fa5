// Package twodict implements a two-way ordered dictionary: an associative
// container that resolves key -> value and value -> key in O(1) while
// iterating in insertion order.
//
// Core rules:
//   - Keys are unique, and so are values; the reverse index is unambiguous
//   - Assigning a value that already belongs to another key evicts that
//     key's whole entry
//   - Reassigning an existing key keeps its order slot
//   - Lookup and deletion misses return NotFoundError
//
// Forward and reverse lookups are separate operations (Get, GetByValue)
// rather than one call that guesses a direction, so the API stays
// unambiguous when keys and values share a type.
//
// The dict does no internal locking. Callers that share one across
// goroutines must wrap it with their own mutex.
package twodict
