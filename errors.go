package twodict

import (
	"errors"
	"fmt"
)

// Side identifies which index a failed operation addressed.
type Side int

const (
	// KeySide is the forward index (key -> value).
	KeySide Side = iota
	// ValueSide is the reverse index (value -> key).
	ValueSide
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case KeySide:
		return "key"
	case ValueSide:
		return "value"
	default:
		return "unknown"
	}
}

// ErrNotFound is the sentinel behind every lookup or deletion miss.
// Use errors.Is(err, ErrNotFound) when the side does not matter.
var ErrNotFound = errors.New("not found")

// ErrEmpty is returned by PopItem when the dict holds no entries.
var ErrEmpty = errors.New("dict is empty")

// ErrLengthMismatch is returned by FromZip when the key and value slices
// differ in length.
var ErrLengthMismatch = errors.New("keys and values differ in length")

// NotFoundError reports a key or value absent on the requested side.
// Elem carries the missing key or value for diagnostics.
type NotFoundError struct {
	Side Side
	Elem any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Side, e.Elem)
}

// Unwrap makes the error match ErrNotFound under errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
