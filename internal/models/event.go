package models

import "sync"

// Event wraps a value that may be consumed at most once. The UI reads it
// through Take, so a message is surfaced exactly once no matter how many
// times the surrounding state is observed.
type Event[T any] struct {
	mu       sync.Mutex
	content  T
	consumed bool
}

// NewEvent returns an unconsumed event carrying content.
func NewEvent[T any](content T) *Event[T] {
	return &Event[T]{content: content}
}

// Take returns the content the first time it is called. Subsequent calls
// return the zero value and false.
func (e *Event[T]) Take() (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.consumed {
		var zero T
		return zero, false
	}
	e.consumed = true
	return e.content, true
}
