package client

import "fmt"

// ValidationError reports an empty or malformed required field, detected
// before any backend call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a duplicate username found by the pre-insert check.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError reports credentials rejected by the identity service.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// StateError reports an operation invoked without a required precondition,
// such as posting without a known identity.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

// BackendError wraps any failure surfaced by the identity, document or blob
// service.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
