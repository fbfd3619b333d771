// Package identity wraps the authentication collaborator. It issues and
// verifies opaque identity ids; everything session-related (current identity,
// sign-out) lives with the client that owns the session.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned by Verify when the email/password pair
// does not match an existing identity.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service creates and verifies identities.
type Service interface {
	// Create registers a new identity and returns its stable id.
	Create(ctx context.Context, email, password string) (string, error)
	// Verify checks the credentials and returns the identity id.
	Verify(ctx context.Context, email, password string) (string, error)
}
