package handlers

import (
	"context"
	"sync"

	"github.com/wenjun/instaclone/internal/client"
)

// Hub maps signed-in identities to their client sessions. The mobile app
// binds one view model to one user; the HTTP surface serves many users, so
// each JWT subject gets its own session with its own observable state.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*client.Client
	factory  func() *client.Client
}

// NewHub creates a Hub that builds sessions with factory.
func NewHub(factory func() *client.Client) *Hub {
	return &Hub{
		sessions: make(map[string]*client.Client),
		factory:  factory,
	}
}

// NewSession returns a fresh, unbound client for a signup or login attempt.
func (h *Hub) NewSession() *client.Client {
	return h.factory()
}

// Bind registers a signed-in session under its identity id.
func (h *Hub) Bind(uid string, cl *client.Client) {
	h.mu.Lock()
	h.sessions[uid] = cl
	h.mu.Unlock()
}

// Session returns the session bound to uid. If the process restarted since
// the token was issued, a new session is restored from the identity id.
func (h *Hub) Session(ctx context.Context, uid string) (*client.Client, error) {
	h.mu.RLock()
	cl, ok := h.sessions[uid]
	h.mu.RUnlock()
	if ok {
		return cl, nil
	}

	cl = h.factory()
	if err := cl.Restore(ctx, uid); err != nil {
		return nil, err
	}
	h.Bind(uid, cl)
	return cl, nil
}

// Remove drops the session bound to uid.
func (h *Hub) Remove(uid string) {
	h.mu.Lock()
	delete(h.sessions, uid)
	h.mu.Unlock()
}
