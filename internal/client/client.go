// Package client implements the data-consistency layer of the app: the
// session, profile, post, feed and social-graph operations that keep the
// denormalized documents in the backing store coherent, plus the observable
// state the UI renders. Operations are synchronous and context-bound; the
// caller decides whether to run them on a goroutine. Every failure lands in
// the one-shot notification surface and clears the busy flag of its family.
package client

import (
	"sync"
	"time"

	"github.com/wenjun/instaclone/internal/identity"
	"github.com/wenjun/instaclone/internal/repositories"
	"go.uber.org/zap"
)

// Client owns one user session and its observable state.
type Client struct {
	identity identity.Service
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	media    repositories.MediaStore
	log      *zap.Logger

	state *State
	now   func() time.Time

	mu  sync.RWMutex
	uid string
}

// New wires a client against the backend collaborators. A nil logger is
// replaced with a no-op one.
func New(
	id identity.Service,
	users repositories.UserRepository,
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	media repositories.MediaStore,
	logger *zap.Logger,
) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		identity: id,
		users:    users,
		posts:    posts,
		comments: comments,
		media:    media,
		log:      logger,
		state:    NewState(),
		now:      time.Now,
	}
}

// State exposes the observable cells.
func (c *Client) State() *State {
	return c.state
}

// CurrentIdentity returns the signed-in identity id, if any.
func (c *Client) CurrentIdentity() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uid, c.uid != ""
}

func (c *Client) setIdentity(uid string) {
	c.mu.Lock()
	c.uid = uid
	c.mu.Unlock()
}

// TakeNotification consumes the pending one-shot message, if any.
func (c *Client) TakeNotification() (string, bool) {
	return c.state.TakeNotification()
}

// notify surfaces a message to the UI through the one-shot event cell.
func (c *Client) notify(message string) {
	c.state.setNotification(message)
}

// fail logs an operation failure, surfaces it as a notification in the
// original's "<context>: <cause>" form, and returns a BackendError for the
// programmatic caller.
func (c *Client) fail(op string, err error) error {
	c.log.Warn("operation failed", zap.String("op", op), zap.Error(err))
	message := op
	if err != nil {
		message = op + ": " + err.Error()
	}
	c.notify(message)
	return &BackendError{Op: op, Err: err}
}
