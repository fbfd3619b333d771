package client

import (
	"context"
	"errors"

	"github.com/wenjun/instaclone/internal/identity"
	"golang.org/x/sync/errgroup"
)

// SignUp creates an identity and its profile document, then signs in.
//
// The username check is a read-then-write with no store-side uniqueness
// constraint: two concurrent signups with the same username can both pass it.
// Known race, kept from the original design.
func (c *Client) SignUp(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		c.notify("Please fill in all fields")
		return &ValidationError{Message: "please fill in all fields"}
	}

	c.state.setBusy(FamilyProfile, true)
	defer c.state.setBusy(FamilyProfile, false)

	exists, err := c.users.UsernameExists(ctx, username)
	if err != nil {
		return c.fail("Signup failed", err)
	}
	if exists {
		c.notify("Username already exists")
		return &ConflictError{Message: "username already exists"}
	}

	uid, err := c.identity.Create(ctx, email, password)
	if err != nil {
		return c.fail("Signup failed", err)
	}

	c.setIdentity(uid)
	c.state.setSignedIn(true)
	return c.createOrUpdateProfile(ctx, profileUpdate{Username: &username})
}

// LogIn verifies the credentials and bootstraps the session: profile fetch,
// then own posts and feed.
func (c *Client) LogIn(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		c.notify("Please fill in all fields")
		return &ValidationError{Message: "please fill in all fields"}
	}

	c.state.setBusy(FamilyProfile, true)
	uid, err := c.identity.Verify(ctx, email, password)
	if err != nil {
		c.state.setBusy(FamilyProfile, false)
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.notify("Login failed: " + err.Error())
			return &AuthError{Message: err.Error()}
		}
		return c.fail("Login failed", err)
	}
	c.state.setBusy(FamilyProfile, false)

	c.setIdentity(uid)
	c.state.setSignedIn(true)
	return c.refreshUserData(ctx)
}

// Restore resumes a previously established session, as the mobile app does
// when the auth collaborator still remembers the user on startup.
func (c *Client) Restore(ctx context.Context, uid string) error {
	c.setIdentity(uid)
	c.state.setSignedIn(true)
	return c.refreshUserData(ctx)
}

// LogOut clears the session and all derived in-memory state. Idempotent.
func (c *Client) LogOut() {
	c.setIdentity("")
	c.state.clear()
	c.notify("Logged out")
}

// refreshUserData fetches the profile document, then refreshes own posts and
// the feed. The two refreshes are independent reads and run concurrently;
// either failure surfaces through its own notification and busy flag.
func (c *Client) refreshUserData(ctx context.Context) error {
	if err := c.fetchProfile(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.RefreshOwnPosts(gctx) })
	g.Go(func() error { return c.ComputeFeed(gctx) })
	return g.Wait()
}

// fetchProfile reads the profile document of the current identity into the
// observable profile cell.
func (c *Client) fetchProfile(ctx context.Context) error {
	uid, ok := c.CurrentIdentity()
	if !ok {
		return &StateError{Message: "no current identity"}
	}

	c.state.setBusy(FamilyProfile, true)
	defer c.state.setBusy(FamilyProfile, false)

	profile, err := c.users.GetUser(ctx, uid)
	if err != nil {
		return c.fail("Cannot retrieve user data", err)
	}
	c.state.setProfile(profile)
	return nil
}
