package client

import (
	"context"
	"errors"

	"github.com/wenjun/instaclone/internal/models"
	"github.com/wenjun/instaclone/internal/repositories"
)

// profileUpdate carries the fields of a partial profile edit. Nil fields fall
// back to the last cached value, not to the stored document, so two racing
// edits can resurrect stale data. Kept from the original design.
type profileUpdate struct {
	Name     *string
	Username *string
	Bio      *string
	ImageURL *string
}

// UpdateProfile applies an edit of the visible profile fields.
func (c *Client) UpdateProfile(ctx context.Context, name, username, bio string) error {
	return c.createOrUpdateProfile(ctx, profileUpdate{
		Name:     &name,
		Username: &username,
		Bio:      &bio,
	})
}

// UploadProfileImage stores the image bytes, points the profile at the new
// URL, and fans the URL out to every existing post of the user.
func (c *Client) UploadProfileImage(ctx context.Context, data []byte) error {
	c.state.setBusy(FamilyProfile, true)
	url, err := c.media.Upload(ctx, data)
	if err != nil {
		c.state.setBusy(FamilyProfile, false)
		return c.fail("Cannot upload image", err)
	}
	c.state.setBusy(FamilyProfile, false)

	if err := c.createOrUpdateProfile(ctx, profileUpdate{ImageURL: &url}); err != nil {
		return err
	}
	return c.propagateProfileImage(ctx, url)
}

// createOrUpdateProfile merges the update over the cached profile and writes
// the result. An absent document is created (that completes a signup) and
// immediately re-fetched, which cascades into posts and feed refreshes.
func (c *Client) createOrUpdateProfile(ctx context.Context, upd profileUpdate) error {
	uid, ok := c.CurrentIdentity()
	if !ok {
		return &StateError{Message: "no current identity"}
	}

	merged := models.UserProfile{UserID: uid}
	if cached := c.state.Profile(); cached != nil {
		merged = *cached
		merged.UserID = uid
	}
	if upd.Name != nil {
		merged.Name = *upd.Name
	}
	if upd.Username != nil {
		merged.Username = *upd.Username
	}
	if upd.Bio != nil {
		merged.Bio = *upd.Bio
	}
	if upd.ImageURL != nil {
		merged.ImageURL = *upd.ImageURL
	}

	c.state.setBusy(FamilyProfile, true)

	_, err := c.users.GetUser(ctx, uid)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		if err := c.users.CreateUser(ctx, &merged); err != nil {
			c.state.setBusy(FamilyProfile, false)
			return c.fail("Cannot create user", err)
		}
		c.state.setBusy(FamilyProfile, false)
		return c.refreshUserData(ctx)
	case err != nil:
		c.state.setBusy(FamilyProfile, false)
		return c.fail("Cannot create user", err)
	}

	if err := c.users.UpdateUser(ctx, &merged); err != nil {
		c.state.setBusy(FamilyProfile, false)
		return c.fail("Cannot update user", err)
	}
	c.state.setProfile(&merged)
	c.state.setBusy(FamilyProfile, false)
	return nil
}
