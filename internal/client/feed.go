package client

import (
	"context"
	"time"
)

// generalFeedWindow bounds the fallback feed to posts from the last day.
const generalFeedWindow = 24 * time.Hour

// ComputeFeed fills the observable feed cell. With a non-empty following set
// it queries those users' posts; if that comes back empty, or nothing is
// followed, it falls back to the recency-window general feed.
func (c *Client) ComputeFeed(ctx context.Context) error {
	var following []string
	if profile := c.state.Profile(); profile != nil {
		following = profile.Following
	}
	if len(following) == 0 {
		return c.generalFeed(ctx)
	}

	c.state.setBusy(FamilyFeed, true)
	posts, err := c.posts.GetPostsByUsers(ctx, following)
	if err != nil {
		c.state.setBusy(FamilyFeed, false)
		return c.fail("Cannot get personalized feed", err)
	}
	if len(posts) == 0 {
		c.state.setBusy(FamilyFeed, false)
		return c.generalFeed(ctx)
	}

	sortPostsByTime(posts)
	c.state.setFeed(posts)
	c.state.setBusy(FamilyFeed, false)
	return nil
}

// generalFeed loads posts created strictly within the last 24 hours. A post
// at exactly now-24h is excluded.
func (c *Client) generalFeed(ctx context.Context) error {
	c.state.setBusy(FamilyFeed, true)
	defer c.state.setBusy(FamilyFeed, false)

	cutoff := c.now().Add(-generalFeedWindow)
	posts, err := c.posts.GetPostsSince(ctx, cutoff)
	if err != nil {
		return c.fail("Cannot get feed", err)
	}
	sortPostsByTime(posts)
	c.state.setFeed(posts)
	return nil
}
