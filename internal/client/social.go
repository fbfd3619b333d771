package client

import "context"

// ToggleFollow flips the target's membership in the current user's following
// set and writes only that field. On success the full profile is re-fetched
// so the cache stays authoritative, which re-triggers the posts and feed
// refresh cascade.
func (c *Client) ToggleFollow(ctx context.Context, targetUserID string) error {
	uid, ok := c.CurrentIdentity()
	if !ok {
		return &StateError{Message: "no current identity"}
	}

	var following []string
	wasFollowing := false
	if profile := c.state.Profile(); profile != nil {
		wasFollowing = profile.IsFollowing(targetUserID)
		following = profile.Following
	}

	newFollowing := make([]string, 0, len(following)+1)
	if wasFollowing {
		for _, id := range following {
			if id != targetUserID {
				newFollowing = append(newFollowing, id)
			}
		}
	} else {
		newFollowing = append(newFollowing, following...)
		newFollowing = append(newFollowing, targetUserID)
	}

	if err := c.users.UpdateFollowing(ctx, uid, newFollowing); err != nil {
		return c.fail("Cannot update following", err)
	}
	return c.refreshUserData(ctx)
}
