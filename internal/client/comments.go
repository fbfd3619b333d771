package client

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/wenjun/instaclone/internal/models"
)

func sortCommentsByTime(comments []models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp.After(comments[j].Timestamp)
	})
}

// CreateComment appends a comment under the commenter's username, then
// reloads the post's comments.
func (c *Client) CreateComment(ctx context.Context, postID, text string) error {
	if text == "" {
		c.notify("Please fill in all fields")
		return &ValidationError{Message: "comment text is empty"}
	}

	profile := c.state.Profile()
	if profile == nil || profile.Username == "" {
		return &StateError{Message: "no current profile"}
	}

	c.state.setBusy(FamilyComments, true)
	comment := &models.Comment{
		CommentID: uuid.NewString(),
		PostID:    postID,
		Username:  profile.Username,
		Text:      text,
		Timestamp: c.now(),
	}
	if err := c.comments.CreateComment(ctx, comment); err != nil {
		c.state.setBusy(FamilyComments, false)
		return c.fail("Cannot create comment", err)
	}
	c.state.setBusy(FamilyComments, false)

	return c.LoadComments(ctx, postID)
}

// LoadComments replaces the observable comments list with the post's
// comments, newest first.
func (c *Client) LoadComments(ctx context.Context, postID string) error {
	c.state.setBusy(FamilyComments, true)
	defer c.state.setBusy(FamilyComments, false)

	comments, err := c.comments.GetCommentsByPost(ctx, postID)
	if err != nil {
		return c.fail("Cannot retrieve comments", err)
	}
	sortCommentsByTime(comments)
	c.state.setComments(comments)
	return nil
}
