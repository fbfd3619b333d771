package client

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/wenjun/instaclone/internal/models"
)

// Words excluded from the derived search index.
var stopWords = map[string]bool{
	"the": true, "be": true, "to": true, "am": true, "is": true,
	"was": true, "of": true, "and": true, "or": true, "a": true,
	"an": true, "in": true, "it": true, "i'm": true,
}

const searchSplitSet = " .,?!#:"

// deriveSearchTerms tokenizes a caption into the post's search index:
// split on whitespace and caption punctuation, lower-case, drop empty
// tokens, stop words and duplicates.
func deriveSearchTerms(description string) []string {
	tokens := strings.FieldsFunc(description, func(r rune) bool {
		return strings.ContainsRune(searchSplitSet, r)
	})

	seen := make(map[string]bool, len(tokens))
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if tok == "" || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		terms = append(terms, tok)
	}
	return terms
}

// sortPostsByTime orders posts newest first. Stable, so equal timestamps
// keep their query order.
func sortPostsByTime(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time.After(posts[j].Time)
	})
}

// CreatePost uploads the image and writes the full post document, with the
// owner's username and image denormalized into it. A missing identity is an
// inconsistent session and forces a logout.
func (c *Client) CreatePost(ctx context.Context, image []byte, description string) error {
	uid, ok := c.CurrentIdentity()
	if !ok {
		c.notify("Error: username unavailable. Unable to create post.")
		c.LogOut()
		return &StateError{Message: "no current identity"}
	}

	var username, userImage string
	if profile := c.state.Profile(); profile != nil {
		username = profile.Username
		userImage = profile.ImageURL
	}

	c.state.setBusy(FamilyPosts, true)
	defer c.state.setBusy(FamilyPosts, false)

	imageURL, err := c.media.Upload(ctx, image)
	if err != nil {
		return c.fail("Cannot upload image", err)
	}

	post := &models.Post{
		PostID:          uuid.NewString(),
		UserID:          uid,
		Username:        username,
		UserImage:       userImage,
		PostImage:       imageURL,
		PostDescription: description,
		Time:            c.now(),
		Likes:           []string{},
		SearchTerms:     deriveSearchTerms(description),
	}
	if err := c.posts.CreatePost(ctx, post); err != nil {
		return c.fail("Unable to create post", err)
	}

	c.notify("Post successfully created.")
	return c.RefreshOwnPosts(ctx)
}

// RefreshOwnPosts replaces the observable posts list with the current
// identity's posts, newest first.
func (c *Client) RefreshOwnPosts(ctx context.Context) error {
	uid, ok := c.CurrentIdentity()
	if !ok {
		c.notify("Error: username is unavailable. Unable to refresh posts")
		c.LogOut()
		return &StateError{Message: "no current identity"}
	}

	c.state.setBusy(FamilyPosts, true)
	defer c.state.setBusy(FamilyPosts, false)

	posts, err := c.posts.GetPostsByUser(ctx, uid)
	if err != nil {
		return c.fail("Cannot fetch posts", err)
	}
	sortPostsByTime(posts)
	c.state.setPosts(posts)
	return nil
}

// propagateProfileImage is the fan-out half of a profile image change: find
// every post owned by the current identity, rewrite their denormalized
// userImage in one atomic batch, then re-read. With zero posts the batch is
// skipped entirely.
func (c *Client) propagateProfileImage(ctx context.Context, imageURL string) error {
	uid, ok := c.CurrentIdentity()
	if !ok {
		return &StateError{Message: "no current identity"}
	}

	posts, err := c.posts.GetPostsByUser(ctx, uid)
	if err != nil {
		return c.fail("Cannot fetch posts", err)
	}
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]string, len(posts))
	for i, p := range posts {
		postIDs[i] = p.PostID
	}
	if err := c.posts.SetUserImage(ctx, postIDs, imageURL); err != nil {
		return c.fail("Cannot update posts", err)
	}
	return c.RefreshOwnPosts(ctx)
}

// ToggleLike flips the current identity's membership in a post's likes set
// and writes only that field. On success the cached copies are updated in
// place; no read-back is issued.
func (c *Client) ToggleLike(ctx context.Context, postID string) error {
	uid, ok := c.CurrentIdentity()
	if !ok {
		return &StateError{Message: "no current identity"}
	}

	post := c.state.findPost(postID)
	if post == nil {
		return &StateError{Message: "unknown post " + postID}
	}

	newLikes := make([]string, 0, len(post.Likes)+1)
	if post.IsLikedBy(uid) {
		for _, id := range post.Likes {
			if id != uid {
				newLikes = append(newLikes, id)
			}
		}
	} else {
		newLikes = append(newLikes, post.Likes...)
		newLikes = append(newLikes, uid)
	}

	if err := c.posts.UpdateLikes(ctx, postID, newLikes); err != nil {
		return c.fail("Unable to like post", err)
	}
	c.state.updatePostLikes(postID, newLikes)
	return nil
}

// SearchPosts replaces the observable search results with posts whose search
// index contains the term. Matching is exact on a single token; an empty
// term issues no query and leaves the results untouched.
func (c *Client) SearchPosts(ctx context.Context, term string) error {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	c.state.setBusy(FamilySearch, true)
	defer c.state.setBusy(FamilySearch, false)

	posts, err := c.posts.SearchPosts(ctx, term)
	if err != nil {
		return c.fail("Cannot search posts", err)
	}
	sortPostsByTime(posts)
	c.state.setSearchResults(posts)
	return nil
}
