package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostDenormalizesOwnerAndRefreshes(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))
	require.NoError(t, env.client.UploadProfileImage(ctx, []byte("avatar")))

	require.NoError(t, env.client.CreatePost(ctx, []byte("img"), "Sunset at the beach"))

	posts := env.client.State().Posts()
	require.Len(t, posts, 1)
	uid, _ := env.client.CurrentIdentity()
	assert.Equal(t, uid, posts[0].UserID)
	assert.Equal(t, "alice", posts[0].Username)
	assert.Equal(t, env.media.nextURL, posts[0].UserImage)
	assert.Equal(t, env.media.nextURL, posts[0].PostImage)
	assert.Equal(t, []string{"sunset", "at", "beach"}, posts[0].SearchTerms)
	assert.Empty(t, posts[0].Likes)
}

func TestCreatePostWithoutIdentityForcesLogout(t *testing.T) {
	env := newTestEnv()

	err := env.client.CreatePost(context.Background(), []byte("img"), "hello")
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.False(t, env.client.State().SignedIn())

	msg, ok := env.client.TakeNotification()
	require.True(t, ok)
	assert.Equal(t, "Logged out", msg, "forced logout message wins as the last write")
}

func TestRefreshOwnPostsSortsNewestFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))

	require.NoError(t, env.client.CreatePost(ctx, []byte("a"), "first post"))
	env.clock = env.clock.Add(time.Minute)
	require.NoError(t, env.client.CreatePost(ctx, []byte("b"), "second post"))

	posts := env.client.State().Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "second post", posts[0].PostDescription)
	assert.Equal(t, "first post", posts[1].PostDescription)
}

func TestToggleLikeIsIdempotentPair(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))
	require.NoError(t, env.client.CreatePost(ctx, []byte("img"), "hello"))

	postID := env.client.State().Posts()[0].PostID
	uid, _ := env.client.CurrentIdentity()

	require.NoError(t, env.client.ToggleLike(ctx, postID))
	stored, _ := env.posts.get(postID)
	assert.Equal(t, []string{uid}, stored.Likes)
	assert.Equal(t, []string{uid}, env.client.State().Posts()[0].Likes, "cached copy updated in place")

	require.NoError(t, env.client.ToggleLike(ctx, postID))
	stored, _ = env.posts.get(postID)
	assert.Empty(t, stored.Likes)
	assert.Empty(t, env.client.State().Posts()[0].Likes)
}

func TestToggleLikeRemovesOnlyCaller(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))
	require.NoError(t, env.client.CreatePost(ctx, []byte("img"), "hello"))

	postID := env.client.State().Posts()[0].PostID
	uid, _ := env.client.CurrentIdentity()

	// another user already liked the post
	stored, _ := env.posts.get(postID)
	stored.Likes = []string{"u2", uid}
	env.posts.put(stored)
	require.NoError(t, env.client.RefreshOwnPosts(ctx))

	require.NoError(t, env.client.ToggleLike(ctx, postID))
	stored, _ = env.posts.get(postID)
	assert.Equal(t, []string{"u2"}, stored.Likes)
}

func TestPropagateProfileImageUpdatesAllOwnPosts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))
	require.NoError(t, env.client.CreatePost(ctx, []byte("a"), "first"))
	require.NoError(t, env.client.CreatePost(ctx, []byte("b"), "second"))

	env.media.nextURL = "https://cdn.example/img-X"
	require.NoError(t, env.client.UploadProfileImage(ctx, []byte("new avatar")))

	assert.Equal(t, 1, env.posts.batchCalls)
	for _, p := range env.client.State().Posts() {
		assert.Equal(t, "https://cdn.example/img-X", p.UserImage)
	}
	assert.Equal(t, "https://cdn.example/img-X", env.client.State().Profile().ImageURL)
}

func TestPropagateProfileImageWithZeroPostsSkipsBatch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))

	require.NoError(t, env.client.UploadProfileImage(ctx, []byte("avatar")))

	assert.Equal(t, 0, env.posts.batchCalls, "no batch write for zero posts")
	assert.Equal(t, env.media.nextURL, env.client.State().Profile().ImageURL)
}

func TestSearchPostsExactTokenMatch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))
	require.NoError(t, env.client.CreatePost(ctx, []byte("img"), "amazing sunset tonight"))

	require.NoError(t, env.client.SearchPosts(ctx, "Sunset"))
	require.Len(t, env.client.State().SearchResults(), 1)

	// substring of an indexed token does not match
	require.NoError(t, env.client.SearchPosts(ctx, "sun"))
	assert.Empty(t, env.client.State().SearchResults())
}

func TestSearchPostsEmptyTermIssuesNoQuery(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))
	require.NoError(t, env.client.CreatePost(ctx, []byte("img"), "sunset"))
	require.NoError(t, env.client.SearchPosts(ctx, "sunset"))
	before := env.client.State().SearchResults()
	require.Len(t, before, 1)

	env.posts.failQuery = assert.AnError
	require.NoError(t, env.client.SearchPosts(ctx, "   "))
	assert.Equal(t, before, env.client.State().SearchResults(), "results unchanged")
}

func TestFailedBatchLeavesPostsUntouched(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))
	require.NoError(t, env.client.CreatePost(ctx, []byte("a"), "first"))
	originalImage := env.client.State().Posts()[0].UserImage

	env.posts.failBatch = assert.AnError
	env.media.nextURL = "https://cdn.example/img-X"
	err := env.client.UploadProfileImage(ctx, []byte("new avatar"))

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	stored, _ := env.posts.get(env.client.State().Posts()[0].PostID)
	assert.Equal(t, originalImage, stored.UserImage, "atomic batch: nothing updated on failure")
}
