package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wenjun/instaclone/internal/models"
)

// blockingPostRepo parks GetPostsSince until released, so tests can observe
// busy flags while a feed computation is in flight.
type blockingPostRepo struct {
	*fakePostRepo
	entered chan struct{}
	release chan struct{}
}

func (b *blockingPostRepo) GetPostsSince(ctx context.Context, cutoff time.Time) ([]models.Post, error) {
	close(b.entered)
	<-b.release
	return b.fakePostRepo.GetPostsSince(ctx, cutoff)
}

func TestBusyFlagsAreIndependentPerFamily(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))

	blocking := &blockingPostRepo{
		fakePostRepo: env.posts,
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	cl := New(env.identity, env.users, blocking, env.comments, env.media, nil)
	cl.now = env.client.now
	uid, _ := env.client.CurrentIdentity()
	cl.setIdentity(uid)
	cl.state.setSignedIn(true)

	done := make(chan error, 1)
	go func() { done <- cl.ComputeFeed(ctx) }()

	<-blocking.entered
	assert.True(t, cl.State().Busy(FamilyFeed), "feed flag set while query in flight")
	assert.False(t, cl.State().Busy(FamilyProfile), "profile flag untouched")
	assert.False(t, cl.State().Busy(FamilyPosts), "posts flag untouched")
	assert.False(t, cl.State().Busy(FamilySearch), "search flag untouched")

	// an unrelated operation proceeds while the feed is busy
	require.NoError(t, cl.fetchProfile(ctx))
	assert.False(t, cl.State().Busy(FamilyProfile))

	close(blocking.release)
	require.NoError(t, <-done)
	assert.False(t, cl.State().Busy(FamilyFeed), "flag cleared on completion")
}

func TestBusyFlagClearedOnFailure(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	require.NoError(t, env.signUp(ctx, "alice", "alice@example.com", "secret123"))

	env.posts.failQuery = assert.AnError
	err := env.client.RefreshOwnPosts(ctx)
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.False(t, env.client.State().Busy(FamilyPosts), "failure path clears the flag")

	msg, ok := env.client.TakeNotification()
	require.True(t, ok)
	assert.Contains(t, msg, "Cannot fetch posts")
}

func TestNotificationIsConsumedExactlyOnce(t *testing.T) {
	env := newTestEnv()
	env.client.notify("hello")

	msg, ok := env.client.TakeNotification()
	require.True(t, ok)
	assert.Equal(t, "hello", msg)

	_, ok = env.client.TakeNotification()
	assert.False(t, ok, "second take observes already-consumed")
}

func TestNotificationLastWriteWins(t *testing.T) {
	env := newTestEnv()
	env.client.notify("first")
	env.client.notify("second")

	msg, ok := env.client.TakeNotification()
	require.True(t, ok)
	assert.Equal(t, "second", msg)
	_, ok = env.client.TakeNotification()
	assert.False(t, ok)
}
