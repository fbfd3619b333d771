package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wenjun/instaclone/internal/identity"
	"github.com/wenjun/instaclone/internal/models"
	"github.com/wenjun/instaclone/internal/repositories"
)

// In-memory implementations of the backend collaborators. They record call
// counts so tests can assert that an operation never reached the backend.

type fakeIdentity struct {
	mu          sync.Mutex
	nextID      int
	byEmail     map[string]string
	passwords   map[string]string
	createCalls int
	verifyCalls int
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		byEmail:   make(map[string]string),
		passwords: make(map[string]string),
	}
}

func (f *fakeIdentity) Create(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if _, ok := f.byEmail[email]; ok {
		return "", fmt.Errorf("email %s already registered", email)
	}
	f.nextID++
	uid := fmt.Sprintf("uid-%d", f.nextID)
	f.byEmail[email] = uid
	f.passwords[email] = password
	return uid, nil
}

func (f *fakeIdentity) Verify(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	uid, ok := f.byEmail[email]
	if !ok || f.passwords[email] != password {
		return "", identity.ErrInvalidCredentials
	}
	return uid, nil
}

type fakeUserRepo struct {
	mu               sync.Mutex
	users            map[string]models.UserProfile
	usernameChecks   int
	failUpdate       error
	failGet          error
	followingUpdates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.UserProfile)}
}

func (f *fakeUserRepo) GetUser(_ context.Context, userID string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := u
	cp.Following = append([]string(nil), u.Following...)
	return &cp, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.UserID] = *user
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *models.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate != nil {
		return f.failUpdate
	}
	if _, ok := f.users[user.UserID]; !ok {
		return repositories.ErrNotFound
	}
	f.users[user.UserID] = *user
	return nil
}

func (f *fakeUserRepo) UpdateFollowing(_ context.Context, userID string, following []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Following = append([]string(nil), following...)
	f.users[userID] = u
	f.followingUpdates++
	return nil
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usernameChecks++
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakePostRepo struct {
	mu         sync.Mutex
	posts      map[string]models.Post
	batchCalls int
	failBatch  error
	failQuery  error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]models.Post)}
}

func (f *fakePostRepo) put(post models.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts[post.PostID] = post
}

func (f *fakePostRepo) get(postID string) (models.Post, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[postID]
	return p, ok
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	f.put(*post)
	return nil
}

func (f *fakePostRepo) GetPostsByUser(_ context.Context, userID string) ([]models.Post, error) {
	return f.filter(func(p models.Post) bool { return p.UserID == userID })
}

func (f *fakePostRepo) GetPostsByUsers(_ context.Context, userIDs []string) ([]models.Post, error) {
	set := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		set[id] = true
	}
	return f.filter(func(p models.Post) bool { return set[p.UserID] })
}

func (f *fakePostRepo) GetPostsSince(_ context.Context, cutoff time.Time) ([]models.Post, error) {
	return f.filter(func(p models.Post) bool { return p.Time.After(cutoff) })
}

func (f *fakePostRepo) SearchPosts(_ context.Context, term string) ([]models.Post, error) {
	return f.filter(func(p models.Post) bool {
		for _, t := range p.SearchTerms {
			if t == term {
				return true
			}
		}
		return false
	})
}

func (f *fakePostRepo) UpdateLikes(_ context.Context, postID string, likes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[postID]
	if !ok {
		return fmt.Errorf("post %s not found", postID)
	}
	p.Likes = append([]string(nil), likes...)
	f.posts[postID] = p
	return nil
}

func (f *fakePostRepo) SetUserImage(_ context.Context, postIDs []string, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	if f.failBatch != nil {
		return f.failBatch
	}
	// all-or-nothing like the real batch
	for _, id := range postIDs {
		if _, ok := f.posts[id]; !ok {
			return fmt.Errorf("post %s not found", id)
		}
	}
	for _, id := range postIDs {
		p := f.posts[id]
		p.UserImage = imageURL
		f.posts[id] = p
	}
	return nil
}

func (f *fakePostRepo) filter(keep func(models.Post) bool) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failQuery != nil {
		return nil, f.failQuery
	}
	var out []models.Post
	for _, p := range f.posts {
		if keep(p) {
			cp := p
			cp.Likes = append([]string(nil), p.Likes...)
			out = append(out, cp)
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) GetCommentsByPost(_ context.Context, postID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeMedia struct {
	mu      sync.Mutex
	uploads int
	nextURL string
	fail    error
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{nextURL: "https://cdn.example/img-1"}
}

func (f *fakeMedia) Upload(_ context.Context, _ []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return "", f.fail
	}
	f.uploads++
	return f.nextURL, nil
}

// testEnv bundles a client with its fakes and a controllable clock.
type testEnv struct {
	client   *Client
	identity *fakeIdentity
	users    *fakeUserRepo
	posts    *fakePostRepo
	comments *fakeCommentRepo
	media    *fakeMedia
	clock    time.Time
}

func newTestEnv() *testEnv {
	env := &testEnv{
		identity: newFakeIdentity(),
		users:    newFakeUserRepo(),
		posts:    newFakePostRepo(),
		comments: newFakeCommentRepo(),
		media:    newFakeMedia(),
		clock:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	env.client = New(env.identity, env.users, env.posts, env.comments, env.media, nil)
	env.client.now = func() time.Time { return env.clock }
	return env
}

// signUp runs a full signup and drains the notifications it produced.
func (e *testEnv) signUp(ctx context.Context, username, email, password string) error {
	err := e.client.SignUp(ctx, username, email, password)
	e.client.TakeNotification()
	return err
}
