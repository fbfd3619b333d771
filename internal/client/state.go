package client

import (
	"sync"

	"github.com/wenjun/instaclone/internal/models"
)

// Family names one group of operations with its own busy flag. Flags are
// advisory, UI-facing booleans: they never block a second call to the same
// family, they only report that work is in flight.
type Family string

const (
	FamilyProfile  Family = "profile"
	FamilyPosts    Family = "posts"
	FamilyFeed     Family = "feed"
	FamilySearch   Family = "search"
	FamilyComments Family = "comments"
)

// State holds the observable cells the UI renders. The mutex only makes
// individual reads and writes safe; overlapping operation cascades still
// resolve by last-write-wins, exactly as the callback-based original did.
type State struct {
	mu sync.RWMutex

	signedIn      bool
	profile       *models.UserProfile
	posts         []models.Post
	feed          []models.Post
	searchResults []models.Post
	comments      []models.Comment
	notification  *models.Event[string]

	profileBusy  bool
	postsBusy    bool
	feedBusy     bool
	searchBusy   bool
	commentsBusy bool
}

// NewState returns an empty signed-out state.
func NewState() *State {
	return &State{}
}

// SignedIn reports whether a session is active.
func (s *State) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signedIn
}

// Profile returns a copy of the cached profile, or nil before the first
// successful fetch.
func (s *State) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	cp := *s.profile
	cp.Following = append([]string(nil), s.profile.Following...)
	return &cp
}

// Posts returns the current user's own posts, newest first.
func (s *State) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Post(nil), s.posts...)
}

// Feed returns the current feed, newest first.
func (s *State) Feed() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Post(nil), s.feed...)
}

// SearchResults returns the posts matched by the last search.
func (s *State) SearchResults() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Post(nil), s.searchResults...)
}

// Comments returns the comments loaded for the last viewed post.
func (s *State) Comments() []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Comment(nil), s.comments...)
}

// Busy reports the flag of one operation family.
func (s *State) Busy(f Family) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch f {
	case FamilyProfile:
		return s.profileBusy
	case FamilyPosts:
		return s.postsBusy
	case FamilyFeed:
		return s.feedBusy
	case FamilySearch:
		return s.searchBusy
	case FamilyComments:
		return s.commentsBusy
	}
	return false
}

// BusyFlags returns a snapshot of every family's flag.
func (s *State) BusyFlags() map[Family]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[Family]bool{
		FamilyProfile:  s.profileBusy,
		FamilyPosts:    s.postsBusy,
		FamilyFeed:     s.feedBusy,
		FamilySearch:   s.searchBusy,
		FamilyComments: s.commentsBusy,
	}
}

// TakeNotification consumes the pending notification, if any. A message is
// observed at most once.
func (s *State) TakeNotification() (string, bool) {
	s.mu.RLock()
	ev := s.notification
	s.mu.RUnlock()
	if ev == nil {
		return "", false
	}
	return ev.Take()
}

func (s *State) setSignedIn(v bool) {
	s.mu.Lock()
	s.signedIn = v
	s.mu.Unlock()
}

func (s *State) setProfile(p *models.UserProfile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}

func (s *State) setPosts(posts []models.Post) {
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
}

func (s *State) setFeed(posts []models.Post) {
	s.mu.Lock()
	s.feed = posts
	s.mu.Unlock()
}

func (s *State) setSearchResults(posts []models.Post) {
	s.mu.Lock()
	s.searchResults = posts
	s.mu.Unlock()
}

func (s *State) setComments(comments []models.Comment) {
	s.mu.Lock()
	s.comments = comments
	s.mu.Unlock()
}

func (s *State) setBusy(f Family, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch f {
	case FamilyProfile:
		s.profileBusy = v
	case FamilyPosts:
		s.postsBusy = v
	case FamilyFeed:
		s.feedBusy = v
	case FamilySearch:
		s.searchBusy = v
	case FamilyComments:
		s.commentsBusy = v
	}
}

func (s *State) setNotification(message string) {
	s.mu.Lock()
	s.notification = models.NewEvent(message)
	s.mu.Unlock()
}

// findPost looks a post up in the cached lists, own posts first.
func (s *State) findPost(postID string) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range [][]models.Post{s.posts, s.feed, s.searchResults} {
		for i := range list {
			if list[i].PostID == postID {
				cp := list[i]
				cp.Likes = append([]string(nil), list[i].Likes...)
				return &cp
			}
		}
	}
	return nil
}

// updatePostLikes rewrites the likes of every cached copy of a post.
func (s *State) updatePostLikes(postID string, likes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range [][]models.Post{s.posts, s.feed, s.searchResults} {
		for i := range list {
			if list[i].PostID == postID {
				list[i].Likes = append([]string(nil), likes...)
			}
		}
	}
}

// clear resets every cell to its signed-out value.
func (s *State) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signedIn = false
	s.profile = nil
	s.posts = nil
	s.feed = nil
	s.searchResults = nil
	s.comments = nil
}
