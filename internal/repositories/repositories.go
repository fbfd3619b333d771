package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/wenjun/instaclone/internal/models"
)

// Collection names shared by both document-store backends.
const (
	UsersCollection       = "users"
	PostsCollection       = "posts"
	CommentsCollection    = "comments"
	CredentialsCollection = "credentials"
)

// ErrNotFound is returned by point reads when no document has the given key.
var ErrNotFound = errors.New("document not found")

// UserRepository defines the interface for profile document operations
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*models.UserProfile, error)
	CreateUser(ctx context.Context, user *models.UserProfile) error
	UpdateUser(ctx context.Context, user *models.UserProfile) error
	UpdateFollowing(ctx context.Context, userID string, following []string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// PostRepository defines the interface for post document operations. Queries
// return documents unordered; callers sort by time when presenting them.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	GetPostsByUsers(ctx context.Context, userIDs []string) ([]models.Post, error)
	GetPostsSince(ctx context.Context, cutoff time.Time) ([]models.Post, error)
	SearchPosts(ctx context.Context, term string) ([]models.Post, error)
	UpdateLikes(ctx context.Context, postID string, likes []string) error
	// SetUserImage updates the denormalized userImage field on every listed
	// post in one atomic batch: either all documents change or none do.
	SetUserImage(ctx context.Context, postIDs []string, imageURL string) error
}

// CommentRepository defines the interface for comment document operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)
}

// CredentialRepository stores local login credentials, used only when the
// identity service runs in local mode.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, cred *models.Credential) error
	GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error)
}

// MediaStore uploads an opaque blob and returns a public content URL.
type MediaStore interface {
	Upload(ctx context.Context, data []byte) (string, error)
}
