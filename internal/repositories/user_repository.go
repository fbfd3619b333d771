package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/wenjun/instaclone/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreUserRepository implements UserRepository for Cloud Firestore
type FirestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new FirestoreUserRepository
func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{client: client}
}

// GetUser retrieves a profile document by identity id
func (r *FirestoreUserRepository) GetUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	snap, err := r.client.Collection(UsersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var user models.UserProfile
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser writes a new profile document keyed by the identity id
func (r *FirestoreUserRepository) CreateUser(ctx context.Context, user *models.UserProfile) error {
	_, err := r.client.Collection(UsersCollection).Doc(user.UserID).Set(ctx, user)
	return err
}

// UpdateUser overwrites an existing profile document with the merged profile
func (r *FirestoreUserRepository) UpdateUser(ctx context.Context, user *models.UserProfile) error {
	_, err := r.client.Collection(UsersCollection).Doc(user.UserID).Set(ctx, user)
	return err
}

// UpdateFollowing writes only the following field of a profile document
func (r *FirestoreUserRepository) UpdateFollowing(ctx context.Context, userID string, following []string) error {
	_, err := r.client.Collection(UsersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "following", Value: following},
	})
	return err
}

// UsernameExists reports whether any profile document already claims the
// username. This is a plain equality query; nothing in the store enforces
// uniqueness, so two concurrent signups can both see false here.
func (r *FirestoreUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	iter := r.client.Collection(UsersCollection).
		Where("username", "==", username).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
