package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/wenjun/instaclone/internal/models"
	"google.golang.org/api/iterator"
)

// FirestoreCredentialRepository implements CredentialRepository for Cloud Firestore
type FirestoreCredentialRepository struct {
	client *firestore.Client
}

// NewFirestoreCredentialRepository creates a new FirestoreCredentialRepository
func NewFirestoreCredentialRepository(client *firestore.Client) *FirestoreCredentialRepository {
	return &FirestoreCredentialRepository{client: client}
}

// CreateCredential stores a new credential document keyed by identity id
func (r *FirestoreCredentialRepository) CreateCredential(ctx context.Context, cred *models.Credential) error {
	_, err := r.client.Collection(CredentialsCollection).Doc(cred.UserID).Set(ctx, cred)
	return err
}

// GetCredentialByEmail retrieves a credential document by email
func (r *FirestoreCredentialRepository) GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	iter := r.client.Collection(CredentialsCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var cred models.Credential
	if err := snap.DataTo(&cred); err != nil {
		return nil, err
	}
	return &cred, nil
}
