package repositories

import (
	"context"

	"github.com/wenjun/instaclone/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCredentialRepository implements CredentialRepository for MongoDB
type MongoCredentialRepository struct {
	collection *mongo.Collection
}

// NewMongoCredentialRepository creates a new MongoCredentialRepository
func NewMongoCredentialRepository(db *mongo.Database) *MongoCredentialRepository {
	return &MongoCredentialRepository{collection: db.Collection(CredentialsCollection)}
}

// CreateCredential stores a new credential document in MongoDB
func (r *MongoCredentialRepository) CreateCredential(ctx context.Context, cred *models.Credential) error {
	_, err := r.collection.InsertOne(ctx, cred)
	return err
}

// GetCredentialByEmail retrieves a credential document by email from MongoDB
func (r *MongoCredentialRepository) GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&cred)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cred, nil
}
