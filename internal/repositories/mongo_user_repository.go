package repositories

import (
	"context"

	"github.com/wenjun/instaclone/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(UsersCollection)}
}

// GetUser retrieves a profile document by identity id from MongoDB
func (r *MongoUserRepository) GetUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new profile document in MongoDB
func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.UserProfile) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// UpdateUser replaces an existing profile document in MongoDB
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *models.UserProfile) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.UserID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateFollowing writes only the following field of a profile document
func (r *MongoUserRepository) UpdateFollowing(ctx context.Context, userID string, following []string) error {
	_, err := r.collection.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"following": following}})
	return err
}

// UsernameExists reports whether any profile document already claims the
// username. Same caveat as the Firestore implementation: no store-side
// uniqueness, concurrent signups can race past this check.
func (r *MongoUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
