package repositories

import (
	"context"
	"time"

	"github.com/wenjun/instaclone/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection(PostsCollection)}
}

// CreatePost creates a new post document in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostsByUser retrieves all posts owned by a single user
func (r *MongoPostRepository) GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// GetPostsByUsers retrieves all posts owned by any of the given users
func (r *MongoPostRepository) GetPostsByUsers(ctx context.Context, userIDs []string) ([]models.Post, error) {
	return r.find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
}

// GetPostsSince retrieves posts created strictly after the cutoff
func (r *MongoPostRepository) GetPostsSince(ctx context.Context, cutoff time.Time) ([]models.Post, error) {
	return r.find(ctx, bson.M{"time": bson.M{"$gt": cutoff}})
}

// SearchPosts retrieves posts whose search_terms array contains the term
func (r *MongoPostRepository) SearchPosts(ctx context.Context, term string) ([]models.Post, error) {
	return r.find(ctx, bson.M{"search_terms": term})
}

// UpdateLikes writes only the likes field of a post document
func (r *MongoPostRepository) UpdateLikes(ctx context.Context, postID string, likes []string) error {
	_, err := r.collection.UpdateByID(ctx, postID, bson.M{"$set": bson.M{"likes": likes}})
	return err
}

// SetUserImage updates the denormalized user_image field on every listed
// post. The update runs in a transaction so the batch is all-or-nothing,
// matching the Firestore write batch.
func (r *MongoPostRepository) SetUserImage(ctx context.Context, postIDs []string, imageURL string) error {
	if len(postIDs) == 0 {
		return nil
	}

	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return r.collection.UpdateMany(sc,
			bson.M{"_id": bson.M{"$in": postIDs}},
			bson.M{"$set": bson.M{"user_image": imageURL}},
		)
	})
	return err
}

// find drains a filtered query into a post slice
func (r *MongoPostRepository) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
