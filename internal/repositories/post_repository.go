package repositories

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/wenjun/instaclone/internal/models"
	"google.golang.org/api/iterator"
)

// Firestore rejects "in" filters with more than 30 values, so membership
// queries over larger following lists are issued in chunks and merged.
const firestoreInLimit = 30

// FirestorePostRepository implements PostRepository for Cloud Firestore
type FirestorePostRepository struct {
	client *firestore.Client
}

// NewFirestorePostRepository creates a new FirestorePostRepository
func NewFirestorePostRepository(client *firestore.Client) *FirestorePostRepository {
	return &FirestorePostRepository{client: client}
}

// CreatePost writes the full post document keyed by its client-generated id
func (r *FirestorePostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	_, err := r.client.Collection(PostsCollection).Doc(post.PostID).Set(ctx, post)
	return err
}

// GetPostsByUser retrieves all posts owned by a single user
func (r *FirestorePostRepository) GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	query := r.client.Collection(PostsCollection).Where("userId", "==", userID)
	return r.collect(ctx, query)
}

// GetPostsByUsers retrieves all posts owned by any of the given users
func (r *FirestorePostRepository) GetPostsByUsers(ctx context.Context, userIDs []string) ([]models.Post, error) {
	var posts []models.Post
	for start := 0; start < len(userIDs); start += firestoreInLimit {
		end := start + firestoreInLimit
		if end > len(userIDs) {
			end = len(userIDs)
		}
		query := r.client.Collection(PostsCollection).Where("userId", "in", userIDs[start:end])
		chunk, err := r.collect(ctx, query)
		if err != nil {
			return nil, err
		}
		posts = append(posts, chunk...)
	}
	return posts, nil
}

// GetPostsSince retrieves posts created strictly after the cutoff
func (r *FirestorePostRepository) GetPostsSince(ctx context.Context, cutoff time.Time) ([]models.Post, error) {
	query := r.client.Collection(PostsCollection).Where("time", ">", cutoff)
	return r.collect(ctx, query)
}

// SearchPosts retrieves posts whose searchTerms array contains the term
func (r *FirestorePostRepository) SearchPosts(ctx context.Context, term string) ([]models.Post, error) {
	query := r.client.Collection(PostsCollection).Where("searchTerms", "array-contains", term)
	return r.collect(ctx, query)
}

// UpdateLikes writes only the likes field of a post document
func (r *FirestorePostRepository) UpdateLikes(ctx context.Context, postID string, likes []string) error {
	_, err := r.client.Collection(PostsCollection).Doc(postID).Update(ctx, []firestore.Update{
		{Path: "likes", Value: likes},
	})
	return err
}

// SetUserImage updates the denormalized userImage field on every listed post
// in one write batch. The batch commits atomically: a failure leaves every
// document untouched.
func (r *FirestorePostRepository) SetUserImage(ctx context.Context, postIDs []string, imageURL string) error {
	if len(postIDs) == 0 {
		return nil
	}
	batch := r.client.Batch()
	for _, id := range postIDs {
		ref := r.client.Collection(PostsCollection).Doc(id)
		batch.Update(ref, []firestore.Update{{Path: "userImage", Value: imageURL}})
	}
	_, err := batch.Commit(ctx)
	return err
}

// collect drains a query into a post slice
func (r *FirestorePostRepository) collect(ctx context.Context, query firestore.Query) ([]models.Post, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var posts []models.Post
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var post models.Post
		if err := snap.DataTo(&post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
