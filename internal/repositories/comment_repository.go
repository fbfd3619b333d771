package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/wenjun/instaclone/internal/models"
	"google.golang.org/api/iterator"
)

// FirestoreCommentRepository implements CommentRepository for Cloud Firestore
type FirestoreCommentRepository struct {
	client *firestore.Client
}

// NewFirestoreCommentRepository creates a new FirestoreCommentRepository
func NewFirestoreCommentRepository(client *firestore.Client) *FirestoreCommentRepository {
	return &FirestoreCommentRepository{client: client}
}

// CreateComment appends a new comment document
func (r *FirestoreCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	_, err := r.client.Collection(CommentsCollection).Doc(comment.CommentID).Set(ctx, comment)
	return err
}

// GetCommentsByPost retrieves all comments on a post
func (r *FirestoreCommentRepository) GetCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	iter := r.client.Collection(CommentsCollection).Where("postId", "==", postID).Documents(ctx)
	defer iter.Stop()

	var comments []models.Comment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var comment models.Comment
		if err := snap.DataTo(&comment); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
