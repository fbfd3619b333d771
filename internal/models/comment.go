package models

import "time"

// Comment is an append-only document in the "comments" collection.
type Comment struct {
	CommentID string    `json:"commentId" firestore:"commentId" bson:"_id"`
	PostID    string    `json:"postId" firestore:"postId" bson:"post_id"`
	Username  string    `json:"username" firestore:"username" bson:"username"`
	Text      string    `json:"text" firestore:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp" bson:"timestamp"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
