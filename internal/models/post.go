package models

import "time"

// Post is the document stored in the "posts" collection, keyed by a
// client-generated uuid. Username and UserImage are denormalized copies of
// the owner's profile taken at creation time; UserImage is kept consistent
// afterwards by a fan-out batch update, not by the store.
type Post struct {
	PostID          string    `json:"postId" firestore:"postId" bson:"_id"`
	UserID          string    `json:"userId" firestore:"userId" bson:"user_id"`
	Username        string    `json:"username" firestore:"username" bson:"username"`
	UserImage       string    `json:"userImage,omitempty" firestore:"userImage" bson:"user_image,omitempty"`
	PostImage       string    `json:"postImage" firestore:"postImage" bson:"post_image"`
	PostDescription string    `json:"postDescription" firestore:"postDescription" bson:"post_description"`
	Time            time.Time `json:"time" firestore:"time" bson:"time"`
	Likes           []string  `json:"likes" firestore:"likes" bson:"likes"`
	SearchTerms     []string  `json:"searchTerms" firestore:"searchTerms" bson:"search_terms"`
}

// IsLikedBy reports set membership on the persisted likes list.
func (p *Post) IsLikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// CreatePostRequest defines the request body for creating a new post. The
// image bytes travel separately (raw upload), so only the caption is here.
type CreatePostRequest struct {
	Description string `json:"description" validate:"required,min=1,max=2200"`
}
