package models

// UserProfile is the document stored in the "users" collection, keyed by the
// identity id issued at signup. Following is persisted as an ordered list but
// treated as a set everywhere; membership is checked before every mutation.
type UserProfile struct {
	UserID    string   `json:"userId" firestore:"userId" bson:"_id"`
	Name      string   `json:"name" firestore:"name" bson:"name"`
	Username  string   `json:"username" firestore:"username" bson:"username"`
	Bio       string   `json:"bio" firestore:"bio" bson:"bio"`
	ImageURL  string   `json:"imageUrl,omitempty" firestore:"imageUrl" bson:"image_url,omitempty"`
	Following []string `json:"following" firestore:"following" bson:"following"`
}

// IsFollowing reports set membership on the persisted following list.
func (u *UserProfile) IsFollowing(userID string) bool {
	for _, id := range u.Following {
		if id == userID {
			return true
		}
	}
	return false
}

// SignupRequest defines the request body for creating an account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the profile.
// Omitted fields keep their last cached value.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,max=50"`
	Username string `json:"username,omitempty" validate:"omitempty,min=2,max=30"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=300"`
}
