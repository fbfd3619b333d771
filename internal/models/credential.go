package models

// Credential is a document in the "credentials" collection, used by the
// local identity service. The password is stored as a bcrypt hash.
type Credential struct {
	UserID       string `json:"userId" firestore:"userId" bson:"_id"`
	Email        string `json:"email" firestore:"email" bson:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash" bson:"password_hash"`
}
