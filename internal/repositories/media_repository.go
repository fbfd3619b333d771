package repositories

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// FirebaseMediaStore implements MediaStore on a Firebase Storage bucket.
// Blobs go under images/<uuid>, mirroring where the mobile client puts them.
type FirebaseMediaStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewFirebaseMediaStore creates a new FirebaseMediaStore
func NewFirebaseMediaStore(bucket *storage.BucketHandle, bucketName string) *FirebaseMediaStore {
	return &FirebaseMediaStore{bucket: bucket, bucketName: bucketName}
}

// Upload writes the blob and returns its public content URL
func (s *FirebaseMediaStore) Upload(ctx context.Context, data []byte) (string, error) {
	objectName := "images/" + uuid.NewString()

	w := s.bucket.Object(objectName).NewWriter(ctx)
	w.ContentType = http.DetectContentType(data)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}
