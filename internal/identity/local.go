package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wenjun/instaclone/internal/models"
	"github.com/wenjun/instaclone/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// LocalService implements Service with bcrypt-hashed credentials stored in
// the document store's credentials collection. Used for development and for
// deployments without a Firebase project.
type LocalService struct {
	credentials repositories.CredentialRepository
}

// NewLocalService creates a new LocalService
func NewLocalService(credentials repositories.CredentialRepository) *LocalService {
	return &LocalService{credentials: credentials}
}

// Create hashes the password and stores a new credential document
func (s *LocalService) Create(ctx context.Context, email, password string) (string, error) {
	_, err := s.credentials.GetCredentialByEmail(ctx, email)
	if err == nil {
		return "", fmt.Errorf("email %s already registered", email)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	cred := &models.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.credentials.CreateCredential(ctx, cred); err != nil {
		return "", err
	}
	return cred.UserID, nil
}

// Verify compares the password against the stored hash
func (s *LocalService) Verify(ctx context.Context, email, password string) (string, error) {
	cred, err := s.credentials.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return cred.UserID, nil
}
