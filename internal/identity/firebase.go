package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"firebase.google.com/go/v4/auth"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// FirebaseService implements Service against Firebase Authentication.
// Identity creation goes through the admin SDK; password verification has no
// admin API, so it calls the Identity Toolkit REST endpoint with the project's
// web API key, the same call the mobile SDK makes.
type FirebaseService struct {
	auth       *auth.Client
	apiKey     string
	httpClient *http.Client
}

// NewFirebaseService creates a new FirebaseService
func NewFirebaseService(authClient *auth.Client, apiKey string) *FirebaseService {
	return &FirebaseService{
		auth:       authClient,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// Create registers a new Firebase user and returns its UID
func (s *FirebaseService) Create(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	user, err := s.auth.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create identity: %w", err)
	}
	return user.UID, nil
}

// Verify checks the password against Firebase and returns the UID
func (s *FirebaseService) Verify(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	url := signInEndpoint + "?key=" + s.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("verify identity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil &&
			(body.Error.Message == "EMAIL_NOT_FOUND" || body.Error.Message == "INVALID_PASSWORD" ||
				body.Error.Message == "INVALID_LOGIN_CREDENTIALS") {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify identity: status %d", resp.StatusCode)
	}

	var body struct {
		LocalID string `json:"localId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.LocalID, nil
}
