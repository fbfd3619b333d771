package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wenjun/instaclone/internal/client"
)

func TestHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &client.ValidationError{Message: "empty field"}, http.StatusBadRequest},
		{"conflict", &client.ConflictError{Message: "username taken"}, http.StatusConflict},
		{"auth", &client.AuthError{Message: "invalid email or password"}, http.StatusUnauthorized},
		{"state", &client.StateError{Message: "no identity"}, http.StatusUnauthorized},
		{"backend", &client.BackendError{Op: "Cannot fetch posts", Err: errors.New("boom")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr, ok := httpError(tc.err).(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tc.code, httpErr.Code)
		})
	}
}

func TestHTTPErrorUnwrapsWrappedTaxonomy(t *testing.T) {
	wrapped := &client.BackendError{Op: "Cannot update posts", Err: errors.New("deadline exceeded")}
	httpErr, ok := httpError(wrapped).(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Contains(t, httpErr.Message, "Cannot update posts")
}
