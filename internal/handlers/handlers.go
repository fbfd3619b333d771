package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wenjun/instaclone/internal/client"
	"github.com/wenjun/instaclone/internal/models"
)

// getUserIDFromContext extracts the identity id stored by the JWT middleware
func getUserIDFromContext(c echo.Context) string {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return ""
	}
	return claims.UserID
}

// sessionFromContext resolves the caller's client session through the hub
func sessionFromContext(c echo.Context, hub *Hub) (*client.Client, error) {
	uid := getUserIDFromContext(c)
	if uid == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing session")
	}
	cl, err := hub.Session(c.Request().Context(), uid)
	if err != nil {
		return nil, httpError(err)
	}
	return cl, nil
}

// httpError maps the client layer's error taxonomy onto HTTP statuses
func httpError(err error) error {
	var (
		validationErr *client.ValidationError
		conflictErr   *client.ConflictError
		authErr       *client.AuthError
		stateErr      *client.StateError
		backendErr    *client.BackendError
	)
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		return echo.NewHTTPError(http.StatusConflict, conflictErr.Message)
	case errors.As(err, &authErr):
		return echo.NewHTTPError(http.StatusUnauthorized, authErr.Message)
	case errors.As(err, &stateErr):
		return echo.NewHTTPError(http.StatusUnauthorized, stateErr.Message)
	case errors.As(err, &backendErr):
		return echo.NewHTTPError(http.StatusBadGateway, backendErr.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
