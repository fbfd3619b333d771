package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wenjun/instaclone/internal/models"
)

// UserHandler handles profile reads, edits and the profile image upload
type UserHandler struct {
	hub *Hub
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(hub *Hub) *UserHandler {
	return &UserHandler{hub: hub}
}

// RegisterProfileRoutes registers profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/me", h.GetProfile)
	g.PUT("/me", h.UpdateProfile)
	g.POST("/me/image", h.UploadProfileImage)
	g.POST("/users/:id/follow", h.ToggleFollow)
}

// GetProfile returns the cached profile cell
func (h *UserHandler) GetProfile(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"signedIn": cl.State().SignedIn(),
		"profile":  cl.State().Profile(),
	})
}

// UpdateProfile applies a partial profile edit; omitted fields keep their
// cached values
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	name, username, bio := req.Name, req.Username, req.Bio
	if cached := cl.State().Profile(); cached != nil {
		if name == "" {
			name = cached.Name
		}
		if username == "" {
			username = cached.Username
		}
		if bio == "" {
			bio = cached.Bio
		}
	}

	if err := cl.UpdateProfile(c.Request().Context(), name, username, bio); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cl.State().Profile())
}

// UploadProfileImage stores the uploaded image and fans the new URL out to
// the user's posts
func (h *UserHandler) UploadProfileImage(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	data, err := readImageFile(c)
	if err != nil {
		return err
	}

	if err := cl.UploadProfileImage(c.Request().Context(), data); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cl.State().Profile())
}

// ToggleFollow flips the follow state towards the target user
func (h *UserHandler) ToggleFollow(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	targetID := c.Param("id")
	if err := cl.ToggleFollow(c.Request().Context(), targetID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cl.State().Profile())
}

// readImageFile reads the "image" part of a multipart upload
func readImageFile(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Cannot open image file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Cannot read image file")
	}
	return data, nil
}
