package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wenjun/instaclone/internal/models"
)

// PostHandler handles post creation, own-posts reads, likes, search and
// comments
type PostHandler struct {
	hub *Hub
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(hub *Hub) *PostHandler {
	return &PostHandler{hub: hub}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/mine", h.GetOwnPosts)
	g.GET("/posts/search", h.SearchPosts)
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/comments", h.GetComments)
	g.POST("/posts/:id/comments", h.CreateComment)
}

// CreatePost uploads the image part and creates the post document
func (h *PostHandler) CreatePost(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	req := models.CreatePostRequest{Description: c.FormValue("description")}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := readImageFile(c)
	if err != nil {
		return err
	}

	if err := cl.CreatePost(c.Request().Context(), image, req.Description); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"posts": cl.State().Posts()})
}

// GetOwnPosts refreshes and returns the caller's posts, newest first
func (h *PostHandler) GetOwnPosts(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	if err := cl.RefreshOwnPosts(c.Request().Context()); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": cl.State().Posts()})
}

// SearchPosts runs a token search; an empty query leaves the results as-is
func (h *PostHandler) SearchPosts(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	if err := cl.SearchPosts(c.Request().Context(), c.QueryParam("q")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": cl.State().SearchResults()})
}

// ToggleLike flips the caller's like on a post
func (h *PostHandler) ToggleLike(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	if err := cl.ToggleLike(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}

// GetComments loads and returns a post's comments, newest first
func (h *PostHandler) GetComments(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	if err := cl.LoadComments(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": cl.State().Comments()})
}

// CreateComment appends a comment to a post
func (h *PostHandler) CreateComment(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := cl.CreateComment(c.Request().Context(), c.Param("id"), req.Text); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"comments": cl.State().Comments()})
}
