package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// FeedHandler handles the personalized/general feed
type FeedHandler struct {
	hub *Hub
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(hub *Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed recomputes and returns the feed: followed users' posts, falling
// back to the last-24h general feed
func (h *FeedHandler) GetFeed(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	if err := cl.ComputeFeed(c.Request().Context()); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": cl.State().Feed()})
}
