package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StateHandler exposes the busy flags and the one-shot notification cell
type StateHandler struct {
	hub *Hub
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(hub *Hub) *StateHandler {
	return &StateHandler{hub: hub}
}

// RegisterStateRoutes registers observable-state routes
func (h *StateHandler) RegisterStateRoutes(g *echo.Group) {
	g.GET("/state", h.GetState)
	g.GET("/notification", h.TakeNotification)
}

// GetState returns the signed-in flag and per-family busy flags
func (h *StateHandler) GetState(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"signedIn": cl.State().SignedIn(),
		"busy":     cl.State().BusyFlags(),
	})
}

// TakeNotification consumes the pending message; 204 when none is pending
// or it was already consumed
func (h *StateHandler) TakeNotification(c echo.Context) error {
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	message, ok := cl.TakeNotification()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}
