package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/wenjun/instaclone/internal/models"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	hub       *Hub
	jwtSecret string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(hub *Hub, jwtSecret string) *AuthHandler {
	return &AuthHandler{hub: hub, jwtSecret: jwtSecret}
}

// RegisterAuthRoutes registers the unauthenticated auth routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}

// RegisterSessionRoutes registers the auth routes that need a session
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
}

// Signup creates an identity plus profile document and returns a session token
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cl := h.hub.NewSession()
	if err := cl.SignUp(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return httpError(err)
	}

	uid, _ := cl.CurrentIdentity()
	h.hub.Bind(uid, cl)

	token, err := h.generateJWT(uid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

// Login verifies the credentials, bootstraps a session and returns a token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cl := h.hub.NewSession()
	if err := cl.LogIn(c.Request().Context(), req.Email, req.Password); err != nil {
		return httpError(err)
	}

	uid, _ := cl.CurrentIdentity()
	h.hub.Bind(uid, cl)

	token, err := h.generateJWT(uid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Logout clears the session state and drops the session from the hub
func (h *AuthHandler) Logout(c echo.Context) error {
	uid := getUserIDFromContext(c)
	cl, err := sessionFromContext(c, h.hub)
	if err != nil {
		return err
	}

	cl.LogOut()
	h.hub.Remove(uid)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

// generateJWT generates a session token for an identity id
func (h *AuthHandler) generateJWT(uid string) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)), // Token expires in 72 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
