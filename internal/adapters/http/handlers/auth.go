package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotedesk/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotedesk/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotedesk/internal/app"
)

// AuthHandler handles account and session HTTP endpoints.
type AuthHandler struct {
	service *app.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *app.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// CredentialsRequest is the request body for register and login.
type CredentialsRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse is the HTTP response structure for an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionResponse carries a freshly opened session.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Register handles POST /api/v1/auth/register
// Creates an account. Responds 409 when the email is already taken.
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Login handles POST /api/v1/auth/login
// Verifies credentials and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Me handles GET /api/v1/auth/me
// Returns the account behind the authenticated session.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Logout handles POST /api/v1/auth/logout
// Closes the authenticated session. Always succeeds for a valid session.
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.service.Logout(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterAuthRoutes registers the public auth routes on the given group.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
}

// RegisterSessionRoutes registers auth routes that require a session.
func (h *AuthHandler) RegisterSessionRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.GET("/me", h.Me)
	auth.POST("/logout", h.Logout)
}
