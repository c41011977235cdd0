package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotedesk/internal/adapters/http/dto"
)

const (
	// ContextKeyOwnerID is the gin context key for the authenticated user id.
	ContextKeyOwnerID = "owner_id"

	// ContextKeySessionToken is the gin context key for the raw session token.
	ContextKeySessionToken = "session_token"

	bearerPrefix = "Bearer "
)

// SessionResolver resolves a bearer session token to a user id.
// *app.AuthService satisfies this.
type SessionResolver interface {
	UserFromToken(ctx context.Context, token string) (string, error)
}

// SessionToken extracts the bearer token from the Authorization header.
// Returns the empty string when the header is missing or not a bearer
// credential.
func SessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimPrefix(header, bearerPrefix)
}

// RequireSession returns middleware that authenticates the request via a
// bearer session token. On success the owning user id and the raw token
// are stored in the gin context; on failure the request is aborted with
// 401.
func RequireSession(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)

		userID, err := sessions.UserFromToken(c.Request.Context(), token)
		if err != nil {
			abortWithUnauthorized(c, err.Error())
			return
		}

		c.Set(ContextKeyOwnerID, userID)
		c.Set(ContextKeySessionToken, token)
		c.Next()
	}
}

// OwnerID retrieves the authenticated user id from the gin context.
// Returns the empty string outside a RequireSession-protected route.
func OwnerID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyOwnerID)
}

// GetSessionToken retrieves the raw session token from the gin context.
func GetSessionToken(c *gin.Context) string {
	return getIDFromContext(c, ContextKeySessionToken)
}

// abortWithUnauthorized aborts with a 401 Unauthorized response.
func abortWithUnauthorized(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message)

	// Add trace ID if available
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
}
