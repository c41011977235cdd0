package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotedesk/internal/domain"
)

// ContextKeyTraceID is the gin context key middleware uses to stash the
// trace identifier for the request.
const ContextKeyTraceID = "trace_id"

// GetTraceID returns the trace identifier for the request. The context
// value set by middleware wins; the X-Request-ID header is the fallback.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyTraceID); exists {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	return c.GetHeader("X-Request-ID")
}

// HandleError writes a JSON error response for a domain error. Storage
// and unknown failures get generic messages so internals do not leak to
// API clients.
func HandleError(c *gin.Context, err error) {
	var (
		status  int
		code    string
		message string
	)

	switch {
	case domain.IsNotFound(err):
		status, code, message = http.StatusNotFound, ErrorCodeNotFound, err.Error()
	case domain.IsConflict(err):
		status, code, message = http.StatusConflict, ErrorCodeConflict, err.Error()
	case domain.IsValidation(err):
		status, code, message = http.StatusBadRequest, ErrorCodeValidation, err.Error()
	case domain.IsUnauthorized(err):
		status, code, message = http.StatusUnauthorized, ErrorCodeUnauthorized, err.Error()
	case domain.IsForbidden(err):
		status, code, message = http.StatusForbidden, ErrorCodeForbidden, err.Error()
	case domain.IsUnavailable(err):
		status, code = http.StatusServiceUnavailable, ErrorCodeUnavailable
		message = "service temporarily unavailable"
	default:
		status, code = http.StatusInternalServerError, ErrorCodeInternal
		message = "an internal error occurred"
	}

	c.JSON(status, NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
