package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotedesk/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotedesk/internal/domain"
)

// fakeSessions resolves tokens from a fixed map.
type fakeSessions struct {
	users map[string]string
}

func (f *fakeSessions) UserFromToken(_ context.Context, token string) (string, error) {
	if id, ok := f.users[token]; ok {
		return id, nil
	}

	return "", domain.NewUnauthorizedError("invalid token")
}

// TestSessionToken tests bearer token extraction from the Authorization header.
func TestSessionToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "extracts bearer token",
			header:   "Bearer tok-123",
			expected: "tok-123",
		},
		{
			name:     "empty when header missing",
			header:   "",
			expected: "",
		},
		{
			name:     "empty for non-bearer credentials",
			header:   "Basic dXNlcjpwYXNz",
			expected: "",
		},
		{
			name:     "case sensitive scheme",
			header:   "bearer tok-123",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.expected, SessionToken(c))
		})
	}
}

// TestRequireSession tests the RequireSession middleware.
func TestRequireSession(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{users: map[string]string{"tok-123": "user-1"}}

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedOwner  string
	}{
		{
			name:           "passes with valid token",
			header:         "Bearer tok-123",
			expectedStatus: http.StatusOK,
			expectedOwner:  "user-1",
		},
		{
			name:           "blocks unknown token",
			header:         "Bearer nope",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "blocks missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var capturedOwner, capturedToken string

			router := gin.New()
			router.Use(RequireSession(sessions))
			router.GET("/test", func(c *gin.Context) {
				capturedOwner = OwnerID(c)
				capturedToken = GetSessionToken(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedOwner, capturedOwner)
				assert.Equal(t, "tok-123", capturedToken)
				return
			}

			var resp dto.ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
		})
	}
}

// TestOwnerID tests the OwnerID helper.
func TestOwnerID(t *testing.T) {
	t.Parallel()

	t.Run("returns value when set", func(t *testing.T) {
		t.Parallel()

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ContextKeyOwnerID, "user-1")

		assert.Equal(t, "user-1", OwnerID(c))
	})

	t.Run("returns empty when not set", func(t *testing.T) {
		t.Parallel()

		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		assert.Empty(t, OwnerID(c))
	})
}
