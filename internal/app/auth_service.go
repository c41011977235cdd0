package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotedesk/internal/domain"
	"github.com/jsamuelsen/quotedesk/internal/ports"
)

// DefaultSessionTTL is used when no session lifetime is configured.
const DefaultSessionTTL = 24 * time.Hour

// AuthService manages accounts and login sessions. Passwords are stored
// as bcrypt hashes; sessions are opaque random tokens with an expiry.
type AuthService struct {
	users      ports.UserRepository
	logger     *slog.Logger
	sessionTTL time.Duration
	bcryptCost int
	now        func() time.Time
}

// AuthServiceConfig contains configuration for the auth service.
// Zero values fall back to DefaultSessionTTL and bcrypt.DefaultCost.
type AuthServiceConfig struct {
	Users      ports.UserRepository
	Logger     *slog.Logger
	SessionTTL time.Duration
	BcryptCost int
}

// NewAuthService creates a new auth service with the provided dependencies.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      cfg.Users,
		logger:     cfg.Logger,
		sessionTTL: ttl,
		bcryptCost: cost,
		now:        time.Now,
	}
}

// Register creates an account for the given credentials.
// Returns domain.ErrConflict when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if !domain.IsConflict(err) {
			s.logger.ErrorContext(ctx, "user creation failed",
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
	)
	return user, nil
}

// Login verifies credentials and opens a session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		s.logger.ErrorContext(ctx, "user lookup failed",
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewUnauthorizedError("invalid credentials")
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().UTC().Add(s.sessionTTL),
	}
	if err := s.users.CreateSession(ctx, session); err != nil {
		s.logger.ErrorContext(ctx, "session creation failed",
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
	)
	return session, nil
}

// UserFromToken resolves a session token to the owning user id.
// Expired sessions are removed on sight.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.NewUnauthorizedError("missing token")
	}

	session, err := s.users.GetSession(ctx, token)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", domain.NewUnauthorizedError("invalid token")
		}
		return "", err
	}

	if session.Expired(s.now()) {
		// Best effort cleanup; the expiry check already denies access.
		if err := s.users.DeleteSession(ctx, token); err != nil {
			s.logger.WarnContext(ctx, "expired session cleanup failed",
				slog.Any("error", err),
			)
		}
		return "", domain.NewUnauthorizedError("session expired")
	}

	return session.UserID, nil
}

// CurrentUser retrieves the account behind an authenticated session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "user lookup failed",
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	return user, nil
}

// Logout closes a session. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.users.DeleteSession(ctx, token)
}
