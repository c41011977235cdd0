// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quotedesk/internal/domain"
)

// QuoteFilter narrows a quote listing. Zero values leave a dimension
// unfiltered.
type QuoteFilter struct {
	// ClientName matches client names containing this substring,
	// case-insensitively.
	ClientName string

	// From and To bound the creation date, inclusive on both ends.
	From time.Time
	To   time.Time
}

// QuoteRepository persists quotes and their line items. The operations are
// deliberately fine-grained: the save protocol in the application layer
// sequences them and owns the insert-vs-update decision, because the backend
// has no atomic "replace the children of a parent" primitive.
type QuoteRepository interface {
	// InsertQuote inserts quote metadata only (no items) and returns the
	// assigned identifier.
	InsertQuote(ctx context.Context, q *domain.Quote, clientID string) (string, error)

	// UpdateQuote updates metadata of an existing quote in place by its
	// identity. Returns domain.ErrNotFound if no such quote exists.
	UpdateQuote(ctx context.Context, q *domain.Quote, clientID string) error

	// DeleteQuoteItems removes every item row associated with a quote.
	DeleteQuoteItems(ctx context.Context, quoteID string) error

	// InsertQuoteItems inserts the full collection as new rows, in order.
	InsertQuoteItems(ctx context.Context, quoteID string, items domain.Collection) error

	// GetQuote retrieves a quote with its items and resolved client name.
	// Returns domain.ErrNotFound if the quote does not exist or belongs to
	// another owner.
	GetQuote(ctx context.Context, ownerID, id string) (*domain.Quote, error)

	// ListQuotes retrieves the owner's quotes, newest first, with items and
	// client names joined in.
	ListQuotes(ctx context.Context, ownerID string, filter QuoteFilter) ([]*domain.Quote, error)

	// DeleteQuote removes a quote and its items.
	// Returns domain.ErrNotFound if the quote does not exist or belongs to
	// another owner.
	DeleteQuote(ctx context.Context, ownerID, id string) error
}

// ClientRepository resolves quote recipients by natural key.
type ClientRepository interface {
	// ResolveClient returns the client with the given owner and name,
	// creating it first if absent. Two resolves of the same (owner, name)
	// pair must yield the same record.
	ResolveClient(ctx context.Context, ownerID, name string) (*domain.Client, error)
}

// UserRepository persists accounts and login sessions.
type UserRepository interface {
	// CreateUser inserts a new account.
	// Returns domain.ErrConflict if the email is already registered.
	CreateUser(ctx context.Context, u *domain.User) error

	// GetUserByEmail retrieves an account by email.
	// Returns domain.ErrNotFound if no such account exists.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID retrieves an account by id.
	// Returns domain.ErrNotFound if no such account exists.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// CreateSession inserts a login session.
	CreateSession(ctx context.Context, s *domain.Session) error

	// GetSession retrieves a session by token.
	// Returns domain.ErrNotFound if the token is unknown.
	GetSession(ctx context.Context, token string) (*domain.Session, error)

	// DeleteSession removes a session. Unknown tokens are not an error.
	DeleteSession(ctx context.Context, token string) error
}
