// Package store persists quotes, clients, users, and sessions in SQLite.
// It implements the repository ports with plain database/sql; dates are
// stored as RFC 3339 strings in UTC.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen/quotedesk/internal/domain"
	"github.com/jsamuelsen/quotedesk/internal/ports"
)

// Store is the SQLite-backed implementation of the repository ports.
type Store struct {
	conn *sql.DB
}

var (
	_ ports.QuoteRepository  = (*Store)(nil)
	_ ports.ClientRepository = (*Store)(nil)
	_ ports.UserRepository   = (*Store)(nil)
	_ ports.HealthChecker    = (*Store)(nil)
)

// New opens (or creates) the database at path and runs pending
// migrations.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// Check implements ports.HealthChecker by pinging the database.
func (s *Store) Check(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// ResolveClient returns the client with the given owner and name,
// creating it first if absent. The unique (owner_id, name) constraint
// makes the insert a no-op when the client already exists.
func (s *Store) ResolveClient(ctx context.Context, ownerID, name string) (*domain.Client, error) {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO clients (id, owner_id, name) VALUES (?, ?, ?)
		 ON CONFLICT(owner_id, name) DO NOTHING`,
		uuid.NewString(), ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("upserting client: %w", err)
	}

	client := &domain.Client{OwnerID: ownerID, Name: name}
	err = s.conn.QueryRowContext(ctx,
		`SELECT id FROM clients WHERE owner_id = ? AND name = ?`,
		ownerID, name).Scan(&client.ID)
	if err != nil {
		return nil, fmt.Errorf("selecting client: %w", err)
	}
	return client, nil
}

// InsertQuote inserts quote metadata only and returns the assigned id.
func (s *Store) InsertQuote(ctx context.Context, q *domain.Quote, clientID string) (string, error) {
	id := uuid.NewString()
	createdAt := q.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO quotes (id, owner_id, client_id, title, notes, total, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, q.OwnerID, clientID, q.Title, q.Notes, q.Total, createdAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting quote: %w", err)
	}
	return id, nil
}

// UpdateQuote updates metadata of an existing quote in place.
func (s *Store) UpdateQuote(ctx context.Context, q *domain.Quote, clientID string) error {
	result, err := s.conn.ExecContext(ctx,
		`UPDATE quotes SET client_id = ?, title = ?, notes = ?, total = ?
		 WHERE id = ? AND owner_id = ?`,
		clientID, q.Title, q.Notes, q.Total, q.ID, q.OwnerID)
	if err != nil {
		return fmt.Errorf("updating quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("quote", q.ID)
	}
	return nil
}

// DeleteQuoteItems removes every item row associated with a quote.
func (s *Store) DeleteQuoteItems(ctx context.Context, quoteID string) error {
	if _, err := s.conn.ExecContext(ctx,
		`DELETE FROM quote_items WHERE quote_id = ?`, quoteID); err != nil {
		return fmt.Errorf("deleting quote items: %w", err)
	}
	return nil
}

// InsertQuoteItems inserts the collection as new rows, preserving order
// through the position column.
func (s *Store) InsertQuoteItems(ctx context.Context, quoteID string, items domain.Collection) error {
	for i, li := range items {
		_, err := s.conn.ExecContext(ctx,
			`INSERT INTO quote_items (quote_id, item, quantity, width_height, price, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			quoteID, li.Description, li.Quantity, li.Dimension, li.UnitPrice, i)
		if err != nil {
			return fmt.Errorf("inserting quote item %d: %w", i, err)
		}
	}
	return nil
}

// GetQuote retrieves a quote with its items and resolved client name.
func (s *Store) GetQuote(ctx context.Context, ownerID, id string) (*domain.Quote, error) {
	q := &domain.Quote{}
	var createdAt string
	err := s.conn.QueryRowContext(ctx,
		`SELECT q.id, q.owner_id, c.name, q.title, q.notes, q.total, q.created_at
		 FROM quotes q JOIN clients c ON c.id = q.client_id
		 WHERE q.id = ? AND q.owner_id = ?`,
		id, ownerID).
		Scan(&q.ID, &q.OwnerID, &q.ClientName, &q.Title, &q.Notes, &q.Total, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", id)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting quote: %w", err)
	}

	if q.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing quote date: %w", err)
	}
	if q.Items, err = s.quoteItems(ctx, q.ID); err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuotes retrieves the owner's quotes, newest first. Filters narrow
// by client-name substring (case-insensitive) and inclusive creation
// date range; zero values leave a dimension unfiltered.
func (s *Store) ListQuotes(ctx context.Context, ownerID string, filter ports.QuoteFilter) ([]*domain.Quote, error) {
	query := `SELECT q.id, q.owner_id, c.name, q.title, q.notes, q.total, q.created_at
		 FROM quotes q JOIN clients c ON c.id = q.client_id
		 WHERE q.owner_id = ?`
	args := []any{ownerID}

	if filter.ClientName != "" {
		query += ` AND LOWER(c.name) LIKE '%' || LOWER(?) || '%'`
		args = append(args, filter.ClientName)
	}
	if !filter.From.IsZero() {
		from := time.Date(filter.From.Year(), filter.From.Month(), filter.From.Day(),
			0, 0, 0, 0, filter.From.Location())
		query += ` AND q.created_at >= ?`
		args = append(args, from.Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		to := time.Date(filter.To.Year(), filter.To.Month(), filter.To.Day(),
			23, 59, 59, 999999999, filter.To.Location())
		query += ` AND q.created_at <= ?`
		args = append(args, to.Format(time.RFC3339))
	}
	query += ` ORDER BY q.created_at DESC`

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.Quote
	for rows.Next() {
		q := &domain.Quote{}
		var createdAt string
		if err := rows.Scan(&q.ID, &q.OwnerID, &q.ClientName, &q.Title, &q.Notes, &q.Total, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}
		if q.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing quote date: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}

	for _, q := range quotes {
		if q.Items, err = s.quoteItems(ctx, q.ID); err != nil {
			return nil, err
		}
	}
	return quotes, nil
}

// DeleteQuote removes a quote and its items in one transaction.
func (s *Store) DeleteQuote(ctx context.Context, ownerID, id string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM quote_items WHERE quote_id = ?`, id); err != nil {
		return fmt.Errorf("deleting quote items: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM quotes WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("quote", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	tx = nil
	return nil
}

func (s *Store) quoteItems(ctx context.Context, quoteID string) (domain.Collection, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT item, quantity, width_height, price
		 FROM quote_items WHERE quote_id = ? ORDER BY position`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("selecting quote items: %w", err)
	}
	defer rows.Close()

	var items domain.Collection
	for rows.Next() {
		var li domain.LineItem
		if err := rows.Scan(&li.Description, &li.Quantity, &li.Dimension, &li.UnitPrice); err != nil {
			return nil, fmt.Errorf("scanning quote item: %w", err)
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quote items: %w", err)
	}
	return items, nil
}

// CreateUser inserts a new account. A unique-constraint violation on
// the email column maps to domain.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt.Format(time.RFC3339))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.NewConflictError("user", "email already registered")
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves an account by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	var createdAt string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`,
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("user", "")
	}
	if err != nil {
		return nil, fmt.Errorf("selecting user: %w", err)
	}

	if u.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing user date: %w", err)
	}
	return u, nil
}

// GetUserByID retrieves an account by id.
func (s *Store) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	var createdAt string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = ?`,
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting user: %w", err)
	}

	if u.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing user date: %w", err)
	}
	return u, nil
}

// CreateSession inserts a login session.
func (s *Store) CreateSession(ctx context.Context, sess *domain.Session) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)`,
		sess.Token, sess.UserID, sess.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by token.
func (s *Store) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	sess := &domain.Session{}
	var expiresAt string
	err := s.conn.QueryRowContext(ctx,
		`SELECT token, user_id, expires_at FROM sessions WHERE token = ?`,
		token).Scan(&sess.Token, &sess.UserID, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("session", "")
	}
	if err != nil {
		return nil, fmt.Errorf("selecting session: %w", err)
	}

	if sess.ExpiresAt, err = time.Parse(time.RFC3339, expiresAt); err != nil {
		return nil, fmt.Errorf("parsing session expiry: %w", err)
	}
	return sess, nil
}

// DeleteSession removes a session. Unknown tokens are not an error.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.conn.ExecContext(ctx,
		`DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
