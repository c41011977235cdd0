// Package domain contains core business entities and rules.
package domain

import "time"

// Quote is a quotation owned by a user, with its line items.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the persisted identifier. Empty for a quote that has not been
	// saved yet; its presence is what switches a save between insert and
	// update semantics.
	ID string

	// OwnerID is the user that owns this quote.
	OwnerID string

	// ClientName is the client the quote is addressed to. Resolved to a
	// Client record by natural key at save time.
	ClientName string

	// Title is the quote title, also the basis for export filenames.
	Title string

	// Notes is free text attached to the quote. Stored values may be a
	// plain string or a JSON envelope; see DecodeNotes.
	Notes string

	// Total is a persisted snapshot of the items' summed extended price,
	// computed by the caller at save time. It is not recomputed when items
	// change in memory without a save.
	Total float64

	// Items is the owned line item collection.
	Items Collection

	// CreatedAt is assigned by storage on first insert.
	CreatedAt time.Time
}

// IsNew reports whether the quote has never been persisted.
func (q *Quote) IsNew() bool {
	return q.ID == ""
}

// Client is a quote recipient, unique per owner by name. Many quotes may
// reference the same client; renaming the client on a new quote creates a
// second, disconnected record rather than merging.
type Client struct {
	ID      string
	OwnerID string
	Name    string
}

// User is an authenticated account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a login session identified by an opaque bearer token.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
