// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotedesk/internal/domain"
	"github.com/jsamuelsen/quotedesk/internal/ports"
)

// QuoteService orchestrates the quote use cases: the multi-stage save
// protocol, dashboard listings, and single-quote retrieval and removal.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	quotes  ports.QuoteRepository
	clients ports.ClientRepository
	logger  *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Quotes  ports.QuoteRepository
	Clients ports.ClientRepository
	Logger  *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	return &QuoteService{
		quotes:  cfg.Quotes,
		clients: cfg.Clients,
		logger:  cfg.Logger,
	}
}

// Save persists a quote through the three-stage protocol: resolve the
// client by natural key, insert or update the quote metadata, then
// replace the item rows (delete the old set first when editing). The
// stages run strictly in order and fail fast; there is no rollback, so
// a failure in the item stage leaves metadata saved and items missing.
// The returned error carries the stage that failed.
//
// Validation runs before any storage call. The quote's total is trusted
// as computed by the caller. Returns the canonical quote id.
func (s *QuoteService) Save(ctx context.Context, q *domain.Quote) (string, error) {
	if err := validateQuote(q); err != nil {
		return "", err
	}

	editing := !q.IsNew()

	client, err := s.clients.ResolveClient(ctx, q.OwnerID, q.ClientName)
	if err != nil {
		s.logger.ErrorContext(ctx, "client resolve failed",
			slog.String("client_name", q.ClientName),
			slog.Any("error", err),
		)
		return "", domain.NewSaveError(domain.StageClientResolve, err)
	}

	quoteID := q.ID
	if editing {
		if err := s.quotes.UpdateQuote(ctx, q, client.ID); err != nil {
			s.logger.ErrorContext(ctx, "quote update failed",
				slog.String("quote_id", quoteID),
				slog.Any("error", err),
			)
			return "", domain.NewSaveError(domain.StageQuoteUpsert, err)
		}
	} else {
		quoteID, err = s.quotes.InsertQuote(ctx, q, client.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "quote insert failed",
				slog.Any("error", err),
			)
			return "", domain.NewSaveError(domain.StageQuoteUpsert, err)
		}
	}

	if editing {
		if err := s.quotes.DeleteQuoteItems(ctx, quoteID); err != nil {
			s.logger.ErrorContext(ctx, "item delete failed",
				slog.String("quote_id", quoteID),
				slog.Any("error", err),
			)
			return "", domain.NewSaveError(domain.StageItemReplace, err)
		}
	}
	if err := s.quotes.InsertQuoteItems(ctx, quoteID, q.Items); err != nil {
		s.logger.ErrorContext(ctx, "item insert failed",
			slog.String("quote_id", quoteID),
			slog.Any("error", err),
		)
		return "", domain.NewSaveError(domain.StageItemReplace, err)
	}

	s.logger.InfoContext(ctx, "quote saved",
		slog.String("quote_id", quoteID),
		slog.Bool("editing", editing),
		slog.Int("items", len(q.Items)),
	)

	return quoteID, nil
}

// List retrieves the owner's quotes, newest first, applying the filter.
func (s *QuoteService) List(ctx context.Context, ownerID string, filter ports.QuoteFilter) ([]*domain.Quote, error) {
	quotes, err := s.quotes.ListQuotes(ctx, ownerID, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "quote listing failed",
			slog.Any("error", err),
		)
		return nil, err
	}
	return quotes, nil
}

// Get retrieves a single quote with its items.
func (s *QuoteService) Get(ctx context.Context, ownerID, id string) (*domain.Quote, error) {
	quote, err := s.quotes.GetQuote(ctx, ownerID, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "quote fetch failed",
				slog.String("quote_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	return quote, nil
}

// Delete removes a quote and its items.
func (s *QuoteService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.quotes.DeleteQuote(ctx, ownerID, id); err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "quote delete failed",
				slog.String("quote_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "quote deleted",
		slog.String("quote_id", id),
	)
	return nil
}

// validateQuote checks the presence of every field the save protocol
// needs before any storage call runs.
func validateQuote(q *domain.Quote) error {
	switch {
	case q.OwnerID == "":
		return domain.NewValidationError("owner_id", "is required")
	case q.ClientName == "":
		return domain.NewValidationError("client_name", "is required")
	case q.Title == "":
		return domain.NewValidationError("title", "is required")
	case len(q.Items) == 0:
		return domain.NewValidationError("items", "at least one item is required")
	}
	return nil
}
