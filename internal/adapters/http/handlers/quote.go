package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotedesk/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotedesk/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotedesk/internal/app"
	"github.com/jsamuelsen/quotedesk/internal/domain"
	"github.com/jsamuelsen/quotedesk/internal/export"
	"github.com/jsamuelsen/quotedesk/internal/ports"
)

// queryDateLayout is the wire format for date range filters.
const queryDateLayout = "2006-01-02"

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// LineItemRequest is one item row in a save or export request.
type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Dimension   string  `json:"dimension"`
	UnitPrice   float64 `json:"unitPrice"`
}

// SaveQuoteRequest is the request body for saving a quote. An empty ID
// creates a new quote; a present ID updates the existing one.
type SaveQuoteRequest struct {
	ID         string            `json:"id"`
	ClientName string            `json:"clientName" validate:"required,notempty"`
	Title      string            `json:"title"      validate:"required,notempty"`
	Notes      string            `json:"notes"`
	Items      []LineItemRequest `json:"items"      validate:"required,min=1"`
}

// SaveQuoteResponse carries the canonical id of the saved quote.
type SaveQuoteResponse struct {
	ID string `json:"id"`
}

// LineItemResponse is one item row in a quote response.
type LineItemResponse struct {
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	Dimension     string  `json:"dimension"`
	UnitPrice     float64 `json:"unitPrice"`
	ExtendedPrice float64 `json:"extendedPrice"`
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	ID         string             `json:"id"`
	ClientName string             `json:"clientName"`
	Title      string             `json:"title"`
	Notes      string             `json:"notes"`
	Total      float64            `json:"total"`
	CreatedAt  time.Time          `json:"createdAt"`
	Items      []LineItemResponse `json:"items"`
}

// ListQuotesResponse wraps the dashboard listing.
type ListQuotesResponse struct {
	Quotes []*QuoteResponse `json:"quotes"`
}

// ItemsExportRequest is the request body for exporting a scratch item
// table that is not attached to a saved quote.
type ItemsExportRequest struct {
	Items []LineItemRequest `json:"items" validate:"required,min=1"`
}

// toCollection converts request item rows to the domain collection.
func toCollection(rows []LineItemRequest) domain.Collection {
	items := make(domain.Collection, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.LineItem{
			Description: r.Description,
			Quantity:    r.Quantity,
			Dimension:   r.Dimension,
			UnitPrice:   r.UnitPrice,
		})
	}

	return items
}

// toQuote builds the domain quote from a save request. Notes are stored
// in the canonical envelope and the total snapshot is computed from the
// submitted rows.
func toQuote(req *SaveQuoteRequest, ownerID string) *domain.Quote {
	items := toCollection(req.Items)

	return &domain.Quote{
		ID:         req.ID,
		OwnerID:    ownerID,
		ClientName: req.ClientName,
		Title:      req.Title,
		Notes:      domain.EncodeNotes(req.Notes),
		Total:      items.Total(),
		Items:      items,
	}
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, LineItemResponse{
			Description:   li.Description,
			Quantity:      li.Quantity,
			Dimension:     li.Dimension,
			UnitPrice:     li.UnitPrice,
			ExtendedPrice: li.ExtendedPrice(),
		})
	}

	return &QuoteResponse{
		ID:         q.ID,
		ClientName: q.ClientName,
		Title:      q.Title,
		Notes:      domain.DecodeNotes(q.Notes),
		Total:      q.Total,
		CreatedAt:  q.CreatedAt,
		Items:      items,
	}
}

// SaveQuote handles POST /api/v1/quotes
// Persists a quote through the save protocol. Responds 201 for a new
// quote and 200 for an update, in both cases with the canonical id.
func (h *QuoteHandler) SaveQuote(c *gin.Context) {
	var req SaveQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.service.Save(c.Request.Context(), toQuote(&req, middleware.OwnerID(c)))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}

	c.JSON(status, SaveQuoteResponse{ID: id})
}

// ListQuotes handles GET /api/v1/quotes
// Returns the owner's quotes, newest first. Supports client substring
// and inclusive date range filters via the client, from and to query
// parameters.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	filter, err := parseQuoteFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			err.Error(),
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	quotes, err := h.service.List(c.Request.Context(), middleware.OwnerID(c), filter)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := ListQuotesResponse{Quotes: make([]*QuoteResponse, 0, len(quotes))}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, toQuoteResponse(q))
	}

	c.JSON(http.StatusOK, resp)
}

// GetQuote handles GET /api/v1/quotes/:id
// Returns a single quote with its items.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.service.Get(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// DeleteQuote handles DELETE /api/v1/quotes/:id
// Removes a quote and its items.
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportQuote handles GET /api/v1/quotes/:id/export
// Streams the quote as a CSV or PDF download. The format query
// parameter selects the encoding and defaults to csv.
func (h *QuoteHandler) ExportQuote(c *gin.Context) {
	quote, err := h.service.Get(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var (
		data        []byte
		contentType string
	)

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		data, err = export.QuoteCSV(quote)
		contentType = "text/csv"
	case "pdf":
		data, err = export.QuotePDF(quote)
		contentType = "application/pdf"
	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"format must be csv or pdf",
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondAttachment(c, export.QuoteFilename(quote.Title, format), contentType, data)
}

// ExportAllQuotes handles GET /api/v1/quotes/export
// Streams every quote of the owner as a single CSV download.
func (h *QuoteHandler) ExportAllQuotes(c *gin.Context) {
	quotes, err := h.service.List(c.Request.Context(), middleware.OwnerID(c), ports.QuoteFilter{})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondAttachment(c,
		export.AllQuotesFilename(time.Now()),
		"text/csv",
		export.AllQuotesCSV(quotes),
	)
}

// ExportItems handles POST /api/v1/items/export
// Exports a submitted item table without saving it. Used by editing
// surfaces to download work in progress.
func (h *QuoteHandler) ExportItems(c *gin.Context) {
	var req ItemsExportRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	items := toCollection(req.Items)

	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		respondAttachment(c, export.ItemsCSVFilename, "text/csv", export.ItemsCSV(items))
	case "pdf":
		data, err := export.ItemsPDF(items)
		if err != nil {
			dto.HandleError(c, err)
			return
		}
		respondAttachment(c, export.ItemsPDFFilename, "application/pdf", data)
	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"format must be csv or pdf",
		).WithTraceID(dto.GetTraceID(c)))
	}
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.POST("", h.SaveQuote)
	quotes.GET("", h.ListQuotes)
	quotes.GET("/export", h.ExportAllQuotes)
	quotes.GET("/:id", h.GetQuote)
	quotes.DELETE("/:id", h.DeleteQuote)
	quotes.GET("/:id/export", h.ExportQuote)

	rg.POST("/items/export", h.ExportItems)
}

// parseQuoteFilter reads the listing filter from query parameters.
func parseQuoteFilter(c *gin.Context) (ports.QuoteFilter, error) {
	filter := ports.QuoteFilter{ClientName: c.Query("client")}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			return ports.QuoteFilter{}, errors.New("from must be formatted YYYY-MM-DD")
		}
		filter.From = from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			return ports.QuoteFilter{}, errors.New("to must be formatted YYYY-MM-DD")
		}
		filter.To = to
	}

	return filter, nil
}

// respondBindError maps binding and validation failures to a 400 with
// field details when available.
func respondBindError(c *gin.Context, err error) {
	if fieldErrors := dto.ValidationErrors(err); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			fieldErrors,
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"malformed request body",
	).WithTraceID(dto.GetTraceID(c)))
}
