package benchmark

import (
	"fmt"
	"testing"
	"time"

	"github.com/jsamuelsen/quotedesk/internal/domain"
	"github.com/jsamuelsen/quotedesk/internal/export"
)

// benchQuote builds a quote with the given number of line items.
func benchQuote(items int) *domain.Quote {
	collection := make(domain.Collection, 0, items)
	for i := 0; i < items; i++ {
		collection = append(collection, domain.LineItem{
			Description: fmt.Sprintf("Roller blind %d", i),
			Quantity:    float64(i%5 + 1),
			Dimension:   "36x72",
			UnitPrice:   49.99,
		})
	}

	return &domain.Quote{
		ID:         "bench-1",
		OwnerID:    "owner-1",
		ClientName: "Acme Interiors",
		Title:      "Office Refit",
		Notes:      domain.EncodeNotes("second floor, east wing"),
		Total:      collection.Total(),
		CreatedAt:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Items:      collection,
	}
}

// BenchmarkQuoteCSV measures single-quote CSV rendering.
func BenchmarkQuoteCSV(b *testing.B) {
	quote := benchQuote(25)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := export.QuoteCSV(quote); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkQuotePDF measures single-quote PDF rendering, the most
// expensive export path.
func BenchmarkQuotePDF(b *testing.B) {
	quote := benchQuote(25)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := export.QuotePDF(quote); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllQuotesCSV measures the bulk dashboard download across
// listing sizes.
func BenchmarkAllQuotesCSV(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("quotes_%d", size), func(b *testing.B) {
			quotes := make([]*domain.Quote, 0, size)
			for i := 0; i < size; i++ {
				quotes = append(quotes, benchQuote(5))
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				export.AllQuotesCSV(quotes)
			}
		})
	}
}

// BenchmarkCollectionTotal measures the total computation on a large
// item table.
func BenchmarkCollectionTotal(b *testing.B) {
	items := benchQuote(100).Items

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		items.Total()
	}
}
