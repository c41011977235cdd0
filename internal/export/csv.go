package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jsamuelsen/quotedesk/internal/domain"
)

// ItemsCSV renders a bare line item table. The cells are a plain comma
// join without quoting: every column is either numeric or a short label,
// and downstream spreadsheet imports expect the unquoted shape.
func ItemsCSV(items domain.Collection) []byte {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, strings.Join(itemHeader, ","))
	for _, li := range items {
		lines = append(lines, strings.Join(itemRow(li), ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

// QuoteCSV renders a single quote: a metadata block followed by the item
// table, RFC 4180 encoded so free-text titles and descriptions survive
// embedded commas.
func QuoteCSV(q *domain.Quote) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Title", q.Title},
		{"Client", q.ClientName},
		{"Date", q.CreatedAt.Format(dateLayout)},
		{"Total", "$" + money(q.Total)},
		{},
		itemHeader,
	}
	for _, li := range q.Items {
		records = append(records, itemRow(li))
	}

	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("encoding quote csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding quote csv: %w", err)
	}
	return buf.Bytes(), nil
}

// AllQuotesCSV renders the dashboard bulk download: one row per quote
// with every cell double-quoted and newlines in notes flattened to
// spaces, so each quote stays on a single physical line.
func AllQuotesCSV(quotes []*domain.Quote) []byte {
	lines := make([]string, 0, len(quotes)+1)
	lines = append(lines, strings.Join([]string{"Title", "Client", "Date", "Total", "Content"}, ","))

	for _, q := range quotes {
		notes := strings.ReplaceAll(domain.DecodeNotes(q.Notes), "\n", " ")
		cells := []string{
			q.Title,
			q.ClientName,
			q.CreatedAt.Format(dateLayout),
			"$" + money(q.Total),
			notes,
		}
		quoted := make([]string, len(cells))
		for i, c := range cells {
			quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}
