package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jsamuelsen/quotedesk/internal/domain"
)

const tableRowHeight = 8.0

// colWidths spans the printable width of an A4 portrait page with
// default margins. Description gets the widest column.
var colWidths = [5]float64{70, 20, 30, 35, 35}

// QuotePDF renders a full quote document: heading, client and date,
// total, word-wrapped notes when present, then the item table.
func QuotePDF(q *domain.Quote) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Quote: "+q.Title)
	doc.Ln(14)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, "Client: "+q.ClientName)
	doc.Ln(8)
	doc.Cell(0, 8, "Date: "+q.CreatedAt.Format(dateLayout))
	doc.Ln(8)
	doc.Cell(0, 8, "Total: $"+money(q.Total))
	doc.Ln(12)

	if notes := domain.DecodeNotes(q.Notes); notes != "" {
		doc.SetFont("Helvetica", "B", 12)
		doc.Cell(0, 8, "Notes:")
		doc.Ln(8)
		doc.SetFont("Helvetica", "", 12)
		doc.MultiCell(0, 6, notes, "", "L", false)
		doc.Ln(6)
	}

	if len(q.Items) > 0 {
		writeItemTable(doc, q.Items)
	}

	return render(doc)
}

// ItemsPDF renders a bare line item table with the computed total
// directly below the last row.
func ItemsPDF(items domain.Collection) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	writeItemTable(doc, items)

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Total: $"+money(items.Total()))

	return render(doc)
}

func writeItemTable(doc *fpdf.Fpdf, items domain.Collection) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, h := range itemHeader {
		doc.CellFormat(colWidths[i], tableRowHeight, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	for _, li := range items {
		for i, cell := range itemRow(li) {
			align := "L"
			if i >= 3 {
				align = "R"
			}
			doc.CellFormat(colWidths[i], tableRowHeight, cell, "1", 0, align, false, 0, "")
		}
		doc.Ln(-1)
	}
}

func render(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
