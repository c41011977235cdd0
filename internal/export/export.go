// Package export renders quotes and line item collections into their
// downloadable CSV and PDF projections. All rendering is pure: functions
// take domain values and return bytes, leaving transport concerns
// (Content-Disposition, MIME types) to the HTTP layer.
package export

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/quotedesk/internal/domain"
)

// dateLayout renders dates the way the dashboard shows them.
const dateLayout = "01/02/2006"

// itemHeader is the column header shared by every item table projection.
var itemHeader = []string{"Item", "Qty", "W x H", "Price", "Extended Price"}

// itemRow projects a line item into the shared five-column tuple.
// Prices carry exactly two decimals; quantity keeps its shortest form.
func itemRow(li domain.LineItem) []string {
	return []string{
		li.Description,
		strconv.FormatFloat(li.Quantity, 'f', -1, 64),
		li.Dimension,
		money(li.UnitPrice),
		money(li.ExtendedPrice()),
	}
}

// money formats an amount with exactly two decimal places.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
