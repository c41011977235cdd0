package domain

import "strconv"

// Field identifies an editable line item field.
type Field string

// Editable line item fields.
const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldDimension   Field = "dimension"
	FieldUnitPrice   Field = "unit_price"
)

// LineItem is one billable row of a quote.
type LineItem struct {
	// Description is the free-text item name.
	Description string

	// Quantity is the number of units. Defaults to 1 for new rows.
	Quantity float64

	// Dimension is a free-form size string such as "36x72".
	Dimension string

	// UnitPrice is the price per unit.
	UnitPrice float64
}

// ExtendedPrice returns quantity * unit price. It is always derived from the
// current field values and never stored, so displays and exports cannot
// drift from the row they were computed from.
func (li LineItem) ExtendedPrice() float64 {
	return li.Quantity * li.UnitPrice
}

// DefaultLineItem returns a blank row with quantity 1.
func DefaultLineItem() LineItem {
	return LineItem{Quantity: 1}
}

// Collection is an ordered list of line items. Insertion order is display
// order. All mutating operations return a new Collection and leave the
// receiver untouched, so holders of a snapshot see a change exactly when
// content changed.
type Collection []LineItem

// NewCollection returns a collection seeded with a single default row, the
// state an editing surface starts from.
func NewCollection() Collection {
	return Collection{DefaultLineItem()}
}

// AddRow returns the collection with a default row appended.
func (c Collection) AddRow() Collection {
	out := make(Collection, len(c), len(c)+1)
	copy(out, c)

	return append(out, DefaultLineItem())
}

// RemoveRow returns the collection without the row at index. When keepOne is
// true (creation and edit surfaces require at least one row) removing the
// final row is a no-op. An out-of-range index is also a no-op.
func (c Collection) RemoveRow(index int, keepOne bool) Collection {
	if index < 0 || index >= len(c) {
		return c
	}

	if keepOne && len(c) == 1 {
		return c
	}

	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:index]...)

	return append(out, c[index+1:]...)
}

// UpdateField returns the collection with one field of the row at index
// replaced. Numeric fields are parsed from the raw string; an unparsable
// value becomes 0 rather than an error or the prior value. Text fields are
// assigned verbatim. An out-of-range index is a no-op.
func (c Collection) UpdateField(index int, field Field, raw string) Collection {
	if index < 0 || index >= len(c) {
		return c
	}

	out := make(Collection, len(c))
	copy(out, c)

	switch field {
	case FieldDescription:
		out[index].Description = raw
	case FieldDimension:
		out[index].Dimension = raw
	case FieldQuantity:
		out[index].Quantity = ParseAmount(raw)
	case FieldUnitPrice:
		out[index].UnitPrice = ParseAmount(raw)
	}

	return out
}

// Clear returns a collection reset to a single default row.
func (c Collection) Clear() Collection {
	return NewCollection()
}

// Total sums the extended price of every row. It is computed on demand from
// the current rows, never memoized.
func (c Collection) Total() float64 {
	var sum float64
	for _, li := range c {
		sum += li.ExtendedPrice()
	}

	return sum
}

// ParseAmount parses a numeric form value. Anything unparsable coerces to 0;
// the silent fallback mirrors how editing surfaces treat half-typed input.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return v
}
