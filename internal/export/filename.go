package export

import (
	"regexp"
	"time"
)

// Filenames for the scratch item table downloads.
const (
	ItemsCSVFilename = "quote_items.csv"
	ItemsPDFFilename = "quote_items.pdf"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// QuoteFilename derives a download filename from a quote title:
// whitespace runs collapse to underscores, and an empty title falls
// back to "quote".
func QuoteFilename(title, ext string) string {
	name := whitespaceRuns.ReplaceAllString(title, "_")
	if name == "" {
		name = "quote"
	}
	return name + "." + ext
}

// AllQuotesFilename names the bulk dashboard download after the day it
// was taken.
func AllQuotesFilename(now time.Time) string {
	return "All_Quotes_" + now.Format("2006-01-02") + ".csv"
}
