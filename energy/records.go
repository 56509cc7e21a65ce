// Package energy loads and cleans the EIA monthly energy-generation feed.
package energy

import (
	"time"
)

// GWhPerQuadBTU converts the feed's quadrillion-BTU values to gigawatt hours.
const GWhPerQuadBTU = 293071.070172222215

// NotAvailable is the feed's sentinel for a missing value. Any other
// non-numeric value is a ParseError, never silently coerced.
const NotAvailable = "Not Available"

// RawRecord is one row of the source CSV as received.
type RawRecord struct {
	Description string
	YearMonth   int // YYYYMM, e.g. 201706; 0 or otherwise invalid rows are dropped by Clean
	Value       string
}

// CleanedRecord is one normalized (source, month) observation. GWh and TWh
// are nil when the source reported the value as not available.
type CleanedRecord struct {
	Source string
	Date   time.Time // first day of the month, UTC
	GWh    *float64
	TWh    *float64
}
