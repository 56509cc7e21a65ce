package energy

import (
	"fmt"
	"strings"
	"time"
)

// FetchError reports a failure to retrieve or read the remote resource.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("energy: fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SchemaError reports expected columns missing from the CSV header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("energy: CSV header is missing columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a value that is neither numeric nor the missing-value
// sentinel.
type ParseError struct {
	Description string
	YearMonth   int
	Value       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("energy: record %q %d has non-numeric value %q", e.Description, e.YearMonth, e.Value)
}

// GapError reports a missing month inside an extracted series range.
type GapError struct {
	Source  string
	Missing time.Time
}

func (e *GapError) Error() string {
	return fmt.Sprintf("energy: series for %q has no observation for %s", e.Source, e.Missing.Format("2006-01"))
}

// InsufficientDataError reports a series too short for seasonal fitting.
type InsufficientDataError struct {
	Source string
	Got    int
	Need   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("energy: series for %q has %d observations, need at least %d", e.Source, e.Got, e.Need)
}
