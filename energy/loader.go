package energy

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Loader fetches the monthly generation CSV from the EIA endpoint.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with a bounded request timeout.
func NewLoader() *Loader {
	return &Loader{client: &http.Client{Timeout: 30 * time.Second}}
}

// NewLoaderWithClient creates a Loader using the given HTTP client.
func NewLoaderWithClient(client *http.Client) *Loader {
	return &Loader{client: client}
}

// Load fetches url and parses it as the EIA generation CSV. It makes a
// single attempt and returns a FetchError on transport or CSV failure, or a
// SchemaError when the header lacks Description, YYYYMM, or Value.
func (l *Loader) Load(ctx context.Context, url string) ([]RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	records, err := ParseCSV(resp.Body)
	if err != nil {
		if _, ok := err.(*SchemaError); ok {
			return nil, err
		}
		return nil, &FetchError{URL: url, Err: err}
	}

	slog.Info("loaded generation feed",
		slog.String("url", url),
		slog.Int("rows", len(records)))
	return records, nil
}

// ParseCSV reads the feed from r. The header must contain Description,
// YYYYMM, and Value; other columns are ignored.
func ParseCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	descIdx, ymIdx, valIdx := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Description":
			descIdx = i
		case "YYYYMM":
			ymIdx = i
		case "Value":
			valIdx = i
		}
	}

	var missing []string
	if descIdx == -1 {
		missing = append(missing, "Description")
	}
	if ymIdx == -1 {
		missing = append(missing, "YYYYMM")
	}
	if valIdx == -1 {
		missing = append(missing, "Value")
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var records []RawRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		if descIdx >= len(row) || ymIdx >= len(row) || valIdx >= len(row) {
			return nil, fmt.Errorf("line %d has %d fields, want at least %d", line, len(row), max(descIdx, max(ymIdx, valIdx))+1)
		}

		// A YYYYMM that is not an integer becomes 0 and is dropped
		// during cleaning, matching the upstream NA filter.
		ym, err := strconv.Atoi(strings.TrimSpace(row[ymIdx]))
		if err != nil {
			ym = 0
		}

		records = append(records, RawRecord{
			Description: strings.TrimSpace(row[descIdx]),
			YearMonth:   ym,
			Value:       strings.TrimSpace(row[valIdx]),
		})
	}

	return records, nil
}
