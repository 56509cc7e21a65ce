package energy

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultStripWords returns the label tokens removed during normalization.
// The list is tied to the EIA vocabulary and is configurable through
// CleanOptions for other feeds.
func DefaultStripWords() []string {
	return []string{
		" Production",
		" Energy",
		" Power",
		" Electric",
		" (Dry)",
		" Plant Liquids",
	}
}

// CleanOptions configures Clean. A nil options value uses the defaults.
type CleanOptions struct {
	StripWords []string
}

// Clean normalizes raw feed rows into per-(source, month) observations:
// strip words are removed from the description, the sentinel becomes a
// missing value, quadrillion BTU become GWh and TWh, invalid year-months are
// dropped, and duplicate (source, month) rows are summed. A group whose
// values are all missing stays missing rather than summing to zero.
func Clean(records []RawRecord, opts *CleanOptions) ([]CleanedRecord, error) {
	strip := DefaultStripWords()
	if opts != nil && opts.StripWords != nil {
		strip = opts.StripWords
	}

	type group struct {
		sum     float64
		present bool
	}
	type key struct {
		source string
		date   time.Time
	}

	groups := make(map[key]*group)
	dropped := 0

	for _, r := range records {
		date, ok := monthOf(r.YearMonth)
		if !ok {
			dropped++
			continue
		}

		source := normalizeLabel(r.Description, strip)
		k := key{source: source, date: date}
		g := groups[k]
		if g == nil {
			g = &group{}
			groups[k] = g
		}

		if r.Value == NotAvailable {
			continue
		}
		v, err := strconv.ParseFloat(r.Value, 64)
		if err != nil {
			return nil, &ParseError{Description: r.Description, YearMonth: r.YearMonth, Value: r.Value}
		}
		g.sum += v * GWhPerQuadBTU
		g.present = true
	}

	cleaned := make([]CleanedRecord, 0, len(groups))
	for k, g := range groups {
		rec := CleanedRecord{Source: k.source, Date: k.date}
		if g.present {
			gwh := g.sum
			twh := gwh / 1000
			rec.GWh = &gwh
			rec.TWh = &twh
		}
		cleaned = append(cleaned, rec)
	}

	sort.Slice(cleaned, func(i, j int) bool {
		if cleaned[i].Source != cleaned[j].Source {
			return cleaned[i].Source < cleaned[j].Source
		}
		return cleaned[i].Date.Before(cleaned[j].Date)
	})

	if dropped > 0 {
		slog.Warn("dropped rows with invalid year-month", slog.Int("rows", dropped))
	}
	return cleaned, nil
}

// normalizeLabel removes each strip word wherever it occurs in the
// description. This is substring removal, not suffix trimming, matching the
// upstream behavior.
func normalizeLabel(description string, strip []string) string {
	label := description
	for _, w := range strip {
		label = strings.ReplaceAll(label, w, "")
	}
	return strings.TrimSpace(label)
}

// monthOf converts a YYYYMM integer to the first day of its month.
func monthOf(ym int) (time.Time, bool) {
	year := ym / 100
	month := ym % 100
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}
