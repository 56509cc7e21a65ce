package energy

import (
	"sort"
	"time"

	"github.com/sartorproj/solarcast/timeseries"
)

// seasonalPeriod is the monthly seasonality the pipeline models. A seasonal
// fit needs at least two full cycles of data.
const seasonalPeriod = 12

// Extract filters cleaned records to one source within the inclusive month
// window [from, to], drops missing values, and returns the ordered series.
// A month missing inside the resulting range is a GapError; fewer than two
// seasonal cycles of observations is an InsufficientDataError.
func Extract(records []CleanedRecord, source string, from, to time.Time) (*timeseries.Series, error) {
	from = timeseries.Month(from)
	to = timeseries.Month(to)

	type obs struct {
		date  time.Time
		value float64
	}
	var picked []obs
	for _, r := range records {
		if r.Source != source || r.GWh == nil {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		picked = append(picked, obs{date: r.Date, value: *r.GWh})
	}

	sort.Slice(picked, func(i, j int) bool { return picked[i].date.Before(picked[j].date) })

	if len(picked) < 2*seasonalPeriod {
		return nil, &InsufficientDataError{Source: source, Got: len(picked), Need: 2 * seasonalPeriod}
	}

	dates := make([]time.Time, len(picked))
	values := make([]float64, len(picked))
	for i, o := range picked {
		if i > 0 {
			expected := picked[i-1].date.AddDate(0, 1, 0)
			if !o.date.Equal(expected) {
				return nil, &GapError{Source: source, Missing: expected}
			}
		}
		dates[i] = o.date
		values[i] = o.value
	}

	series, err := timeseries.New(dates, values)
	if err != nil {
		return nil, err
	}
	series.Name = source
	return series, nil
}
