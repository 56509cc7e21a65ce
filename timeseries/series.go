// Package timeseries provides the monthly time series type used across solarcast.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DomainError reports a value outside the domain of a transform, such as a
// non-positive value under the logarithm.
type DomainError struct {
	Op    string
	Index int
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("timeseries: %s undefined for value %g at index %d", e.Op, e.Value, e.Index)
}

// Series is an ordered monthly time series. Dates are the first day of each
// month in UTC and advance by exactly one month per observation.
type Series struct {
	Dates  []time.Time
	Values []float64
	Name   string
}

// Month truncates t to the first day of its month in UTC.
func Month(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NewMonthly creates a series starting at the month of start, one value per
// consecutive month.
func NewMonthly(start time.Time, values []float64) *Series {
	first := Month(start)
	dates := make([]time.Time, len(values))
	for i := range dates {
		dates[i] = first.AddDate(0, i, 0)
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return &Series{Dates: dates, Values: vals}
}

// New creates a series from explicit dates and values.
func New(dates []time.Time, values []float64) (*Series, error) {
	if len(dates) != len(values) {
		return nil, errors.New("timeseries: dates and values must have the same length")
	}
	return &Series{Dates: dates, Values: values}, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// EndDate returns the date of the last observation, or the zero time for an
// empty series.
func (s *Series) EndDate() time.Time {
	if len(s.Dates) == 0 {
		return time.Time{}
	}
	return s.Dates[len(s.Dates)-1]
}

// HorizonDates returns the h months immediately following the series end.
func (s *Series) HorizonDates(h int) []time.Time {
	if h <= 0 || len(s.Dates) == 0 {
		return nil
	}
	end := s.EndDate()
	dates := make([]time.Time, h)
	for i := range dates {
		dates[i] = end.AddDate(0, i+1, 0)
	}
	return dates
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Diff calculates the lag-1 difference. The result is one observation
// shorter and starts at the second date.
func (s *Series) Diff() *Series {
	return s.lagDiff(1, "_diff")
}

// SeasonalDiff calculates the lag-m seasonal difference.
func (s *Series) SeasonalDiff(m int) *Series {
	return s.lagDiff(m, "_sdiff")
}

func (s *Series) lagDiff(lag int, suffix string) *Series {
	if lag <= 0 || len(s.Values) <= lag {
		return &Series{Name: s.Name + suffix}
	}
	values := make([]float64, len(s.Values)-lag)
	for i := lag; i < len(s.Values); i++ {
		values[i-lag] = s.Values[i] - s.Values[i-lag]
	}
	dates := make([]time.Time, len(values))
	if len(s.Dates) == len(s.Values) {
		copy(dates, s.Dates[lag:])
	}
	return &Series{Dates: dates, Values: values, Name: s.Name + suffix}
}

// Undiff reverses a lag-1 difference by cumulative summation from the given
// starting level. The result is one observation longer than the receiver and
// begins one month before its first date.
func (s *Series) Undiff(first float64) *Series {
	values := make([]float64, len(s.Values)+1)
	values[0] = first
	for i, d := range s.Values {
		values[i+1] = values[i] + d
	}
	dates := make([]time.Time, len(values))
	if len(s.Dates) == len(s.Values) && len(s.Dates) > 0 {
		dates[0] = s.Dates[0].AddDate(0, -1, 0)
		copy(dates[1:], s.Dates)
	}
	return &Series{Dates: dates, Values: values, Name: s.Name + "_undiff"}
}

// Log applies the natural logarithm. It returns a DomainError if any value
// is not strictly positive.
func (s *Series) Log() (*Series, error) {
	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v <= 0 {
			return nil, &DomainError{Op: "log", Index: i, Value: v}
		}
		values[i] = math.Log(v)
	}
	dates := make([]time.Time, len(s.Dates))
	copy(dates, s.Dates)
	return &Series{Dates: dates, Values: values, Name: s.Name + "_log"}, nil
}

// Exp applies the exponential, undoing Log.
func (s *Series) Exp() *Series {
	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		values[i] = math.Exp(v)
	}
	dates := make([]time.Time, len(s.Dates))
	copy(dates, s.Dates)
	return &Series{Dates: dates, Values: values, Name: s.Name + "_exp"}
}

// LogDiff applies Log followed by a lag-1 difference, yielding the monthly
// growth rate series.
func (s *Series) LogDiff() (*Series, error) {
	logged, err := s.Log()
	if err != nil {
		return nil, err
	}
	return logged.Diff(), nil
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name}
	}
	values := make([]float64, end-start)
	copy(values, s.Values[start:end])
	dates := make([]time.Time, len(values))
	if len(s.Dates) >= end {
		copy(dates, s.Dates[start:end])
	}
	return &Series{Dates: dates, Values: values, Name: s.Name}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	dates := make([]time.Time, len(s.Dates))
	copy(dates, s.Dates)
	return &Series{Dates: dates, Values: values, Name: s.Name}
}
