// Package timeseries provides monthly time series data structures and
// transforms.
//
// A Series pairs first-of-month UTC dates with float64 values. The package
// covers the transforms the forecasting pipeline needs: differencing,
// seasonal differencing, logarithms, and their inverses.
//
// # Creating a Series
//
// Create a monthly series starting at a given month:
//
//	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
//	series := timeseries.NewMonthly(start, []float64{100, 110, 121})
//
// # Transformations
//
// Stationarity transforms shorten the series:
//
//	growth, err := series.LogDiff()  // log then lag-1 difference
//	sdiff := series.SeasonalDiff(12) // lag-12 difference
//
// Log returns a DomainError when a value is not strictly positive. Undiff
// and Exp invert Diff and Log respectively:
//
//	levels := growth.Undiff(math.Log(series.Values[0])).Exp()
package timeseries
