package stats

import (
	"errors"
	"math"
)

// MAPE returns the mean absolute percentage error between actual and
// forecast values, as a fraction (0.05 means 5%). Actual values of zero are
// rejected since the percentage is undefined there.
func MAPE(actual, forecast []float64) (float64, error) {
	if len(actual) == 0 || len(actual) != len(forecast) {
		return 0, errors.New("stats: actual and forecast must be non-empty and the same length")
	}
	sum := 0.0
	for i, a := range actual {
		if a == 0 {
			return 0, errors.New("stats: MAPE undefined for zero actual value")
		}
		sum += math.Abs((a - forecast[i]) / a)
	}
	return sum / float64(len(actual)), nil
}

// RMSE returns the root mean squared error between actual and forecast.
func RMSE(actual, forecast []float64) (float64, error) {
	if len(actual) == 0 || len(actual) != len(forecast) {
		return 0, errors.New("stats: actual and forecast must be non-empty and the same length")
	}
	sum := 0.0
	for i, a := range actual {
		d := a - forecast[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(actual))), nil
}

// MAE returns the mean absolute error between actual and forecast.
func MAE(actual, forecast []float64) (float64, error) {
	if len(actual) == 0 || len(actual) != len(forecast) {
		return 0, errors.New("stats: actual and forecast must be non-empty and the same length")
	}
	sum := 0.0
	for i, a := range actual {
		sum += math.Abs(a - forecast[i])
	}
	return sum / float64(len(actual)), nil
}
