// Package forecast turns fitted log-scale models into GWh forecasts with
// confidence bands, and validates them on a trailing holdout.
package forecast

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sartorproj/solarcast/sarima"
	"github.com/sartorproj/solarcast/stats"
)

// DefaultConfidence is the two-sided interval level used when the caller
// does not supply one.
const DefaultConfidence = 0.95

// Result holds a forecast on the log scale. Bands back-transforms it into
// generation units.
type Result struct {
	Dates    []time.Time
	PointLog []float64
	SELog    []float64
}

// Band is one back-transformed forecast month.
type Band struct {
	Date         time.Time
	PredictedGWh float64
	LowerGWh     float64
	UpperGWh     float64
}

// Forecast produces horizonMonths of point forecasts and standard errors
// from a model fitted to a log-GWh series.
func Forecast(model *sarima.Model, horizonMonths int) (*Result, error) {
	if model == nil || !model.Fitted() {
		return nil, errors.New("forecast: model is not fitted")
	}
	if horizonMonths < 1 {
		return nil, errors.New("forecast: horizon must be at least 1 month")
	}

	point, se, err := model.Forecast(horizonMonths)
	if err != nil {
		return nil, err
	}

	return &Result{
		Dates:    model.Series().HorizonDates(horizonMonths),
		PointLog: point,
		SELog:    se,
	}, nil
}

// Bands exponentiates the log-scale forecast into GWh with a two-sided
// normal confidence band at the given level (0.95 gives z = 1.959964).
func (r *Result) Bands(confidence float64) ([]Band, error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("forecast: confidence %g outside (0, 1)", confidence)
	}

	z := stats.NormalQuantile((1 + confidence) / 2)
	bands := make([]Band, len(r.PointLog))
	for i, p := range r.PointLog {
		se := r.SELog[i]
		bands[i] = Band{
			Date:         r.Dates[i],
			PredictedGWh: math.Exp(p),
			LowerGWh:     math.Exp(p - z*se),
			UpperGWh:     math.Exp(p + z*se),
		}
	}
	return bands, nil
}

// PredictedGWh returns just the back-transformed point forecasts.
func (r *Result) PredictedGWh() []float64 {
	out := make([]float64, len(r.PointLog))
	for i, p := range r.PointLog {
		out[i] = math.Exp(p)
	}
	return out
}
