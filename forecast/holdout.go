package forecast

import (
	"fmt"

	"github.com/sartorproj/solarcast/sarima"
	"github.com/sartorproj/solarcast/stats"
	"github.com/sartorproj/solarcast/timeseries"
)

// HoldoutReport compares a forecast of the withheld window against the
// actual observations.
type HoldoutReport struct {
	Forecast *Result
	Actual   *timeseries.Series
	MAPE     float64
}

// ValidateHoldout refits the given order on the series with the trailing
// holdoutMonths withheld, forecasts exactly that window, and scores it by
// MAPE against the withheld actuals. The series is in GWh; the fit happens
// on its logarithm and the comparison back in GWh.
func ValidateHoldout(series *timeseries.Series, order sarima.Order, holdoutMonths int) (*HoldoutReport, error) {
	if holdoutMonths < 1 {
		return nil, fmt.Errorf("forecast: holdout of %d months is not valid", holdoutMonths)
	}
	if series.Len() <= holdoutMonths {
		return nil, fmt.Errorf("forecast: series of %d observations cannot hold out %d months", series.Len(), holdoutMonths)
	}

	split := series.Len() - holdoutMonths
	train := series.Slice(0, split)
	actual := series.Slice(split, series.Len())

	logTrain, err := train.Log()
	if err != nil {
		return nil, err
	}

	model := sarima.New(order)
	if err := model.Fit(logTrain); err != nil {
		return nil, err
	}

	result, err := Forecast(model, holdoutMonths)
	if err != nil {
		return nil, err
	}

	mape, err := stats.MAPE(actual.Values, result.PredictedGWh())
	if err != nil {
		return nil, err
	}

	return &HoldoutReport{Forecast: result, Actual: actual, MAPE: mape}, nil
}
