// Package forecast back-transforms log-scale SARIMA forecasts into GWh and
// validates them against a trailing holdout window.
//
// Models are fitted on the logarithm of a generation series, so point
// forecasts and standard errors arrive on the log scale. Bands converts
// them to generation units:
//
//	result, err := forecast.Forecast(model, 60)
//	bands, err := result.Bands(0.95)
//
// ValidateHoldout refits on the series minus its last months and forecasts
// exactly that window, reporting MAPE against the withheld actuals.
package forecast
