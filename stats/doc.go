// Package stats provides statistical helpers for SARIMA fitting and
// forecast evaluation.
//
// # Autocorrelation
//
// ACF supplies the autocorrelations used to initialize AR coefficients:
//
//	acf := stats.ACF(series, 24)
//
// # Residual Diagnostics
//
// Ljung-Box tests fitted residuals for remaining autocorrelation:
//
//	lb := stats.LjungBox(residuals, 10, p+q+sp+sq)
//	if lb.PValue > 0.05 {
//	    // residuals look like white noise
//	}
//
// # Quantiles and Error Metrics
//
// NormalQuantile backs confidence-interval construction, and MAPE, RMSE,
// and MAE score holdout forecasts:
//
//	z := stats.NormalQuantile(0.975) // 1.959964
//	mape, err := stats.MAPE(actual, forecast)
package stats
