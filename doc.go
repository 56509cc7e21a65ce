// Package solarcast forecasts monthly renewable electricity generation from
// the EIA Monthly Energy Review feed using seasonal ARIMA models.
//
// The pipeline downloads the raw CSV feed, cleans it into monthly GWh
// records per source, extracts one contiguous series, fits candidate
// SARIMA specifications on the log scale, selects the best by AIC, and
// produces a multi-year point forecast with confidence bands plus a
// holdout validation report.
//
// # Quick Start
//
// Run the whole pipeline from a config:
//
//	cfg, _ := config.Load()
//	result, _ := solarcast.Run(ctx, cfg)
//	for _, b := range result.Bands {
//		fmt.Println(b.Date, b.PredictedGWh)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - energy: Feed loading, cleaning, and series extraction
//   - timeseries: Time series data structure and transforms
//   - sarima: Seasonal ARIMA estimation and forecasting
//   - autoarima: Candidate fitting and AIC-based selection
//   - forecast: Confidence bands and holdout validation
//   - stats: ACF, Ljung-Box, normal quantiles, error metrics
//   - export: CSV and XLSX artifact writers
//   - config: Run configuration
package solarcast
