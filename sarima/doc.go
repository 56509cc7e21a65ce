// Package sarima implements seasonal ARIMA models for monthly series.
//
// A SARIMA(p,d,q)(P,D,Q)[m] model combines non-seasonal AR(p), I(d), and
// MA(q) terms with seasonal counterparts at period m. Estimation uses
// conditional sum of squares with a momentum gradient optimizer.
//
// # Basic Usage
//
// Fit the airline model on a monthly series and forecast five years:
//
//	model := sarima.New(sarima.Order{P: 0, D: 1, Q: 1, SP: 0, SD: 1, SQ: 1, M: 12})
//	if err := model.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//	point, se, err := model.Forecast(60)
//
// Forecast returns point forecasts on the fitting scale and their standard
// errors from the psi-weight prediction-variance recursion, so callers can
// build intervals at any confidence level.
//
// # Convergence
//
// A fit whose estimates degenerate returns a *ConvergenceError; callers that
// compare several specifications should exclude such fits rather than treat
// them as infinitely bad (see package autoarima).
//
// # Model Comparison
//
// Compare fitted specifications by information criteria (lower is better):
//
//	fmt.Printf("AIC: %.2f, AICc: %.2f, BIC: %.2f\n", model.AIC, model.AICc, model.BIC)
package sarima
