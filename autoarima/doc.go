// Package autoarima compares candidate SARIMA specifications by AIC and
// returns the best fit.
//
// # Usage
//
// Compare the reference candidate set on a (log-transformed) monthly series:
//
//	sel, err := autoarima.SelectBest(series, autoarima.DefaultCandidates())
//	if err != nil {
//	    log.Fatal(err) // *NoConvergentModelError when nothing fits
//	}
//	for _, r := range sel.Results {
//	    fmt.Printf("%s converged=%v aic=%.2f\n", r.Order, r.Converged, r.AIC)
//	}
//	point, se, err := sel.Best.Forecast(60)
//
// The candidate list is caller-supplied; DefaultCandidates is only a
// convenience. Candidates that fail to converge are excluded from the
// comparison and reported per candidate, not scored as infinite AIC.
package autoarima
