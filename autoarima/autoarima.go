// Package autoarima selects the best SARIMA specification by information
// criterion.
package autoarima

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/sartorproj/solarcast/sarima"
	"github.com/sartorproj/solarcast/timeseries"
)

// aicTie is the tolerance under which two AIC values count as tied.
const aicTie = 1e-9

// FitFunc fits one candidate order. The default fits a sarima.Model; tests
// can substitute a stub to exercise the selection logic alone.
type FitFunc func(series *timeseries.Series, order sarima.Order) (*sarima.Model, error)

// CandidateResult records the outcome of fitting one candidate.
type CandidateResult struct {
	Order     sarima.Order
	AIC       float64
	Converged bool
	Err       error
}

// Selection is the outcome of comparing a candidate set.
type Selection struct {
	Best    *sarima.Model
	Results []CandidateResult
}

// NoConvergentModelError reports that every candidate failed to fit.
type NoConvergentModelError struct {
	Results []CandidateResult
}

func (e *NoConvergentModelError) Error() string {
	parts := make([]string, len(e.Results))
	for i, r := range e.Results {
		parts[i] = fmt.Sprintf("%s: %v", r.Order, r.Err)
	}
	return "autoarima: no candidate converged: " + strings.Join(parts, "; ")
}

// DefaultCandidates returns the reference candidate set: seven seasonal
// specifications from (0,1,0)(1,0,0)[12] to (1,1,1)(1,1,1)[12].
func DefaultCandidates() []sarima.Order {
	return []sarima.Order{
		{P: 0, D: 1, Q: 0, SP: 1, SD: 0, SQ: 0, M: 12},
		{P: 0, D: 1, Q: 0, SP: 1, SD: 1, SQ: 0, M: 12},
		{P: 1, D: 1, Q: 0, SP: 1, SD: 0, SQ: 0, M: 12},
		{P: 0, D: 1, Q: 1, SP: 0, SD: 1, SQ: 1, M: 12},
		{P: 1, D: 1, Q: 0, SP: 1, SD: 1, SQ: 0, M: 12},
		{P: 0, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 12},
		{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 12},
	}
}

// SelectBest fits every candidate and returns the minimum-AIC model.
// Candidates that fail to fit are excluded from the comparison and reported
// in the returned results rather than scored as infinitely bad. Ties on AIC
// prefer the specification with fewer parameters, then the earlier
// candidate. When no candidate converges the error is a
// *NoConvergentModelError.
func SelectBest(series *timeseries.Series, candidates []sarima.Order) (*Selection, error) {
	return SelectBestWith(defaultFit, series, candidates)
}

// SelectBestWith is SelectBest with an explicit fitting function.
func SelectBestWith(fit FitFunc, series *timeseries.Series, candidates []sarima.Order) (*Selection, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("autoarima: empty candidate set")
	}

	sel := &Selection{Results: make([]CandidateResult, 0, len(candidates))}
	var best *sarima.Model

	for _, order := range candidates {
		model, err := fit(series, order)
		if err != nil {
			slog.Warn("candidate excluded",
				slog.String("order", order.String()),
				slog.String("reason", err.Error()))
			sel.Results = append(sel.Results, CandidateResult{Order: order, AIC: math.NaN(), Err: err})
			continue
		}

		sel.Results = append(sel.Results, CandidateResult{Order: order, AIC: model.AIC, Converged: true})
		if better(model, best) {
			best = model
		}
	}

	if best == nil {
		failed := make([]CandidateResult, 0, len(sel.Results))
		for _, r := range sel.Results {
			if !r.Converged {
				failed = append(failed, r)
			}
		}
		return nil, &NoConvergentModelError{Results: failed}
	}

	sel.Best = best
	slog.Info("selected model",
		slog.String("order", best.Order.String()),
		slog.Float64("aic", best.AIC))
	return sel, nil
}

// better reports whether challenger beats incumbent: lower AIC wins, an AIC
// tie goes to fewer parameters, and a full tie keeps the incumbent so the
// earlier candidate prevails.
func better(challenger, incumbent *sarima.Model) bool {
	if incumbent == nil {
		return true
	}
	diff := challenger.AIC - incumbent.AIC
	if diff < -aicTie {
		return true
	}
	if diff > aicTie {
		return false
	}
	return challenger.Order.NumParams() < incumbent.Order.NumParams()
}

func defaultFit(series *timeseries.Series, order sarima.Order) (*sarima.Model, error) {
	model := sarima.New(order)
	if err := model.Fit(series); err != nil {
		return nil, err
	}
	return model, nil
}
