// Package sarima implements seasonal ARIMA model fitting and forecasting.
package sarima

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/solarcast/stats"
	"github.com/sartorproj/solarcast/timeseries"
)

// Order represents a SARIMA specification (p,d,q)(P,D,Q)[m].
type Order struct {
	P int // Non-seasonal AR order
	D int // Non-seasonal differencing order
	Q int // Non-seasonal MA order
	// Seasonal components
	SP int // Seasonal AR order
	SD int // Seasonal differencing order
	SQ int // Seasonal MA order
	M  int // Seasonal period (12 for monthly data with yearly seasonality)
}

// NumParams returns the number of estimated parameters: AR, MA, seasonal AR,
// and seasonal MA coefficients plus one for the residual variance.
func (o Order) NumParams() int {
	return o.P + o.Q + o.SP + o.SQ + 1
}

func (o Order) String() string {
	return fmt.Sprintf("(%d,%d,%d)(%d,%d,%d)[%d]", o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M)
}

// ConvergenceError reports a fit that could not be estimated.
type ConvergenceError struct {
	Order  Order
	Reason string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("sarima: fit of %s did not converge: %s", e.Order, e.Reason)
}

// Model represents a SARIMA model. A Model is mutable until Fit succeeds and
// read-only afterward.
type Model struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	SARCoeffs []float64
	SMACoeffs []float64
	Intercept float64
	Variance  float64
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64

	fitted     bool
	data       *timeseries.Series
	diffData   *timeseries.Series
	residuals  []float64
	fittedVals []float64
}

// New creates an unfitted SARIMA model with the given order.
func New(order Order) *Model {
	return &Model{
		Order:     order,
		ARCoeffs:  make([]float64, order.P),
		MACoeffs:  make([]float64, order.Q),
		SARCoeffs: make([]float64, order.SP),
		SMACoeffs: make([]float64, order.SQ),
	}
}

// Fit estimates the model on the given series by conditional sum of squares.
// A fit whose estimates degenerate (non-finite coefficients or variance)
// returns a ConvergenceError.
func (m *Model) Fit(series *timeseries.Series) error {
	o := m.Order
	minLen := o.P + o.Q + o.D + (o.SP+o.SD+o.SQ)*o.M + 20
	if series.Len() < minLen {
		return fmt.Errorf("sarima: %d observations is too few for %s (need %d)", series.Len(), o, minLen)
	}

	m.data = series

	diff := series
	for i := 0; i < o.D; i++ {
		diff = diff.Diff()
		if diff.Len() == 0 {
			return errors.New("sarima: differencing exhausted the series")
		}
	}
	for i := 0; i < o.SD; i++ {
		diff = diff.SeasonalDiff(o.M)
		if diff.Len() == 0 {
			return errors.New("sarima: seasonal differencing exhausted the series")
		}
	}
	m.diffData = diff

	m.initCoeffs()
	m.optimizeCSS(diff.Values)

	if reason := m.degenerate(); reason != "" {
		return &ConvergenceError{Order: o, Reason: reason}
	}

	m.calculateIC()
	m.fitted = true
	return nil
}

// initCoeffs seeds the optimizer: AR terms from the sample ACF, MA terms
// from a small constant.
func (m *Model) initCoeffs() {
	o := m.Order
	if o.P > 0 {
		if acf := stats.ACF(m.diffData, o.P); acf != nil {
			for i := 0; i < o.P && i+1 < len(acf); i++ {
				m.ARCoeffs[i] = acf[i+1] * 0.5
			}
		}
	}
	if o.SP > 0 {
		if acf := stats.ACF(m.diffData, o.SP*o.M); acf != nil {
			for i := 0; i < o.SP; i++ {
				if lag := (i + 1) * o.M; lag < len(acf) {
					m.SARCoeffs[i] = acf[lag] * 0.5
				}
			}
		}
	}
	for i := range m.MACoeffs {
		m.MACoeffs[i] = 0.1
	}
	for i := range m.SMACoeffs {
		m.SMACoeffs[i] = 0.1
	}
}

// predictAt computes the one-step prediction of y[t] given history and
// residuals. Residual entries past the fitting sample must be zero.
func (m *Model) predictAt(y, residuals []float64, t int) float64 {
	o := m.Order
	pred := m.Intercept

	for i := 0; i < o.P && t-i-1 >= 0; i++ {
		pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
	}
	for i := 0; i < o.SP; i++ {
		if lag := (i + 1) * o.M; t-lag >= 0 {
			pred += m.SARCoeffs[i] * (y[t-lag] - m.Intercept)
		}
	}
	for i := 0; i < o.Q && t-i-1 >= 0; i++ {
		pred += m.MACoeffs[i] * residuals[t-i-1]
	}
	for i := 0; i < o.SQ; i++ {
		if lag := (i + 1) * o.M; t-lag >= 0 {
			pred += m.SMACoeffs[i] * residuals[t-lag]
		}
	}
	return pred
}

// optimizeCSS minimizes the conditional sum of squares by gradient descent
// with momentum, learning-rate decay, and early stopping, keeping the best
// coefficients seen.
func (m *Model) optimizeCSS(y []float64) {
	o := m.Order
	n := len(y)

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	m.Intercept = mean / float64(n)

	maxIter := 200
	tolerance := 1e-8
	learningRate := 0.005
	momentum := 0.9
	decay := 0.99

	arMom := make([]float64, o.P)
	maMom := make([]float64, o.Q)
	sarMom := make([]float64, o.SP)
	smaMom := make([]float64, o.SQ)

	startIdx := max(max(o.P, o.Q), max(o.SP*o.M, o.SQ*o.M))
	if startIdx >= n-10 {
		startIdx = 0
	}

	bestSSE := math.Inf(1)
	bestAR := make([]float64, o.P)
	bestMA := make([]float64, o.Q)
	bestSAR := make([]float64, o.SP)
	bestSMA := make([]float64, o.SQ)
	noImprove := 0

	for iter := 0; iter < maxIter; iter++ {
		residuals := make([]float64, n)
		sse := 0.0
		for t := startIdx; t < n; t++ {
			residuals[t] = y[t] - m.predictAt(y, residuals, t)
			sse += residuals[t] * residuals[t]
		}

		if sse < bestSSE {
			bestSSE = sse
			copy(bestAR, m.ARCoeffs)
			copy(bestMA, m.MACoeffs)
			copy(bestSAR, m.SARCoeffs)
			copy(bestSMA, m.SMACoeffs)
			noImprove = 0
		} else {
			noImprove++
		}
		if noImprove > 20 {
			break
		}

		arGrad := make([]float64, o.P)
		maGrad := make([]float64, o.Q)
		sarGrad := make([]float64, o.SP)
		smaGrad := make([]float64, o.SQ)

		for t := startIdx; t < n; t++ {
			for i := 0; i < o.P && t-i-1 >= 0; i++ {
				arGrad[i] -= 2 * residuals[t] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < o.SP; i++ {
				if lag := (i + 1) * o.M; t-lag >= 0 {
					sarGrad[i] -= 2 * residuals[t] * (y[t-lag] - m.Intercept)
				}
			}
			for i := 0; i < o.Q && t-i-1 >= 0; i++ {
				maGrad[i] -= 2 * residuals[t] * residuals[t-i-1]
			}
			for i := 0; i < o.SQ; i++ {
				if lag := (i + 1) * o.M; t-lag >= 0 {
					smaGrad[i] -= 2 * residuals[t] * residuals[t-lag]
				}
			}
		}

		step := func(coeffs, mom, grad []float64) {
			for i := range coeffs {
				mom[i] = momentum*mom[i] + learningRate*grad[i]/float64(n)
				coeffs[i] -= mom[i]
				coeffs[i] = clamp(coeffs[i], -0.99, 0.99)
			}
		}
		step(m.ARCoeffs, arMom, arGrad)
		step(m.SARCoeffs, sarMom, sarGrad)
		step(m.MACoeffs, maMom, maGrad)
		step(m.SMACoeffs, smaMom, smaGrad)

		learningRate *= decay

		if iter > 0 && math.Abs(sse-bestSSE) < tolerance {
			break
		}
	}

	copy(m.ARCoeffs, bestAR)
	copy(m.MACoeffs, bestMA)
	copy(m.SARCoeffs, bestSAR)
	copy(m.SMACoeffs, bestSMA)

	m.residuals = make([]float64, n)
	m.fittedVals = make([]float64, n)
	for t := 0; t < n; t++ {
		m.fittedVals[t] = m.predictAt(y, m.residuals, t)
		m.residuals[t] = y[t] - m.fittedVals[t]
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	if count > m.Order.NumParams() {
		m.Variance = sse / float64(count-m.Order.NumParams())
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}
}

// degenerate reports why the estimates are unusable, or "" when they are
// finite and the variance is positive.
func (m *Model) degenerate() string {
	for _, group := range [][]float64{m.ARCoeffs, m.MACoeffs, m.SARCoeffs, m.SMACoeffs, {m.Intercept}} {
		for _, c := range group {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return "non-finite coefficient estimate"
			}
		}
	}
	if math.IsNaN(m.Variance) || math.IsInf(m.Variance, 0) {
		return "non-finite residual variance"
	}
	if m.Variance <= 0 {
		return "residual variance is not positive"
	}
	return ""
}

// calculateIC computes the Gaussian log-likelihood and the information
// criteria. AIC = -2*logLik + 2*k with k = NumParams().
func (m *Model) calculateIC() {
	n := len(m.residuals)
	k := m.Order.NumParams()

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}

	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) - float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}

	m.AIC = -2*m.LogLik + 2*float64(k)

	kf, nf := float64(k), float64(n)
	if nf-kf-1 > 0 {
		m.AICc = m.AIC + 2*kf*(kf+1)/(nf-kf-1)
	} else {
		m.AICc = math.Inf(1)
	}

	m.BIC = -2*m.LogLik + kf*math.Log(nf)
}

// Fitted reports whether Fit has succeeded.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Series returns the series the model was fitted to.
func (m *Model) Series() *timeseries.Series {
	if !m.fitted {
		return nil
	}
	return m.data
}

// Residuals returns a copy of the model residuals on the differenced scale.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// FittedValues returns a copy of the in-sample one-step predictions on the
// differenced scale.
func (m *Model) FittedValues() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.fittedVals))
	copy(result, m.fittedVals)
	return result
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
