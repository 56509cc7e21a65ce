package sarima

import (
	"errors"
	"math"
)

// Forecast produces steps point forecasts on the scale of the fitting series
// together with their standard errors. Points come from recursing the fitted
// difference equation forward with future shocks at zero and integrating the
// differencing back out; standard errors come from the psi-weight
// prediction-variance recursion of the full (differenced) lag polynomial.
func (m *Model) Forecast(steps int) (point, se []float64, err error) {
	if !m.fitted {
		return nil, nil, errors.New("sarima: model must be fitted before forecasting")
	}
	if steps < 1 {
		return nil, nil, errors.New("sarima: steps must be at least 1")
	}

	y := m.diffData.Values
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)
	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		extY[t] = m.predictAt(extY, extResiduals, t)
		extResiduals[t] = 0
	}

	point = make([]float64, steps)
	copy(point, extY[n:])
	point = m.integrate(point)

	psi := m.psiWeights(steps)
	se = make([]float64, steps)
	cum := 0.0
	for h := 0; h < steps; h++ {
		cum += psi[h] * psi[h]
		se[h] = math.Sqrt(m.Variance * cum)
	}

	return point, se, nil
}

// psiWeights returns the first n coefficients of the MA(infinity)
// representation of the undifferenced process, psi[0] = 1.
func (m *Model) psiWeights(n int) []float64 {
	ar := m.generalizedARPoly()
	ma := m.generalizedMAPoly()

	psi := make([]float64, n)
	for j := 0; j < n; j++ {
		v := 0.0
		if j < len(ma) {
			v = ma[j]
		}
		for i := 1; i <= j && i < len(ar); i++ {
			v -= ar[i] * psi[j-i]
		}
		if j == 0 {
			v = 1
		}
		psi[j] = v
	}
	return psi
}

// generalizedARPoly expands phi(B)*PHI(B^m)*(1-B)^d*(1-B^m)^D.
// The constant term is 1; AR coefficients enter with negative sign.
func (m *Model) generalizedARPoly() []float64 {
	o := m.Order

	poly := signedPoly(m.ARCoeffs, 1, -1)
	poly = polyMul(poly, signedPoly(m.SARCoeffs, o.M, -1))
	for i := 0; i < o.D; i++ {
		poly = polyMul(poly, []float64{1, -1})
	}
	for i := 0; i < o.SD; i++ {
		sd := make([]float64, o.M+1)
		sd[0] = 1
		sd[o.M] = -1
		poly = polyMul(poly, sd)
	}
	return poly
}

// generalizedMAPoly expands theta(B)*THETA(B^m) with constant term 1.
func (m *Model) generalizedMAPoly() []float64 {
	return polyMul(signedPoly(m.MACoeffs, 1, 1), signedPoly(m.SMACoeffs, m.Order.M, 1))
}

// signedPoly builds 1 + sign*c[0]*B^stride + sign*c[1]*B^(2*stride) + ...
func signedPoly(coeffs []float64, stride int, sign float64) []float64 {
	poly := make([]float64, len(coeffs)*stride+1)
	poly[0] = 1
	for i, c := range coeffs {
		poly[(i+1)*stride] = sign * c
	}
	return poly
}

func polyMul(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// integrate undoes the differencing applied during Fit. Fit differences
// non-seasonally first and seasonally second, so integration reverses the
// seasonal step first.
func (m *Model) integrate(forecasts []float64) []float64 {
	o := m.Order
	original := m.data.Values
	n := len(original)

	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	// The seasonal integration needs the tail of the series after
	// non-seasonal differencing only.
	nonSeasonal := original
	for i := 0; i < o.D; i++ {
		if len(nonSeasonal) <= 1 {
			break
		}
		next := make([]float64, len(nonSeasonal)-1)
		for j := 1; j < len(nonSeasonal); j++ {
			next[j-1] = nonSeasonal[j] - nonSeasonal[j-1]
		}
		nonSeasonal = next
	}

	if o.SD > 0 && o.M > 0 {
		nDiff := len(nonSeasonal)
		for i := 0; i < o.SD; i++ {
			for j := 0; j < len(result); j++ {
				if j < o.M {
					if idx := nDiff - o.M + j; idx >= 0 && idx < nDiff {
						result[j] += nonSeasonal[idx]
					}
				} else {
					result[j] += result[j-o.M]
				}
			}
		}
	}

	for i := 0; i < o.D; i++ {
		lastVal := original[n-1]
		for j := 0; j < len(result); j++ {
			if j == 0 {
				result[j] += lastVal
			} else {
				result[j] += result[j-1]
			}
		}
	}

	return result
}
