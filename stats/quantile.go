package stats

import "math"

// Acklam's rational approximation to the inverse normal CDF, accurate to
// about 1.15e-9 over the open unit interval.
var (
	normA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02,
		-2.759285104469687e+02, 1.383577518672690e+02,
		-3.066479806614716e+01, 2.506628277459239e+00,
	}
	normB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02,
		-1.556989798598866e+02, 6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	normC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01,
		-2.400758277161838e+00, -2.549732539343734e+00,
		4.374664141464968e+00, 2.938163982698783e+00,
	}
	normD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

// NormalQuantile returns the standard normal quantile for probability p.
// NormalQuantile(0.975) is 1.959964, the z used for 95% intervals.
func NormalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}

	const pLow = 0.02425
	switch {
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((normC[0]*q+normC[1])*q+normC[2])*q+normC[3])*q+normC[4])*q + normC[5]) /
			((((normD[0]*q+normD[1])*q+normD[2])*q+normD[3])*q + 1)
	case p > 1-pLow:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((normC[0]*q+normC[1])*q+normC[2])*q+normC[3])*q+normC[4])*q + normC[5]) /
			((((normD[0]*q+normD[1])*q+normD[2])*q+normD[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((normA[0]*r+normA[1])*r+normA[2])*r+normA[3])*r+normA[4])*r + normA[5]) * q /
			(((((normB[0]*r+normB[1])*r+normB[2])*r+normB[3])*r+normB[4])*r + 1)
	}
}
