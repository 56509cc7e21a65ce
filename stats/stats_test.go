package stats

import (
	"math"
	"testing"
	"time"

	"github.com/sartorproj/solarcast/timeseries"
)

func monthly(values []float64) *timeseries.Series {
	return timeseries.NewMonthly(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), values)
}

func TestACF(t *testing.T) {
	n := 100
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 12)
	}
	acf := ACF(monthly(values), 12)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}

	if math.Abs(acf[0]-1) > 1e-12 {
		t.Errorf("ACF[0] = %f, want 1", acf[0])
	}
	// A 12-month cycle autocorrelates strongly at its own period.
	if acf[12] < 0.8 {
		t.Errorf("ACF[12] = %f, want > 0.8 for a 12-month cycle", acf[12])
	}
	if acf[6] > -0.8 {
		t.Errorf("ACF[6] = %f, want < -0.8 at the half period", acf[6])
	}
}

func TestACFConstantSeries(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 7
	}
	if acf := ACF(monthly(values), 5); acf != nil {
		t.Errorf("ACF of constant series = %v, want nil", acf)
	}
}

func TestNormalQuantile(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.975, 1.959964},
		{0.5, 0},
		{0.025, -1.959964},
		{0.995, 2.575829},
	}
	for _, tt := range tests {
		got := NormalQuantile(tt.p)
		if math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("NormalQuantile(%g) = %.6f, want %.6f", tt.p, got, tt.want)
		}
	}

	if !math.IsInf(NormalQuantile(0), -1) || !math.IsInf(NormalQuantile(1), 1) {
		t.Error("NormalQuantile should return infinities at the boundaries")
	}
}

func TestNormalQuantileSymmetry(t *testing.T) {
	for _, p := range []float64{0.6, 0.9, 0.99, 0.999} {
		if d := NormalQuantile(p) + NormalQuantile(1-p); math.Abs(d) > 1e-9 {
			t.Errorf("quantile asymmetry at p=%g: %g", p, d)
		}
	}
}

func TestMAPE(t *testing.T) {
	actual := []float64{100, 200, 400}
	forecast := []float64{110, 180, 400}

	// |10/100| + |20/200| + 0 over 3 = 0.0666...
	got, err := MAPE(actual, forecast)
	if err != nil {
		t.Fatalf("MAPE failed: %v", err)
	}
	want := (0.1 + 0.1 + 0.0) / 3
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("MAPE = %f, want %f", got, want)
	}

	if _, err := MAPE([]float64{0, 1}, []float64{1, 1}); err == nil {
		t.Error("MAPE with zero actual should fail")
	}
	if _, err := MAPE(nil, nil); err == nil {
		t.Error("MAPE with empty input should fail")
	}
}

func TestRMSEAndMAE(t *testing.T) {
	actual := []float64{1, 2, 3}
	forecast := []float64{2, 2, 5}

	rmse, err := RMSE(actual, forecast)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	if want := math.Sqrt((1.0 + 0 + 4.0) / 3); math.Abs(rmse-want) > 1e-12 {
		t.Errorf("RMSE = %f, want %f", rmse, want)
	}

	mae, err := MAE(actual, forecast)
	if err != nil {
		t.Fatalf("MAE failed: %v", err)
	}
	if want := 1.0; math.Abs(mae-want) > 1e-12 {
		t.Errorf("MAE = %f, want %f", mae, want)
	}
}

func TestLjungBoxWhiteNoise(t *testing.T) {
	// Deterministic pseudo-noise with little serial structure.
	n := 120
	values := make([]float64, n)
	seed := 42.0
	for i := range values {
		seed = math.Mod(seed*997+13.7, 1000)
		values[i] = seed/500 - 1
	}

	lb := LjungBox(monthly(values), 10, 0)
	if lb == nil {
		t.Fatal("LjungBox returned nil")
	}
	if lb.DOF != 10 {
		t.Errorf("DOF = %d, want 10", lb.DOF)
	}
	if lb.PValue < 0 || lb.PValue > 1 {
		t.Errorf("p-value = %f out of range", lb.PValue)
	}
	t.Logf("white noise: Q=%.3f p=%.3f", lb.Statistic, lb.PValue)
}

func TestLjungBoxAutocorrelated(t *testing.T) {
	n := 120
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 12)
	}

	lb := LjungBox(monthly(values), 12, 0)
	if lb == nil {
		t.Fatal("LjungBox returned nil")
	}
	if lb.PValue > 0.01 {
		t.Errorf("p-value = %f, want near 0 for a strongly autocorrelated series", lb.PValue)
	}
}
