package timeseries

import (
	"errors"
	"math"
	"testing"
	"time"
)

func jan(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func TestNewMonthlyDates(t *testing.T) {
	s := NewMonthly(time.Date(2019, time.November, 15, 10, 0, 0, 0, time.UTC), []float64{1, 2, 3})

	want := []time.Time{
		time.Date(2019, time.November, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range s.Dates {
		if !d.Equal(want[i]) {
			t.Errorf("date[%d] = %v, want %v", i, d, want[i])
		}
	}
}

func TestLogDiffConstantGrowth(t *testing.T) {
	// 10% growth per month gives a constant log-difference.
	s := NewMonthly(jan(2020), []float64{100, 110, 121})

	d, err := s.LogDiff()
	if err != nil {
		t.Fatalf("LogDiff failed: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("LogDiff length = %d, want 2", d.Len())
	}

	want := math.Log(1.1)
	for i, v := range d.Values {
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("LogDiff[%d] = %.10f, want %.10f", i, v, want)
		}
	}
	if math.Abs(d.Values[0]-0.0953) > 1e-4 {
		t.Errorf("LogDiff[0] = %.4f, want 0.0953", d.Values[0])
	}

	// Differenced series starts at the second month.
	if !d.Dates[0].Equal(time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("LogDiff first date = %v, want 2020-02-01", d.Dates[0])
	}
}

func TestLogDomainError(t *testing.T) {
	s := NewMonthly(jan(2020), []float64{100, 0, 121})

	_, err := s.Log()
	if err == nil {
		t.Fatal("Log on non-positive value should fail")
	}
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("error type = %T, want *DomainError", err)
	}
	if derr.Index != 1 {
		t.Errorf("DomainError index = %d, want 1", derr.Index)
	}
}

func TestDiffUndiffRoundTrip(t *testing.T) {
	values := []float64{100, 97, 105, 112, 108, 120}
	s := NewMonthly(jan(2020), values)

	restored := s.Diff().Undiff(values[0])
	if restored.Len() != s.Len() {
		t.Fatalf("round-trip length = %d, want %d", restored.Len(), s.Len())
	}
	for i := range values {
		if math.Abs(restored.Values[i]-values[i]) > 1e-12 {
			t.Errorf("round-trip[%d] = %g, want %g", i, restored.Values[i], values[i])
		}
		if !restored.Dates[i].Equal(s.Dates[i]) {
			t.Errorf("round-trip date[%d] = %v, want %v", i, restored.Dates[i], s.Dates[i])
		}
	}
}

func TestLogExpRoundTrip(t *testing.T) {
	values := []float64{0.5, 1, 42, 1e6}
	s := NewMonthly(jan(2020), values)

	logged, err := s.Log()
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	back := logged.Exp()
	for i := range values {
		if math.Abs(back.Values[i]-values[i])/values[i] > 1e-12 {
			t.Errorf("exp(log(%g)) = %g", values[i], back.Values[i])
		}
	}
}

func TestSeasonalDiff(t *testing.T) {
	n := 36
	values := make([]float64, n)
	for i := range values {
		// Pure seasonal pattern repeats every 12 months.
		values[i] = 100 + 20*math.Sin(2*math.Pi*float64(i)/12)
	}
	s := NewMonthly(jan(2015), values)

	d := s.SeasonalDiff(12)
	if d.Len() != n-12 {
		t.Fatalf("SeasonalDiff length = %d, want %d", d.Len(), n-12)
	}
	for i, v := range d.Values {
		if math.Abs(v) > 1e-9 {
			t.Errorf("SeasonalDiff[%d] = %g, want 0 for a pure seasonal series", i, v)
		}
	}
}

func TestHorizonDates(t *testing.T) {
	s := NewMonthly(time.Date(2017, time.April, 1, 0, 0, 0, 0, time.UTC), []float64{1, 2, 3})

	h := s.HorizonDates(2)
	if len(h) != 2 {
		t.Fatalf("HorizonDates length = %d, want 2", len(h))
	}
	if !h[0].Equal(time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first horizon date = %v, want 2017-07-01", h[0])
	}
	if !h[1].Equal(time.Date(2017, time.August, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second horizon date = %v, want 2017-08-01", h[1])
	}
}

func TestSliceAndCopyIndependent(t *testing.T) {
	s := NewMonthly(jan(2020), []float64{1, 2, 3, 4})

	sub := s.Slice(1, 3)
	if sub.Len() != 2 || sub.Values[0] != 2 || sub.Values[1] != 3 {
		t.Errorf("Slice(1,3) = %v", sub.Values)
	}

	cp := s.Copy()
	cp.Values[0] = 99
	if s.Values[0] != 1 {
		t.Error("Copy shares backing array with original")
	}
}
