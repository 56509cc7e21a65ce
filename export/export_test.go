package export

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sartorproj/solarcast/autoarima"
	"github.com/sartorproj/solarcast/forecast"
	"github.com/sartorproj/solarcast/sarima"
)

func sampleBands() []forecast.Band {
	return []forecast.Band{
		{
			Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			PredictedGWh: 1500.5,
			LowerGWh:     1400.25,
			UpperGWh:     1600.75,
		},
		{
			Date:         time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			PredictedGWh: 1550,
			LowerGWh:     1420,
			UpperGWh:     1680,
		},
	}
}

func sampleResults() []autoarima.CandidateResult {
	return []autoarima.CandidateResult{
		{Order: sarima.Order{P: 0, D: 1, SP: 1, M: 12}, AIC: -312.52, Converged: true},
		{Order: sarima.Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 12}, AIC: math.NaN(), Err: errors.New("did not converge")},
	}
}

func TestWriteForecastCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "forecast.csv")
	require.NoError(t, WriteForecastCSV(path, sampleBands()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3], "file should start with a UTF-8 BOM")

	rows, err := csv.NewReader(newBOMStrippedReader(t, path)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"date", "predicted_gwh", "lower_gwh", "upper_gwh"}, rows[0])
	assert.Equal(t, []string{"2024-01-01", "1500.500", "1400.250", "1600.750"}, rows[1])
}

func TestWriteModelReportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.csv")
	require.NoError(t, WriteModelReportCSV(path, sampleResults()))

	rows, err := csv.NewReader(newBOMStrippedReader(t, path)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"spec", "aic", "converged", "error"}, rows[0])
	assert.Equal(t, []string{"(0,1,0)(1,0,0)[12]", "-312.5200", "true", ""}, rows[1])
	assert.Equal(t, "(1,1,1)(1,1,1)[12]", rows[2][0])
	assert.Empty(t, rows[2][1], "failed candidate has no AIC")
	assert.Equal(t, "false", rows[2][2])
	assert.Equal(t, "did not converge", rows[2][3])
}

func TestWriteForecastXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forecast.xlsx")
	require.NoError(t, WriteForecastXLSX(path, sampleBands(), sampleResults()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Forecast")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-01-01", rows[1][0])

	modelRows, err := f.GetRows("Models")
	require.NoError(t, err)
	require.Len(t, modelRows, 3)
	assert.Equal(t, "(0,1,0)(1,0,0)[12]", modelRows[1][0])
}

// newBOMStrippedReader opens path skipping the leading UTF-8 BOM.
func newBOMStrippedReader(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	_, err = f.Seek(3, 0)
	require.NoError(t, err)
	return f
}
