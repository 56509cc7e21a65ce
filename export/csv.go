// Package export writes forecast tables and model-selection reports to CSV
// and XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sartorproj/solarcast/autoarima"
	"github.com/sartorproj/solarcast/forecast"
)

const dateLayout = "2006-01-02"

// WriteForecastCSV writes the forecast table {date, predicted_gwh,
// lower_gwh, upper_gwh} to path. The file gets a UTF-8 BOM so spreadsheet
// tools pick up the encoding.
func WriteForecastCSV(path string, bands []forecast.Band) error {
	records := make([][]string, len(bands))
	for i, b := range bands {
		records[i] = []string{
			b.Date.Format(dateLayout),
			formatGWh(b.PredictedGWh),
			formatGWh(b.LowerGWh),
			formatGWh(b.UpperGWh),
		}
	}
	return writeCSV(path, []string{"date", "predicted_gwh", "lower_gwh", "upper_gwh"}, records)
}

// WriteModelReportCSV writes the per-candidate selection report {spec, aic,
// converged, error} to path.
func WriteModelReportCSV(path string, results []autoarima.CandidateResult) error {
	records := make([][]string, len(results))
	for i, r := range results {
		aic := ""
		if !math.IsNaN(r.AIC) {
			aic = strconv.FormatFloat(r.AIC, 'f', 4, 64)
		}
		errMsg := ""
		if r.Err != nil {
			errMsg = r.Err.Error()
		}
		records[i] = []string{
			r.Order.String(),
			aic,
			strconv.FormatBool(r.Converged),
			errMsg,
		}
	}
	return writeCSV(path, []string{"spec", "aic", "converged", "error"}, records)
}

func writeCSV(path string, headers []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("export: writing BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("export: writing record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	slog.Info("wrote CSV", slog.String("path", path), slog.Int("rows", len(records)))
	return nil
}

func formatGWh(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
