package export

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/sartorproj/solarcast/autoarima"
	"github.com/sartorproj/solarcast/forecast"
)

// WriteForecastXLSX writes one workbook with a Forecast sheet and a Models
// sheet for the selection report.
func WriteForecastXLSX(path string, bands []forecast.Band, results []autoarima.CandidateResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: creating directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const forecastSheet = "Forecast"
	if err := f.SetSheetName("Sheet1", forecastSheet); err != nil {
		return fmt.Errorf("export: renaming sheet: %w", err)
	}

	if err := f.SetSheetRow(forecastSheet, "A1", &[]interface{}{"date", "predicted_gwh", "lower_gwh", "upper_gwh"}); err != nil {
		return fmt.Errorf("export: writing forecast header: %w", err)
	}
	for i, b := range bands {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{b.Date.Format(dateLayout), b.PredictedGWh, b.LowerGWh, b.UpperGWh}
		if err := f.SetSheetRow(forecastSheet, cell, &row); err != nil {
			return fmt.Errorf("export: writing forecast row %d: %w", i, err)
		}
	}

	const modelSheet = "Models"
	if _, err := f.NewSheet(modelSheet); err != nil {
		return fmt.Errorf("export: creating model sheet: %w", err)
	}
	if err := f.SetSheetRow(modelSheet, "A1", &[]interface{}{"spec", "aic", "converged", "error"}); err != nil {
		return fmt.Errorf("export: writing model header: %w", err)
	}
	for i, r := range results {
		var aic interface{}
		if !math.IsNaN(r.AIC) {
			aic = r.AIC
		}
		errMsg := ""
		if r.Err != nil {
			errMsg = r.Err.Error()
		}
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{r.Order.String(), aic, r.Converged, errMsg}
		if err := f.SetSheetRow(modelSheet, cell, &row); err != nil {
			return fmt.Errorf("export: writing model row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: saving %s: %w", path, err)
	}

	slog.Info("wrote XLSX",
		slog.String("path", path),
		slog.Int("forecast_rows", len(bands)),
		slog.Int("model_rows", len(results)))
	return nil
}
