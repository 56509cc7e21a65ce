package solarcast

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sartorproj/solarcast/autoarima"
	"github.com/sartorproj/solarcast/config"
	"github.com/sartorproj/solarcast/energy"
	"github.com/sartorproj/solarcast/forecast"
	"github.com/sartorproj/solarcast/timeseries"
)

// RunResult collects everything one pipeline run produces.
type RunResult struct {
	Series    *timeseries.Series      // extracted history, GWh
	Selection *autoarima.Selection    // per-candidate report and the winner
	Forecast  *forecast.Result        // log-scale point forecasts and standard errors
	Bands     []forecast.Band         // back-transformed confidence bands
	Holdout   *forecast.HoldoutReport // nil when holdout validation is disabled
}

// Run executes the full pipeline described by cfg: load, clean, extract,
// select, forecast, validate.
func Run(ctx context.Context, cfg *config.Config) (*RunResult, error) {
	return RunWithLoader(ctx, cfg, energy.NewLoader())
}

// RunWithLoader is Run with an injectable feed loader.
func RunWithLoader(ctx context.Context, cfg *config.Config, loader *energy.Loader) (*RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	raw, err := loader.Load(ctx, cfg.Feed.URL)
	if err != nil {
		return nil, fmt.Errorf("loading feed: %w", err)
	}

	cleaned, err := energy.Clean(raw, &energy.CleanOptions{StripWords: cfg.StripWords()})
	if err != nil {
		return nil, fmt.Errorf("cleaning records: %w", err)
	}

	from, to, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	series, err := energy.Extract(cleaned, cfg.Feed.Source, from, to)
	if err != nil {
		return nil, fmt.Errorf("extracting %s series: %w", cfg.Feed.Source, err)
	}
	slog.Info("extracted series",
		slog.String("source", cfg.Feed.Source),
		slog.Int("months", series.Len()),
		slog.Time("end", series.EndDate()))

	logged, err := series.Log()
	if err != nil {
		return nil, fmt.Errorf("log transform: %w", err)
	}

	candidates, err := cfg.Candidates()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		candidates = autoarima.DefaultCandidates()
	}
	selection, err := autoarima.SelectBest(logged, candidates)
	if err != nil {
		return nil, fmt.Errorf("selecting model: %w", err)
	}

	fc, err := forecast.Forecast(selection.Best, cfg.Model.HorizonMonths)
	if err != nil {
		return nil, fmt.Errorf("forecasting: %w", err)
	}
	bands, err := fc.Bands(cfg.Model.Confidence)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Series:    series,
		Selection: selection,
		Forecast:  fc,
		Bands:     bands,
	}

	if cfg.Model.HoldoutMonths > 0 {
		holdout, err := forecast.ValidateHoldout(series, selection.Best.Order, cfg.Model.HoldoutMonths)
		if err != nil {
			return nil, fmt.Errorf("holdout validation: %w", err)
		}
		slog.Info("holdout validation",
			slog.Int("months", cfg.Model.HoldoutMonths),
			slog.Float64("mape", holdout.MAPE))
		result.Holdout = holdout
	}

	return result, nil
}
