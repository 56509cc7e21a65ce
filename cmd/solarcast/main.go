// Solarcast — seasonal ARIMA forecasts for monthly renewable generation.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sartorproj/solarcast"
	"github.com/sartorproj/solarcast/config"
	"github.com/sartorproj/solarcast/export"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solarcast",
	Short: "Solarcast — seasonal ARIMA forecasts for monthly renewable generation",
	Long: `Solarcast downloads the EIA Monthly Energy Review electricity feed,
cleans it into monthly GWh series per source, selects the best seasonal
ARIMA specification by AIC, and writes multi-year forecasts with
confidence bands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		setupLogging(cfg.Logging.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./solarcast.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
}

func setupLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Solarcast %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Run Command ---

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full forecast pipeline and write artifacts",
	Long: `Run downloads the feed, extracts one source series, fits the candidate
models, and writes forecast.csv, models.csv, and forecast.xlsx under the
output directory.

Examples:
  solarcast run --source Solar --horizon-months 60
  solarcast run --source Wind --confidence 0.9 --out results`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyRunFlags(cmd)

		result, err := solarcast.Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		best := result.Selection.Best
		fmt.Printf("Selected %s  AIC=%.2f  (%d candidates tried)\n",
			best.Order, best.AIC, len(result.Selection.Results))
		if result.Holdout != nil {
			fmt.Printf("Holdout MAPE over %d months: %.2f%%\n",
				result.Holdout.Actual.Len(), result.Holdout.MAPE*100)
		}

		outDir := cfg.Output.Dir
		if err := export.WriteForecastCSV(filepath.Join(outDir, "forecast.csv"), result.Bands); err != nil {
			return err
		}
		if err := export.WriteModelReportCSV(filepath.Join(outDir, "models.csv"), result.Selection.Results); err != nil {
			return err
		}
		if cfg.Output.XLSX {
			if err := export.WriteForecastXLSX(filepath.Join(outDir, "forecast.xlsx"), result.Bands, result.Selection.Results); err != nil {
				return err
			}
		}

		fmt.Printf("Wrote %d forecast months to %s\n", len(result.Bands), outDir)
		return nil
	},
}

func init() {
	runCmd.Flags().String("url", "", "feed URL override")
	runCmd.Flags().String("source", "", "energy source label, e.g. Solar or Wind")
	runCmd.Flags().Int("horizon-months", 0, "forecast horizon in months")
	runCmd.Flags().Float64("confidence", 0, "confidence level inside (0, 1)")
	runCmd.Flags().Int("holdout-months", -1, "holdout validation window, 0 disables")
	runCmd.Flags().String("out", "", "output directory")
}

func applyRunFlags(cmd *cobra.Command) {
	if v, _ := cmd.Flags().GetString("url"); v != "" {
		cfg.Feed.URL = v
	}
	if v, _ := cmd.Flags().GetString("source"); v != "" {
		cfg.Feed.Source = v
	}
	if v, _ := cmd.Flags().GetInt("horizon-months"); v > 0 {
		cfg.Model.HorizonMonths = v
	}
	if v, _ := cmd.Flags().GetFloat64("confidence"); v > 0 {
		cfg.Model.Confidence = v
	}
	if cmd.Flags().Changed("holdout-months") {
		if v, _ := cmd.Flags().GetInt("holdout-months"); v >= 0 {
			cfg.Model.HoldoutMonths = v
		}
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Output.Dir = v
	}
}
