// Package config handles run configuration for solarcast.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sartorproj/solarcast/energy"
	"github.com/sartorproj/solarcast/sarima"
)

// DefaultFeedURL is the EIA Monthly Energy Review electricity-generation
// CSV export.
const DefaultFeedURL = "https://www.eia.gov/totalenergy/data/browser/csv.php?tbl=T10.01"

// Config represents one batch run.
type Config struct {
	Feed    FeedConfig    `mapstructure:"feed"    yaml:"feed"`
	Model   ModelConfig   `mapstructure:"model"   yaml:"model"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// FeedConfig describes the source dataset and the extracted series.
type FeedConfig struct {
	URL        string   `mapstructure:"url"         yaml:"url"`
	Source     string   `mapstructure:"source"      yaml:"source"`      // normalized label, e.g. "Solar"
	From       string   `mapstructure:"from"        yaml:"from"`        // YYYY-MM, empty = unbounded
	To         string   `mapstructure:"to"          yaml:"to"`          // YYYY-MM, empty = unbounded
	StripWords []string `mapstructure:"strip_words" yaml:"strip_words"` // empty = feed defaults
}

// ModelConfig describes selection, forecasting, and validation.
type ModelConfig struct {
	HorizonMonths int      `mapstructure:"horizon_months" yaml:"horizon_months"`
	Confidence    float64  `mapstructure:"confidence"     yaml:"confidence"`
	HoldoutMonths int      `mapstructure:"holdout_months" yaml:"holdout_months"`
	Candidates    []string `mapstructure:"candidates"     yaml:"candidates"` // "p,d,q,P,D,Q" per entry; empty = defaults
}

// OutputConfig describes where artifacts land.
type OutputConfig struct {
	Dir  string `mapstructure:"dir"  yaml:"dir"`
	XLSX bool   `mapstructure:"xlsx" yaml:"xlsx"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// Load reads configuration from ./solarcast.yaml (optional) and
// SOLARCAST_-prefixed environment variables over the built-in defaults.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("solarcast")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".solarcast"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads configuration from an explicit file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SOLARCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("feed.url", DefaultFeedURL)
	v.SetDefault("feed.source", "Solar")
	v.SetDefault("model.horizon_months", 60)
	v.SetDefault("model.confidence", 0.95)
	v.SetDefault("model.holdout_months", 12)
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.xlsx", true)
	v.SetDefault("logging.level", "info")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and formats without touching the network.
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return errors.New("config: feed.url must not be empty")
	}
	if c.Feed.Source == "" {
		return errors.New("config: feed.source must not be empty")
	}
	if c.Model.HorizonMonths < 1 {
		return fmt.Errorf("config: model.horizon_months = %d, must be at least 1", c.Model.HorizonMonths)
	}
	if c.Model.Confidence <= 0 || c.Model.Confidence >= 1 {
		return fmt.Errorf("config: model.confidence = %g, must be inside (0, 1)", c.Model.Confidence)
	}
	if c.Model.HoldoutMonths < 0 {
		return fmt.Errorf("config: model.holdout_months = %d, must not be negative", c.Model.HoldoutMonths)
	}
	if _, _, err := c.Window(); err != nil {
		return err
	}
	if _, err := c.Candidates(); err != nil {
		return err
	}
	return nil
}

// Window returns the extraction window. Empty bounds become the widest
// possible range.
func (c *Config) Window() (from, to time.Time, err error) {
	from = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(9999, 12, 1, 0, 0, 0, 0, time.UTC)

	if c.Feed.From != "" {
		if from, err = time.Parse("2006-01", c.Feed.From); err != nil {
			return from, to, fmt.Errorf("config: feed.from %q is not YYYY-MM: %w", c.Feed.From, err)
		}
	}
	if c.Feed.To != "" {
		if to, err = time.Parse("2006-01", c.Feed.To); err != nil {
			return from, to, fmt.Errorf("config: feed.to %q is not YYYY-MM: %w", c.Feed.To, err)
		}
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("config: window %s..%s is empty", c.Feed.From, c.Feed.To)
	}
	return from, to, nil
}

// StripWords returns the configured label strip list, or the feed defaults.
func (c *Config) StripWords() []string {
	if len(c.Feed.StripWords) > 0 {
		return c.Feed.StripWords
	}
	return energy.DefaultStripWords()
}

// Candidates parses the configured candidate orders. Entries have the form
// "p,d,q,P,D,Q"; the seasonal period is always 12. An empty list means the
// caller should fall back to autoarima.DefaultCandidates.
func (c *Config) Candidates() ([]sarima.Order, error) {
	orders := make([]sarima.Order, 0, len(c.Model.Candidates))
	for _, entry := range c.Model.Candidates {
		parts := strings.Split(entry, ",")
		if len(parts) != 6 {
			return nil, fmt.Errorf("config: candidate %q must have six comma-separated orders", entry)
		}
		nums := make([]int, 6)
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("config: candidate %q has invalid order %q", entry, p)
			}
			nums[i] = n
		}
		orders = append(orders, sarima.Order{
			P: nums[0], D: nums[1], Q: nums[2],
			SP: nums[3], SD: nums[4], SQ: nums[5],
			M: 12,
		})
	}
	return orders, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
