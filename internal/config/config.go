package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied before the YAML file and environment are consulted.
const (
	DefaultSymbol      = "AAPL"
	DefaultHistoryDays = 30
	DefaultMAWindow    = 5
	DefaultRefresh     = 1500 * time.Millisecond
)

// Config is the top-level configuration for the dashboard.
type Config struct {
	AlphaVantage AlphaVantage `yaml:"alphavantage"`
	Dashboard    Dashboard    `yaml:"dashboard"`
	Logging      Logging      `yaml:"logging"`
}

// AlphaVantage holds the credential and endpoint for the data provider.
// The API key is opaque; it is only ever passed through to the client.
type AlphaVantage struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// Dashboard controls the displayed series and redraw cadence.
type Dashboard struct {
	Symbol      string `yaml:"symbol"`
	HistoryDays int    `yaml:"history_days"`
	MAWindow    int    `yaml:"ma_window"`
	Refresh     string `yaml:"refresh"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RefreshInterval parses the configured redraw interval, falling back to
// the default when unset or unparsable.
func (d Dashboard) RefreshInterval() time.Duration {
	if d.Refresh == "" {
		return DefaultRefresh
	}
	iv, err := time.ParseDuration(d.Refresh)
	if err != nil || iv <= 0 {
		return DefaultRefresh
	}
	return iv
}

// Load reads the YAML configuration file at the given path, applies
// environment variable overrides, and validates the result. A missing
// file is not an error; defaults plus the environment are enough.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Dashboard: Dashboard{
			Symbol:      DefaultSymbol,
			HistoryDays: DefaultHistoryDays,
			MAWindow:    DefaultMAWindow,
		},
		Logging: Logging{Level: "info", Format: "text"},
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.AlphaVantage.APIKey == "" {
		return nil, fmt.Errorf("alphavantage api key is required (set ALPHAVANTAGE_API_KEY)")
	}
	if cfg.Dashboard.HistoryDays <= 0 {
		return nil, fmt.Errorf("dashboard.history_days must be positive, got %d", cfg.Dashboard.HistoryDays)
	}
	if cfg.Dashboard.MAWindow <= 0 {
		return nil, fmt.Errorf("dashboard.ma_window must be positive, got %d", cfg.Dashboard.MAWindow)
	}
	if cfg.Dashboard.Symbol == "" {
		cfg.Dashboard.Symbol = DefaultSymbol
	}

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides
// the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Dashboard.Symbol = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
