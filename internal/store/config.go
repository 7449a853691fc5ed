package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr          string `yaml:"listen_addr"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	HistoryPath         string `yaml:"history_path"`
	Sources             struct {
		BaseURL          string `yaml:"base_url"`
		CalendarURL      string `yaml:"calendar_url"`
		PressReleasesURL string `yaml:"press_releases_url"`
	} `yaml:"sources"`
}

func (c *Config) Validate() error {
	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("fetch_timeout_seconds must be positive, got %d", c.FetchTimeoutSeconds)
	}
	if c.HistoryPath == "" {
		return fmt.Errorf("history_path cannot be empty")
	}
	if !strings.HasPrefix(c.Sources.BaseURL, "http") {
		return fmt.Errorf("invalid sources.base_url '%s'", c.Sources.BaseURL)
	}
	if c.Sources.CalendarURL == "" || c.Sources.PressReleasesURL == "" {
		return fmt.Errorf("sources.calendar_url and sources.press_releases_url cannot be empty")
	}
	return nil
}

// FetchTimeout returns the per-fetch deadline as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

// DefaultConfig returns a config with all defaults applied, usable without
// a config file.
func DefaultConfig() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.FetchTimeoutSeconds == 0 {
		c.FetchTimeoutSeconds = 30
	}
	if c.HistoryPath == "" {
		c.HistoryPath = "data/historical_statements.json"
	}
	if c.Sources.BaseURL == "" {
		c.Sources.BaseURL = "https://www.federalreserve.gov"
	}
	if c.Sources.CalendarURL == "" {
		c.Sources.CalendarURL = "https://www.federalreserve.gov/monetarypolicy/fomccalendars.htm"
	}
	if c.Sources.PressReleasesURL == "" {
		c.Sources.PressReleasesURL = "https://www.federalreserve.gov/newsevents/pressreleases.htm"
	}
}
