package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "listen_addr: \":9090\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Errorf("Expected listen_addr :9090, got %s", cfg.ListenAddr)
	}
	if cfg.FetchTimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.FetchTimeoutSeconds)
	}
	if cfg.HistoryPath != "data/historical_statements.json" {
		t.Errorf("Expected default history path, got %s", cfg.HistoryPath)
	}
	if cfg.Sources.BaseURL != "https://www.federalreserve.gov" {
		t.Errorf("Expected default base URL, got %s", cfg.Sources.BaseURL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
fetch_timeout_seconds: 5
history_path: /tmp/hist.json
sources:
  base_url: https://fed.test
  calendar_url: https://fed.test/calendar
  press_releases_url: https://fed.test/press
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.FetchTimeout() != 5*time.Second {
		t.Errorf("Expected 5s fetch timeout, got %s", cfg.FetchTimeout())
	}
	if cfg.Sources.CalendarURL != "https://fed.test/calendar" {
		t.Errorf("Expected overridden calendar URL, got %s", cfg.Sources.CalendarURL)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := writeConfig(t, "fetch_timeout_seconds: -1\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected validation error for negative timeout")
	}
}

func TestLoadConfigRejectsBadBaseURL(t *testing.T) {
	path := writeConfig(t, "sources:\n  base_url: ftp://fed.test\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected validation error for non-http base URL")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("Missing file should surface as not-exist, got %v", err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}
