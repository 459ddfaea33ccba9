package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should load defaults, got %v", err)
	}
	if cfg.NavSource.BaseURL != "https://api.mfapi.in" {
		t.Errorf("unexpected default base url %q", cfg.NavSource.BaseURL)
	}
	if cfg.Schedule.WatchCron != "0 0 18 * * 1-5" {
		t.Errorf("unexpected default watch cron %q", cfg.Schedule.WatchCron)
	}
	if cfg.Strategy.MinDropPct != 3 || cfg.Strategy.MaxDropPct != 8 {
		t.Errorf("unexpected default drop band %.1f..%.1f", cfg.Strategy.MinDropPct, cfg.Strategy.MaxDropPct)
	}
	if cfg.Strategy.RecentVsHistorical != 0.4 || cfg.Strategy.PeakVsAverage != 0.3 {
		t.Errorf("unexpected default weights %+v", cfg.Strategy)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("unexpected default listen addr %q", cfg.Server.ListenAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
nav_source:
  base_url: http://file-url
strategy:
  min_drop_pct: 2
  max_drop_pct: 10
storage:
  data_dir: /tmp/funds
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MFAPI_BASE_URL", "http://env-url")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NavSource.BaseURL != "http://env-url" {
		t.Errorf("env should override file, got %q", cfg.NavSource.BaseURL)
	}
	if cfg.Strategy.MinDropPct != 2 || cfg.Strategy.MaxDropPct != 10 {
		t.Errorf("file values lost: %.1f..%.1f", cfg.Strategy.MinDropPct, cfg.Strategy.MaxDropPct)
	}
	if cfg.Storage.DataDir != "/tmp/funds" {
		t.Errorf("expected data dir from file, got %q", cfg.Storage.DataDir)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Strategy.MinDropPct = 9
	if err := cfg.Validate(); err == nil {
		t.Error("expected rejection of inverted drop band")
	}

	cfg, _ = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected rejection of bot token without chat id")
	}

	cfg, _ = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg.Strategy.AlertThreshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected rejection of alert threshold above 1")
	}
}
