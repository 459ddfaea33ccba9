package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	NavSource struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"nav_source"`
	Schedule struct {
		WatchCron  string `yaml:"watch_cron"`
		RunOnStart bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Strategy struct {
		RecentVsHistorical float64 `yaml:"recent_vs_historical"`
		PeakVsAverage      float64 `yaml:"peak_vs_average"`
		MinDropPct         float64 `yaml:"min_drop_pct"`
		MaxDropPct         float64 `yaml:"max_drop_pct"`
		AlertThreshold     float64 `yaml:"alert_threshold"`
	} `yaml:"strategy"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Storage struct {
		DataDir    string `yaml:"data_dir"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"storage"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("MFAPI_BASE_URL"); v != "" {
		cfg.NavSource.BaseURL = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.NavSource.BaseURL == "" {
		cfg.NavSource.BaseURL = "https://api.mfapi.in"
	}
	if cfg.Schedule.WatchCron == "" {
		cfg.Schedule.WatchCron = "0 0 18 * * 1-5"
	}
	if cfg.Strategy.RecentVsHistorical == 0 {
		cfg.Strategy.RecentVsHistorical = 0.4
	}
	if cfg.Strategy.PeakVsAverage == 0 {
		cfg.Strategy.PeakVsAverage = 0.3
	}
	if cfg.Strategy.MinDropPct == 0 {
		cfg.Strategy.MinDropPct = 3
	}
	if cfg.Strategy.MaxDropPct == 0 {
		cfg.Strategy.MaxDropPct = 8
	}
	if cfg.Strategy.AlertThreshold == 0 {
		cfg.Strategy.AlertThreshold = 0.6
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/fundpilot.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set. Telegram is
// optional: without credentials the watcher only logs alerts.
func (c *Config) Validate() error {
	if c.NavSource.BaseURL == "" {
		return fmt.Errorf("nav_source.base_url is required")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when bot_token is set")
	}
	if c.Strategy.MinDropPct >= c.Strategy.MaxDropPct {
		return fmt.Errorf("strategy.min_drop_pct must be below max_drop_pct")
	}
	if c.Strategy.AlertThreshold < 0 || c.Strategy.AlertThreshold > 1 {
		return fmt.Errorf("strategy.alert_threshold must be within [0, 1]")
	}
	return nil
}
