// Package config is the persistent clock configuration: a JSON file in
// the data directory, overridable through INKCLOCK_* environment
// variables so a device image can be tuned without editing files.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config is the persistent application configuration.
type Config struct {
	// DatasetPath points at the quote dataset: a pipe-delimited text
	// file, or a .db quote database built by `quotes import`.
	DatasetPath string `json:"dataset_path"`

	// UpdateMinutes is the bucket width: the displayed quote changes at
	// most once per bucket.
	UpdateMinutes int `json:"update_minutes"`

	// TwentyFourHour selects 24h (true) or 12h AM/PM time display.
	TwentyFourHour bool `json:"time_24h"`

	// Margin is the border around the drawable area, in layout units.
	Margin int `json:"margin"`

	// LinePad is the vertical gap between quote lines.
	LinePad int `json:"line_pad"`

	// MinRefreshGapMs spaces hardware refreshes apart.
	MinRefreshGapMs int `json:"min_refresh_gap_ms"`

	// BusyRetryMs is the delay before the single retry after a busy panel.
	BusyRetryMs int `json:"busy_retry_ms"`

	// PollMs is the idle sleep between control loop iterations.
	PollMs int `json:"poll_ms"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `json:"log_level"`
}

// Default returns sensible defaults.
func Default() *Config {
	return &Config{
		DatasetPath:     filepath.Join(DataDir(), "quotes.txt"),
		UpdateMinutes:   5,
		TwentyFourHour:  true,
		Margin:          10,
		LinePad:         2,
		MinRefreshGapMs: 500,
		BusyRetryMs:     500,
		PollMs:          100,
		LogLevel:        "info",
	}
}

// DataDir returns the directory holding config, dataset and logs.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".inkclock")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from disk, or returns defaults. A corrupt file is
// treated as absent; the clock must come up regardless.
func Load() *Config {
	cfg := loadFrom(Path())
	cfg.ApplyEnv()
	cfg.normalize()
	return cfg
}

func loadFrom(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return &cfg
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from INKCLOCK_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("INKCLOCK_DATASET"); v != "" {
		c.DatasetPath = v
	}
	if v := os.Getenv("INKCLOCK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("INKCLOCK_UPDATE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.UpdateMinutes = n
		}
	}
	if v := os.Getenv("INKCLOCK_TIME_24H"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.TwentyFourHour = b
		}
	}
}

// normalize clamps nonsense values back to defaults so a hand-edited
// config cannot wedge the loop.
func (c *Config) normalize() {
	def := Default()
	if c.UpdateMinutes <= 0 || c.UpdateMinutes > 60 {
		c.UpdateMinutes = def.UpdateMinutes
	}
	if c.Margin < 0 {
		c.Margin = def.Margin
	}
	if c.LinePad < 0 {
		c.LinePad = def.LinePad
	}
	if c.MinRefreshGapMs <= 0 {
		c.MinRefreshGapMs = def.MinRefreshGapMs
	}
	if c.BusyRetryMs <= 0 {
		c.BusyRetryMs = def.BusyRetryMs
	}
	if c.PollMs <= 0 {
		c.PollMs = def.PollMs
	}
	if c.DatasetPath == "" {
		c.DatasetPath = def.DatasetPath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// MinRefreshGap returns the refresh gap as a duration.
func (c *Config) MinRefreshGap() time.Duration {
	return time.Duration(c.MinRefreshGapMs) * time.Millisecond
}

// BusyRetryDelay returns the busy retry delay as a duration.
func (c *Config) BusyRetryDelay() time.Duration {
	return time.Duration(c.BusyRetryMs) * time.Millisecond
}

// PollInterval returns the loop idle sleep as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollMs) * time.Millisecond
}
