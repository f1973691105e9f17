package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsUsable(t *testing.T) {
	cfg := Default()
	if cfg.UpdateMinutes != 5 {
		t.Errorf("UpdateMinutes = %d, want 5", cfg.UpdateMinutes)
	}
	if !cfg.TwentyFourHour {
		t.Error("default should be 24h")
	}
	if cfg.MinRefreshGap() <= 0 || cfg.PollInterval() <= 0 || cfg.BusyRetryDelay() <= 0 {
		t.Error("default durations must be positive")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := loadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if cfg.UpdateMinutes != Default().UpdateMinutes {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := loadFrom(path)
	if cfg.DatasetPath != Default().DatasetPath {
		t.Error("corrupt file should yield defaults")
	}
}

func TestNormalizeClampsNonsense(t *testing.T) {
	cfg := &Config{UpdateMinutes: -3, Margin: -1, PollMs: 0, MinRefreshGapMs: -5}
	cfg.normalize()
	if cfg.UpdateMinutes != 5 || cfg.Margin != 10 || cfg.PollMs != 100 || cfg.MinRefreshGapMs != 500 {
		t.Errorf("normalize left %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("INKCLOCK_DATASET", "/tmp/quotes.txt")
	t.Setenv("INKCLOCK_UPDATE_MINUTES", "15")
	t.Setenv("INKCLOCK_TIME_24H", "false")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.DatasetPath != "/tmp/quotes.txt" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.UpdateMinutes != 15 {
		t.Errorf("UpdateMinutes = %d, want 15", cfg.UpdateMinutes)
	}
	if cfg.TwentyFourHour {
		t.Error("TwentyFourHour should be overridden to false")
	}
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("INKCLOCK_UPDATE_MINUTES", "soon")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.UpdateMinutes != 5 {
		t.Errorf("UpdateMinutes = %d, want default 5", cfg.UpdateMinutes)
	}
}
