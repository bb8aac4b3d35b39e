package config

import (
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// setupViper gives each test a clean viper universe with defaults applied.
func setupViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	Reset()
	t.Cleanup(func() {
		viper.Reset()
		Reset()
	})
	SetDefaults()
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Name != "LeanGo" {
		t.Errorf("default logger name = %q, want LeanGo", cfg.Logging.Name)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("default level = %q, want INFO", cfg.Logging.Level)
	}
	if cfg.Logging.Directory != "logs" {
		t.Errorf("default directory = %q, want logs", cfg.Logging.Directory)
	}
	if cfg.Logging.DateSuffix {
		t.Error("date suffix should default to off")
	}
	if cfg.Example.SomeNumber != 10 {
		t.Errorf("default some_number = %d, want 10", cfg.Example.SomeNumber)
	}
	if cfg.Example.Boolean {
		t.Error("example boolean should default to false")
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate cleanly, got: %v", errs)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults reach the snapshot", func(t *testing.T) {
		setupViper(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Logging.Level != "INFO" {
			t.Errorf("level = %q, want INFO", cfg.Logging.Level)
		}
	})

	t.Run("viper values override defaults", func(t *testing.T) {
		setupViper(t)
		viper.Set("logging.level", "debug")
		viper.Set("example.some_number", 42)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("level = %q, want debug", cfg.Logging.Level)
		}
		if cfg.Example.SomeNumber != 42 {
			t.Errorf("some_number = %d, want 42", cfg.Example.SomeNumber)
		}
	})

	t.Run("invalid values fail loading", func(t *testing.T) {
		setupViper(t)
		viper.Set("logging.level", "LOUD")

		if _, err := Load(); err == nil {
			t.Fatal("expected Load to reject an invalid level")
		}
	})
}

func TestGetSnapshot(t *testing.T) {
	setupViper(t)
	viper.Set("example.some_number", 7)

	first := Get()
	if first.Example.SomeNumber != 7 {
		t.Fatalf("snapshot some_number = %d, want 7", first.Example.SomeNumber)
	}

	// Post-snapshot mutations must not reach the snapshot.
	viper.Set("example.some_number", 99)
	second := Get()

	if first != second {
		t.Error("expected Get to return the same snapshot instance")
	}
	if second.Example.SomeNumber != 7 {
		t.Errorf("snapshot mutated after construction: %d", second.Example.SomeNumber)
	}
}

func TestLogFileName(t *testing.T) {
	t.Run("plain name", func(t *testing.T) {
		cfg := Default()
		if got := cfg.LogFileName(); got != "LeanGo.log" {
			t.Errorf("LogFileName = %q, want LeanGo.log", got)
		}
	})

	t.Run("date suffix is stable across calls", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.DateSuffix = true

		first := cfg.LogFileName()
		second := cfg.LogFileName()

		re := regexp.MustCompile(`^LeanGo_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.log$`)
		if !re.MatchString(first) {
			t.Errorf("LogFileName = %q, want date-suffixed form", first)
		}
		if first != second {
			t.Errorf("file name changed between calls: %q vs %q", first, second)
		}
	})

	t.Run("path joins directory and file name", func(t *testing.T) {
		cfg := Default()
		if got := cfg.LogFilePath(); !strings.HasSuffix(got, "LeanGo.log") || !strings.HasPrefix(got, "logs") {
			t.Errorf("LogFilePath = %q", got)
		}
	})
}
