// Package config provides the centralized leango configuration snapshot.
//
// Configuration is assembled once per process from defaults, an optional
// YAML config file, environment variables (LEANGO_ prefix), and bound
// command-line flags, in ascending precedence. The resulting Config is a
// read-only snapshot: it is built before the shared logger is first used
// and never mutated afterwards.
package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete leango configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Example ExampleConfig `mapstructure:"example"`
}

// LoggingConfig controls the shared logging facility.
type LoggingConfig struct {
	// Name is the logger name, padded to 12 characters in file log lines
	// (default: "LeanGo")
	Name string `mapstructure:"name"`
	// Level is the threshold for both handlers
	// Options: "DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL" (case-insensitive)
	Level string `mapstructure:"level"`
	// Directory is the log directory, created on first logger use (default: "logs")
	Directory string `mapstructure:"directory"`
	// DateSuffix appends the process start time to the log file name,
	// e.g. LeanGo_2026-08-26_14-03-05.log (default: false)
	DateSuffix bool `mapstructure:"date_suffix"`
}

// ExampleConfig holds the illustrative command-line-driven values the
// demo surfaces. They exist to show the flag/env/file plumbing, nothing
// depends on them.
type ExampleConfig struct {
	// SomeNumber is set with --somenumber <n> (default: 10)
	SomeNumber int `mapstructure:"some_number"`
	// Boolean is set with -b (default: false)
	Boolean bool `mapstructure:"boolean"`
}

// processStart anchors the date suffix so every call renders the same
// file name for the lifetime of the process.
var processStart = time.Now()

// LogFileName returns the log file name, date-suffixed when configured.
func (c *Config) LogFileName() string {
	name := c.Logging.Name
	if c.Logging.DateSuffix {
		name += processStart.Format("_2006-01-02_15-04-05")
	}
	return name + ".log"
}

// LogFilePath returns the full path of the log file.
func (c *Config) LogFilePath() string {
	return filepath.Join(c.Logging.Directory, c.LogFileName())
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Name:       "LeanGo",
			Level:      "INFO",
			Directory:  "logs",
			DateSuffix: false,
		},
		Example: ExampleConfig{
			SomeNumber: 10,
			Boolean:    false,
		},
	}
}

// SetDefaults registers all default values with viper. Must run before
// reading the config file so defaults apply even without one.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("logging.name", defaults.Logging.Name)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.directory", defaults.Logging.Directory)
	viper.SetDefault("logging.date_suffix", defaults.Logging.DateSuffix)

	viper.SetDefault("example.some_number", defaults.Example.SomeNumber)
	viper.SetDefault("example.boolean", defaults.Example.Boolean)
}

// Load builds a Config from viper's merged sources and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

var (
	snapshotOnce sync.Once
	snapshot     *Config
)

// Get returns the process-wide configuration snapshot, building it on
// first call. The snapshot is never rebuilt; later viper mutations do not
// reach it. If loading fails, the defaults serve as the snapshot — the
// startup path is expected to have surfaced the error via Load already.
func Get() *Config {
	snapshotOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		snapshot = cfg
	})
	return snapshot
}

// Reset discards the snapshot so the next Get rebuilds it. Tests only.
func Reset() {
	snapshotOnce = sync.Once{}
	snapshot = nil
}

// ConfigDir returns the leango config directory, ~/.config/leango.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "leango")
	}
	return filepath.Join(home, ".config", "leango")
}

// ConfigFilePath returns the default config file location.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
