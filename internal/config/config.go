// Package config resolves run settings from a YAML file, environment
// variables, and defaults. Command-line flags override everything and
// are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/drillreport/internal/record"
)

// DefaultFile is the config filename looked up in the input directory
// when --config is not given.
const DefaultFile = "drillreport.yaml"

// Config holds all run settings.
type Config struct {
	// InputDir is where record CSVs are discovered.
	InputDir string `yaml:"input_dir"`
	// Pattern is the glob matched against files in InputDir.
	Pattern string `yaml:"pattern"`
	// OutputDir receives rendered reports and exports.
	OutputDir string `yaml:"output_dir"`
	// Period is the label shown on every report card header.
	Period string `yaml:"period"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputDir:  ".",
		Pattern:   record.DefaultPattern,
		OutputDir: "output",
		Period:    "",
		LogLevel:  "info",
	}
}

// Load resolves the config in priority order: file (when present), then
// DRILLREPORT_INPUT / DRILLREPORT_OUTPUT env vars, with defaults for
// anything unset. path may be empty, in which case DefaultFile is tried
// in the current directory and silently skipped when absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("DRILLREPORT_INPUT"); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv("DRILLREPORT_OUTPUT"); v != "" {
		cfg.OutputDir = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.InputDir == "" {
		c.InputDir = d.InputDir
	}
	if c.Pattern == "" {
		c.Pattern = d.Pattern
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MergedCSVPath returns where the merge command writes its flat output.
func (c Config) MergedCSVPath() string {
	return filepath.Join(c.OutputDir, "drill_records_merged.csv")
}

// WorkbookPath returns where the merge command writes its XLSX output.
func (c Config) WorkbookPath() string {
	return filepath.Join(c.OutputDir, "drill_records_merged.xlsx")
}
