package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for explicit missing config file")
	}
}

func TestLoad_FileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drillreport.yaml")
	data := []byte("input_dir: /data/in\noutput_dir: /data/out\nperiod: February 2026\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InputDir != "/data/in" || cfg.OutputDir != "/data/out" {
		t.Errorf("dirs = %s / %s, want file values", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.Period != "February 2026" {
		t.Errorf("Period = %q", cfg.Period)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
	// Pattern unset in file falls back to the default.
	if cfg.Pattern != Default().Pattern {
		t.Errorf("Pattern = %q, want default", cfg.Pattern)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drillreport.yaml")
	if err := os.WriteFile(path, []byte("input_dir: /from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DRILLREPORT_INPUT", "/from/env")
	t.Setenv("DRILLREPORT_OUTPUT", "/out/env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InputDir != "/from/env" {
		t.Errorf("InputDir = %s, want env override", cfg.InputDir)
	}
	if cfg.OutputDir != "/out/env" {
		t.Errorf("OutputDir = %s, want env override", cfg.OutputDir)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("input_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestOutputPaths(t *testing.T) {
	cfg := Config{OutputDir: "out"}
	if got := cfg.MergedCSVPath(); got != filepath.Join("out", "drill_records_merged.csv") {
		t.Errorf("MergedCSVPath = %s", got)
	}
	if got := cfg.WorkbookPath(); got != filepath.Join("out", "drill_records_merged.xlsx") {
		t.Errorf("WorkbookPath = %s", got)
	}
}
