package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snapmend/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantQuarantine := filepath.Join(tempHome, ".local", "share", "snapmend", "quarantine")
	if cfg.Paths.QuarantineDir != wantQuarantine {
		t.Fatalf("unexpected quarantine dir: got %q want %q", cfg.Paths.QuarantineDir, wantQuarantine)
	}
	if cfg.ExifTool.Binary != "exiftool" {
		t.Fatalf("unexpected exiftool binary: %q", cfg.ExifTool.Binary)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := strings.Join([]string{
		"[paths]",
		`quarantine_dir = "` + filepath.Join(dir, "errors") + `"`,
		"[exiftool]",
		`binary = "exiftool-custom"`,
		"timeout_seconds = 15",
		"[logging]",
		`level = "debug"`,
		`format = "json"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Paths.QuarantineDir != filepath.Join(dir, "errors") {
		t.Fatalf("unexpected quarantine dir: %q", cfg.Paths.QuarantineDir)
	}
	if cfg.ExifTool.Binary != "exiftool-custom" || cfg.ExifTool.TimeoutSeconds != 15 {
		t.Fatalf("unexpected exiftool config: %+v", cfg.ExifTool)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for unsupported log level")
	}
}

func TestNormalizeFillsEmptyExiftoolValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[exiftool]\nbinary = \"  \"\ntimeout_seconds = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ExifTool.Binary != "exiftool" || cfg.ExifTool.TimeoutSeconds != 60 {
		t.Fatalf("unexpected exiftool normalization: %+v", cfg.ExifTool)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.QuarantineDir = filepath.Join(dir, "quarantine")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, d := range []string{cfg.Paths.QuarantineDir, cfg.Paths.LogDir} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", d, err)
		}
	}
}

func TestCreateSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "quarantine_dir") {
		t.Fatal("sample config missing quarantine_dir")
	}
}
