// Package testsupport provides shared helpers for package tests: temp-dir
// seeded configs, media and sidecar fixtures, and stubbed exiftool binaries.
package testsupport

import (
	"path/filepath"
	"testing"

	"snapmend/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.QuarantineDir = filepath.Join(base, "quarantine")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.ExifTool.TimeoutSeconds = 10

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
