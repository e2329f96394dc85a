// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"chorus/internal/config"
)

// NewConfig returns a validated Config rooted in a per-test temp directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(base, "out")
	cfg.LogDir = filepath.Join(base, "logs")
	cfg.Cache.Path = filepath.Join(base, "cache", "aligncache.db")
	cfg.Align.MaxWorkers = 2
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WriteFile writes content under dir and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
