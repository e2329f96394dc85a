package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.OutputDir, err = expandPath(c.OutputDir); err != nil {
		return fmt.Errorf("output_dir: %w", err)
	}
	if c.LogDir, err = expandPath(c.LogDir); err != nil {
		return fmt.Errorf("log_dir: %w", err)
	}

	c.LogLevel = strings.TrimSpace(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.LogFormat = strings.TrimSpace(c.LogFormat)
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}

	if c.Align.FanoutFactor == 0 {
		c.Align.FanoutFactor = defaultFanoutFactor
	}

	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Clean(trimmed), nil
}
