package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config is the root configuration for chorus.
type Config struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	Align    Align    `toml:"align"`
	Subtitle Subtitle `toml:"subtitle"`
	Cache    Cache    `toml:"cache"`
}

// Align tunes the parallel word/speaker alignment.
type Align struct {
	MaxWorkers          int `toml:"max_workers"`
	TargetWordsPerChunk int `toml:"target_words_per_chunk"`
	FanoutFactor        int `toml:"fanout_factor"`
}

// Subtitle tunes phrase segmentation and SRT rendering.
type Subtitle struct {
	MaxLineLength       int     `toml:"max_line_length"`
	MaxWordsPerEntry    int     `toml:"max_words_per_entry"`
	GapThresholdSeconds float64 `toml:"gap_threshold_seconds"`
}

// Cache configures the aligned-transcript cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// DefaultConfigPath returns the standard location of the user config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "chorus", "config.toml"), nil
}

// Load reads configuration from path, or from the default location when path
// is empty. A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved := strings.TrimSpace(path)
	explicit := resolved != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		resolved = defaultPath
	}

	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No user config; defaults apply.
	default:
		return nil, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// EnsureDirectories creates the directories the pipeline writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.OutputDir, c.LogDir}
	if c.Cache.Enabled && c.Cache.Path != "" {
		dirs = append(dirs, filepath.Dir(c.Cache.Path))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
