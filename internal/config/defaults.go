package config

import "runtime"

const (
	defaultOutputDir           = "~/transcripts"
	defaultLogDir              = "~/.local/share/chorus/logs"
	defaultLogLevel            = "info"
	defaultLogFormat           = "auto"
	defaultTargetWordsPerChunk = 500
	defaultFanoutFactor        = 4
	defaultMaxLineLength       = 42
	defaultMaxWordsPerEntry    = 10
	defaultGapThresholdSeconds = 1.0
	defaultCachePath           = "~/.cache/chorus/aligncache.db"
)

// defaultMaxWorkers keeps one core free for the rest of the system.
func defaultMaxWorkers() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		OutputDir: defaultOutputDir,
		LogDir:    defaultLogDir,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Align: Align{
			MaxWorkers:          defaultMaxWorkers(),
			TargetWordsPerChunk: defaultTargetWordsPerChunk,
			FanoutFactor:        defaultFanoutFactor,
		},
		Subtitle: Subtitle{
			MaxLineLength:       defaultMaxLineLength,
			MaxWordsPerEntry:    defaultMaxWordsPerEntry,
			GapThresholdSeconds: defaultGapThresholdSeconds,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath,
		},
	}
}
