// Package pipeline orchestrates one merge run: load words and speaker turns,
// align them (or reuse a cached alignment), and write the transcript and
// subtitle artifacts under an output-directory lock.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"chorus/internal/align"
	"chorus/internal/aligncache"
	"chorus/internal/config"
	"chorus/internal/logging"
	"chorus/internal/segment"
	"chorus/internal/transcript"
)

// lockFileName guards an output directory against interleaved concurrent runs.
const lockFileName = ".chorus.lock"

// Request describes one merge run.
type Request struct {
	// WordsPath is the transcription word JSON file.
	WordsPath string
	// TurnsPath is the diarization output (.rttm or .json).
	TurnsPath string
	// OutputDir overrides the configured output directory when set.
	OutputDir string
	// BaseName names the artifacts; derived from WordsPath when empty.
	BaseName string
	// WriteTranscript and WriteSubtitles select the artifacts; both default
	// to true when neither is set by the caller.
	WriteTranscript bool
	WriteSubtitles  bool
	// DisableCache skips cache lookup and store for this run.
	DisableCache bool
}

// SpeakerStat summarizes one speaker's share of the aligned stream.
type SpeakerStat struct {
	Speaker string
	Words   int
	Seconds float64
}

// Result reports what a run produced.
type Result struct {
	RunID          string
	TranscriptPath string
	SubtitlePath   string
	WordCount      int
	ParagraphCount int
	EntryCount     int
	CacheHit       bool
	Speakers       []SpeakerStat
	Elapsed        time.Duration
}

// Runner executes merge runs against a fixed configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner returns a Runner. A nil logger disables logging.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logging.NewComponentLogger(logger, "pipeline")}
}

// Run performs one merge run and blocks until its artifacts are written.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()

	if strings.TrimSpace(req.WordsPath) == "" {
		return nil, Wrap(ErrValidation, "pipeline", "words path is required", nil)
	}
	if strings.TrimSpace(req.TurnsPath) == "" {
		return nil, Wrap(ErrValidation, "pipeline", "turns path is required", nil)
	}
	if !req.WriteTranscript && !req.WriteSubtitles {
		req.WriteTranscript = true
		req.WriteSubtitles = true
	}
	for _, input := range []struct{ label, path string }{
		{"words", req.WordsPath},
		{"turns", req.TurnsPath},
	} {
		if _, err := os.Stat(input.path); err != nil {
			return nil, Wrap(ErrNotFound, "pipeline", input.label+" file "+input.path, err)
		}
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = r.cfg.OutputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, Wrap(nil, "pipeline", "create output directory", err)
	}

	baseName := req.BaseName
	if baseName == "" {
		name := filepath.Base(req.WordsPath)
		baseName = strings.TrimSuffix(name, filepath.Ext(name))
	}

	runID := uuid.NewString()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))

	// Serialize runs that target the same directory so artifacts never
	// interleave.
	lock := flock.New(filepath.Join(outputDir, lockFileName))
	if err := lock.Lock(); err != nil {
		return nil, Wrap(nil, "pipeline", "lock output directory", err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release output lock", logging.Error(err))
		}
	}()

	words, err := transcript.LoadWords(req.WordsPath)
	if err != nil {
		return nil, Wrap(ErrExternalInput, "pipeline", "load words", err)
	}
	turns, err := transcript.LoadTurns(req.TurnsPath)
	if err != nil {
		return nil, Wrap(ErrExternalInput, "pipeline", "load turns", err)
	}
	logger.Info("inputs loaded",
		logging.Int("words", len(words)),
		logging.Int("turns", len(turns)),
	)

	aligned, cacheHit, err := r.alignWithCache(ctx, logger, req, words, turns)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     runID,
		WordCount: len(aligned),
		CacheHit:  cacheHit,
		Speakers:  speakerStats(aligned),
	}

	if req.WriteTranscript {
		path := filepath.Join(outputDir, baseName+".txt")
		count, err := writeArtifact(path, func(f *os.File) (int, error) {
			return segment.WriteTranscript(f, aligned)
		})
		if err != nil {
			return nil, Wrap(nil, "pipeline", "write transcript", err)
		}
		result.TranscriptPath = path
		result.ParagraphCount = count
	}

	if req.WriteSubtitles {
		path := filepath.Join(outputDir, baseName+".srt")
		opts := segment.Options{
			MaxLineLength:    r.cfg.Subtitle.MaxLineLength,
			MaxWordsPerEntry: r.cfg.Subtitle.MaxWordsPerEntry,
			GapThreshold:     r.cfg.Subtitle.GapThresholdSeconds,
		}
		logger.Debug("segmenting subtitles",
			logging.Int("max_words_per_entry", opts.MaxWordsPerEntry),
			logging.Float64("gap_threshold_seconds", opts.GapThreshold),
		)
		count, err := writeArtifact(path, func(f *os.File) (int, error) {
			return segment.WriteSubtitles(f, aligned, opts)
		})
		if err != nil {
			return nil, Wrap(nil, "pipeline", "write subtitles", err)
		}
		result.SubtitlePath = path
		result.EntryCount = count
	}

	result.Elapsed = time.Since(started)
	logger.Info("run complete",
		logging.Int("words", result.WordCount),
		logging.Int("paragraphs", result.ParagraphCount),
		logging.Int("entries", result.EntryCount),
		logging.Bool("cache_hit", result.CacheHit),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// alignWithCache returns the aligned stream, consulting the cache when
// enabled. Cache trouble is never fatal; the run falls back to alignment.
func (r *Runner) alignWithCache(ctx context.Context, logger *slog.Logger, req Request, words []transcript.Word, turns []transcript.SpeakerTurn) ([]transcript.AlignedWord, bool, error) {
	useCache := r.cfg.Cache.Enabled && !req.DisableCache

	var store *aligncache.Store
	var fingerprint string
	if useCache {
		var err error
		fingerprint, err = aligncache.Fingerprint(req.WordsPath, req.TurnsPath)
		if err == nil {
			store, err = aligncache.Open(r.cfg.Cache.Path)
		}
		if err != nil {
			logger.Warn("alignment cache unavailable",
				logging.String(logging.FieldEventType, "cache_unavailable"),
				logging.Error(err),
			)
			store = nil
		}
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("close alignment cache", logging.Error(err))
			}
		}()
		cached, ok, err := store.Lookup(ctx, fingerprint)
		if err != nil {
			logger.Warn("alignment cache lookup failed", logging.Error(err))
		} else if ok {
			logger.Info("alignment cache hit", logging.Int("words", len(cached)))
			return cached, true, nil
		}
	}

	aligner := align.New(align.Config{
		MaxWorkers:          r.cfg.Align.MaxWorkers,
		TargetWordsPerChunk: r.cfg.Align.TargetWordsPerChunk,
		FanoutFactor:        r.cfg.Align.FanoutFactor,
	}, logger)

	aligned, err := aligner.Align(ctx, words, turns)
	if err != nil {
		return nil, false, Wrap(nil, "pipeline", "align", err)
	}

	if store != nil {
		if err := store.Put(ctx, fingerprint, aligned); err != nil {
			logger.Warn("alignment cache store failed", logging.Error(err))
		}
	}
	return aligned, false, nil
}

// writeArtifact writes one output file through fn, cleaning up on failure.
func writeArtifact(path string, fn func(*os.File) (int, error)) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	count, err := fn(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return count, nil
}

// speakerStats aggregates word counts and speech time per speaker, ordered
// by first appearance in the stream.
func speakerStats(words []transcript.AlignedWord) []SpeakerStat {
	index := make(map[string]int)
	var stats []SpeakerStat
	for _, w := range words {
		i, ok := index[w.Speaker]
		if !ok {
			i = len(stats)
			index[w.Speaker] = i
			stats = append(stats, SpeakerStat{Speaker: w.Speaker})
		}
		stats[i].Words++
		if d := w.End - w.Start; d > 0 {
			stats[i].Seconds += d
		}
	}
	return stats
}
