package align

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"chorus/internal/logging"
	"chorus/internal/transcript"
)

// Config tunes worker-pool sizing for parallel alignment.
type Config struct {
	// MaxWorkers caps the number of concurrent alignment workers.
	MaxWorkers int
	// TargetWordsPerChunk drives the worker-count heuristic: small inputs
	// spin up fewer workers than MaxWorkers allows.
	TargetWordsPerChunk int
	// FanoutFactor is the number of chunks dispatched per worker. More
	// chunks per worker smooths load imbalance at the cost of per-task
	// overhead.
	FanoutFactor int
}

// Aligner assigns speaker labels to transcribed words.
type Aligner struct {
	cfg    Config
	logger *slog.Logger
}

// New returns an Aligner. A nil logger disables logging.
func New(cfg Config, logger *slog.Logger) *Aligner {
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = 1
	}
	if cfg.TargetWordsPerChunk < 1 {
		cfg.TargetWordsPerChunk = 1
	}
	if cfg.FanoutFactor < 1 {
		cfg.FanoutFactor = 4
	}
	return &Aligner{cfg: cfg, logger: logging.NewComponentLogger(logger, "align")}
}

// Align assigns a speaker to every word with non-empty trimmed text and
// returns the aligned words in input order. Words with whitespace-only text
// are dropped; no other filtering happens here. An empty turn set is legal
// and resolves every word to the UNKNOWN sentinel. The call blocks until all
// chunks complete; any worker failure fails the whole operation, so an error
// is never a stand-in for "nothing to align".
func (a *Aligner) Align(ctx context.Context, words []transcript.Word, turns []transcript.SpeakerTurn) ([]transcript.AlignedWord, error) {
	filtered := make([]transcript.Word, 0, len(words))
	for _, w := range words {
		w.Text = strings.TrimSpace(w.Text)
		if w.Text == "" {
			continue
		}
		filtered = append(filtered, w)
	}
	if len(filtered) == 0 {
		a.logger.Warn("no words to align")
		return []transcript.AlignedWord{}, nil
	}

	if len(turns) == 0 {
		a.logger.Warn("no speaker turns provided, every word resolves to UNKNOWN",
			logging.String(logging.FieldEventType, "empty_turn_set"),
			logging.Int("words", len(filtered)),
		)
	}

	table := sortedTurns(turns)
	workers := workerCount(len(filtered), a.cfg.MaxWorkers, a.cfg.TargetWordsPerChunk)
	chunk := chunkSize(len(filtered), workers, a.cfg.FanoutFactor)

	a.logger.Debug("aligning words",
		logging.Int("words", len(filtered)),
		logging.Int("turns", len(table)),
		logging.Int("workers", workers),
		logging.Int("chunk_size", chunk),
	)

	aligned, err := mapOrdered(ctx, filtered, workers, chunk,
		func(in []transcript.Word, out []transcript.AlignedWord) error {
			for i, w := range in {
				out[i] = transcript.AlignedWord{Word: w, Speaker: table.speakerAt(wordMidpoint(w))}
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("align words: %w", err)
	}
	return aligned, nil
}

func wordMidpoint(w transcript.Word) float64 {
	return w.Start + (w.End-w.Start)/2
}

// turnTable is a read-only speaker turn list sorted ascending by start time.
// It is shared across alignment workers without locking.
type turnTable []transcript.SpeakerTurn

// sortedTurns copies turns so the caller's slice keeps its ordering. The
// stable sort preserves input order among turns with equal start times, which
// the tie-break below depends on.
func sortedTurns(turns []transcript.SpeakerTurn) turnTable {
	table := make(turnTable, len(turns))
	copy(table, turns)
	sort.SliceStable(table, func(i, j int) bool { return table[i].Start < table[j].Start })
	return table
}

// speakerAt resolves the speaker whose turn contains the midpoint m. The
// binary search picks the rightmost turn starting at or before m, so among
// overlapping turns that all contain m, the greatest start wins. When that
// candidate has already ended by m, the immediately following turn is tried
// to cover a midpoint that falls in a gap just before it begins.
func (t turnTable) speakerAt(m float64) string {
	candidate := sort.Search(len(t), func(i int) bool { return t[i].Start > m }) - 1
	if candidate >= 0 && t[candidate].Start <= m && m < t[candidate].End {
		return t[candidate].Speaker
	}
	if next := candidate + 1; next < len(t) && t[next].Start <= m && m < t[next].End {
		return t[next].Speaker
	}
	return transcript.UnknownSpeaker
}
