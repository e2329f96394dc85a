package segment

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"chorus/internal/transcript"
)

// phrase accumulates a run of consecutive same-speaker words destined for a
// single subtitle entry. Exactly one phrase is open at any time.
type phrase struct {
	speaker   string
	start     float64
	end       float64
	wordCount int
	text      strings.Builder
}

// WriteSubtitles renders words as an SRT subtitle file. Break conditions are
// evaluated against the open phrase before each word is appended, in this
// precedence: speaker change, then temporal gap, then entry length cap. Any
// hit flushes the open phrase as a numbered entry and opens a new phrase with
// the current word; the final phrase is flushed at stream end. Malformed
// words are dropped before break evaluation and leave no trace in gap or
// length state. Returns the number of entries written.
func WriteSubtitles(w io.Writer, words []transcript.AlignedWord, opts Options) (int, error) {
	opts = opts.withDefaults()
	out := bufio.NewWriter(w)

	sequence := 0
	var open *phrase
	var prevEnd float64
	hasPrev := false

	flush := func() error {
		if open == nil {
			return nil
		}
		sequence++
		if err := writeEntry(out, sequence, open, opts.MaxLineLength); err != nil {
			return err
		}
		open = nil
		return nil
	}

	for _, word := range words {
		if !wordValid(word) {
			continue
		}

		if open != nil {
			speakerChange := word.Speaker != open.speaker
			longGap := hasPrev && word.Start-prevEnd > opts.GapThreshold
			tooLong := open.wordCount >= opts.MaxWordsPerEntry
			if speakerChange || longGap || tooLong {
				if err := flush(); err != nil {
					return sequence, err
				}
			}
		}

		if open == nil {
			open = &phrase{speaker: word.Speaker, start: word.Start, end: word.End, wordCount: 1}
			open.text.WriteString(word.Text)
		} else {
			open.text.WriteString(" ")
			open.text.WriteString(word.Text)
			open.end = word.End
			open.wordCount++
		}
		prevEnd = word.End
		hasPrev = true
	}

	if err := flush(); err != nil {
		return sequence, err
	}
	if err := out.Flush(); err != nil {
		return sequence, fmt.Errorf("flush subtitles: %w", err)
	}
	return sequence, nil
}

// wordValid reports whether a word carries everything an entry needs. Words
// failing here are excluded entirely: they never trigger breaks and never
// advance the gap clock.
func wordValid(w transcript.AlignedWord) bool {
	if w.Text == "" || w.Speaker == "" {
		return false
	}
	if math.IsNaN(w.Start) || math.IsNaN(w.End) || math.IsInf(w.Start, 0) || math.IsInf(w.End, 0) {
		return false
	}
	return w.Start <= w.End
}

func writeEntry(out *bufio.Writer, sequence int, p *phrase, maxLineLength int) error {
	if _, err := fmt.Fprintf(out, "%d\n%s --> %s\n", sequence, FormatTimestamp(p.start), FormatTimestamp(p.end)); err != nil {
		return fmt.Errorf("write entry header: %w", err)
	}
	tagged := fmt.Sprintf("[%s]: %s", p.speaker, strings.TrimSpace(p.text.String()))
	for _, line := range wrapText(tagged, maxLineLength) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write entry text: %w", err)
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("write entry separator: %w", err)
	}
	return nil
}
