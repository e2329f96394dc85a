package segment

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chorus/internal/transcript"
)

// WriteTranscript renders words as a plain dialogue transcript: one line per
// contiguous same-speaker run, formatted "[SPEAKER]: <text>". The UNKNOWN
// sentinel is an ordinary label and opens and closes paragraphs like any
// other speaker. Words with empty text are skipped. Returns the number of
// paragraphs written.
func WriteTranscript(w io.Writer, words []transcript.AlignedWord) (int, error) {
	out := bufio.NewWriter(w)
	paragraphs := 0

	var currentSpeaker string
	var buffer strings.Builder
	open := false

	flush := func() error {
		if !open || buffer.Len() == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(out, "[%s]: %s\n", currentSpeaker, strings.TrimSpace(buffer.String())); err != nil {
			return fmt.Errorf("write paragraph: %w", err)
		}
		paragraphs++
		return nil
	}

	for _, word := range words {
		if word.Text == "" {
			continue
		}
		if !open || word.Speaker != currentSpeaker {
			if err := flush(); err != nil {
				return paragraphs, err
			}
			currentSpeaker = word.Speaker
			buffer.Reset()
			buffer.WriteString(word.Text)
			open = true
			continue
		}
		buffer.WriteString(" ")
		buffer.WriteString(word.Text)
	}
	if err := flush(); err != nil {
		return paragraphs, err
	}
	if err := out.Flush(); err != nil {
		return paragraphs, fmt.Errorf("flush transcript: %w", err)
	}
	return paragraphs, nil
}
