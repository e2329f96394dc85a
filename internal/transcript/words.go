package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type payloadWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type payloadSegment struct {
	Text  string        `json:"text"`
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Words []payloadWord `json:"words"`
}

type wordPayload struct {
	Segments []payloadSegment `json:"segments"`
	Words    []payloadWord    `json:"words"`
}

// LoadWords reads word-level transcription output from path. Both the
// segment-nested layout produced by WhisperX and faster-whisper
// (segments[].words[]) and a flat words[] array are accepted. Word text is
// NFC-normalized; empty or whitespace-only words are kept as delivered so
// the aligner owns that filtering. Indices are assigned in file order.
func LoadWords(path string) ([]Word, error) {
	if strings.TrimSpace(path) == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}
	var payload wordPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse words json: %w", err)
	}

	var raw []payloadWord
	for _, segment := range payload.Segments {
		raw = append(raw, segment.Words...)
	}
	raw = append(raw, payload.Words...)

	words := make([]Word, 0, len(raw))
	for i, w := range raw {
		words = append(words, Word{
			Start: w.Start,
			End:   w.End,
			Text:  norm.NFC.String(w.Word),
			Index: i,
		})
	}
	return words, nil
}
