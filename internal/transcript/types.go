package transcript

// UnknownSpeaker labels words whose midpoint falls outside every speaker turn.
const UnknownSpeaker = "UNKNOWN"

// Word is a single transcribed word with timing supplied by the
// transcription producer. Text may be empty or whitespace as delivered;
// the aligner discards such words.
type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Index int     `json:"index"`
}

// SpeakerTurn is a diarization interval attributing audio to one speaker.
// Turns arrive unordered and may overlap or leave gaps.
type SpeakerTurn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

// AlignedWord is a Word with its assigned speaker label.
type AlignedWord struct {
	Word
	Speaker string `json:"speaker"`
}
