// Package transcript defines the word and speaker-turn data model shared by
// the aligner and segmenter, plus loaders for the file formats the external
// producers emit: WhisperX-style word JSON for transcription and RTTM or
// JSON arrays for diarization turns.
package transcript
