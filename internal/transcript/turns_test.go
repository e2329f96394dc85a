package transcript

import (
	"testing"
)

func TestLoadTurnsRTTM(t *testing.T) {
	path := writeFixture(t, "turns.rttm", `SPEAKER meeting 1 0.50 2.25 <NA> <NA> SPEAKER_00 <NA> <NA>
SPEAKER meeting 1 2.80 1.00 <NA> <NA> SPEAKER_01 <NA> <NA>
SPKR-INFO meeting 1 <NA> <NA> <NA> unknown SPEAKER_00 <NA> <NA>
SPEAKER meeting 1 bad 1.00 <NA> <NA> SPEAKER_01 <NA> <NA>
`)

	turns, err := LoadTurns(path)
	if err != nil {
		t.Fatalf("LoadTurns returned error: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns (non-SPEAKER and malformed lines skipped), got %d", len(turns))
	}
	first := turns[0]
	if first.Start != 0.5 || first.End != 2.75 || first.Speaker != "SPEAKER_00" {
		t.Fatalf("unexpected first turn: %+v", first)
	}
}

func TestLoadTurnsRTTMSkipsZeroDuration(t *testing.T) {
	path := writeFixture(t, "turns.rttm", `SPEAKER meeting 1 1.00 0.00 <NA> <NA> SPEAKER_00 <NA> <NA>
`)
	turns, err := LoadTurns(path)
	if err != nil {
		t.Fatalf("LoadTurns returned error: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected zero-duration turn skipped, got %+v", turns)
	}
}

func TestLoadTurnsJSON(t *testing.T) {
	path := writeFixture(t, "turns.json", `[
  {"start": 0.0, "end": 1.5, "speaker": "SPK1"},
  {"start": 1.5, "end": 2.5, "speaker": "SPK2"}
]`)

	turns, err := LoadTurns(path)
	if err != nil {
		t.Fatalf("LoadTurns returned error: %v", err)
	}
	if len(turns) != 2 || turns[1].Speaker != "SPK2" {
		t.Fatalf("unexpected turns: %+v", turns)
	}
}

func TestLoadTurnsMalformedJSON(t *testing.T) {
	path := writeFixture(t, "turns.json", `{"not": "an array"}`)
	if _, err := LoadTurns(path); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}
