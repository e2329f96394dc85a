package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"chorus/internal/pipeline"
)

func TestRenderSpeakerSummary(t *testing.T) {
	result := &pipeline.Result{
		Speakers: []pipeline.SpeakerStat{
			{Speaker: "SPEAKER_00", Words: 120, Seconds: 45.2},
			{Speaker: "SPEAKER_01", Words: 80, Seconds: 30.1},
		},
	}

	summary := renderSpeakerSummary(result)
	if summary == "" {
		t.Fatal("expected rendered summary")
	}
	for _, want := range []string{"SPEAKER_00", "SPEAKER_01", "120", "80", "Speech Time"} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to contain %q, got:\n%s", want, summary)
		}
	}
}

func TestRenderSpeakerSummaryEmpty(t *testing.T) {
	if got := renderSpeakerSummary(nil); got != "" {
		t.Fatalf("expected empty summary for nil result, got %q", got)
	}
	if got := renderSpeakerSummary(&pipeline.Result{}); got != "" {
		t.Fatalf("expected empty summary for no speakers, got %q", got)
	}
}

func TestLoadConfigMissingExplicitFileIsConfigurationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	_, err := loadConfig(&path)
	if err == nil {
		t.Fatal("expected error for missing explicit config file, got nil")
	}
	if !errors.Is(err, pipeline.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestAlignCommandRejectsConflictingArtifactFlags(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"align", "words.json", "--turns", "turns.rttm", "--txt-only", "--srt-only"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for conflicting flags, got nil")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected mutual-exclusion error, got %v", err)
	}
}
