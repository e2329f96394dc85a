package aligncache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chorus/internal/transcript"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache", "aligncache.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	words := []transcript.AlignedWord{
		{Word: transcript.Word{Start: 0, End: 1, Text: "Hello", Index: 0}, Speaker: "SPK1"},
		{Word: transcript.Word{Start: 1.1, End: 2, Text: "world", Index: 1}, Speaker: "SPK2"},
	}

	if err := store.Put(ctx, "fp-1", words); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	got, ok, err := store.Lookup(ctx, "fp-1")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 || got[0] != words[0] || got[1] != words[1] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLookupMissIsNotError(t *testing.T) {
	store := openStore(t)

	_, ok, err := store.Lookup(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if ok {
		t.Fatal("expected miss for absent fingerprint")
	}
}

func TestPutReplacesExistingEntry(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first := []transcript.AlignedWord{{Word: transcript.Word{Text: "old"}, Speaker: "SPK1"}}
	second := []transcript.AlignedWord{{Word: transcript.Word{Text: "new"}, Speaker: "SPK2"}}

	if err := store.Put(ctx, "fp", first); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := store.Put(ctx, "fp", second); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	got, ok, err := store.Lookup(ctx, "fp")
	if err != nil || !ok {
		t.Fatalf("Lookup after replace: ok=%v err=%v", ok, err)
	}
	if got[0].Text != "new" {
		t.Fatalf("expected replaced payload, got %+v", got)
	}
}

func TestFingerprintTracksInputContent(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.json")
	turns := filepath.Join(dir, "turns.json")
	for path, content := range map[string]string{words: "w1", turns: "t1"} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	before, err := Fingerprint(words, turns)
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	same, err := Fingerprint(words, turns)
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	if before != same {
		t.Fatal("expected stable fingerprint for unchanged inputs")
	}

	if err := os.WriteFile(turns, []byte("t2"), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	after, err := Fingerprint(words, turns)
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	if before == after {
		t.Fatal("expected fingerprint to change with input content")
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aligncache.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected schema mismatch error, got nil")
	}
}
