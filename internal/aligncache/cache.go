package aligncache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"chorus/internal/transcript"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped on any schema change; a mismatched database must
// be deleted by the user.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages aligned-transcript persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Lookup returns the cached aligned words for fingerprint, or false when the
// entry is absent or unreadable.
func (s *Store) Lookup(ctx context.Context, fingerprint string) ([]transcript.AlignedWord, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM aligned_transcripts WHERE fingerprint = ?", fingerprint,
	).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("query cache: %w", err)
	}

	var words []transcript.AlignedWord
	if err := json.Unmarshal([]byte(payload), &words); err != nil {
		return nil, false, fmt.Errorf("decode cached payload: %w", err)
	}
	return words, true, nil
}

// Put stores the aligned words under fingerprint, replacing any previous entry.
func (s *Store) Put(ctx context.Context, fingerprint string, words []transcript.AlignedWord) error {
	payload, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO aligned_transcripts (fingerprint, created_at, word_count, payload)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(fingerprint) DO UPDATE SET
             created_at = excluded.created_at,
             word_count = excluded.word_count,
             payload = excluded.payload`,
		fingerprint,
		time.Now().UTC().Format(time.RFC3339Nano),
		len(words),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Fingerprint hashes the words and turns files into a cache key. Any byte
// change in either input produces a different key.
func Fingerprint(wordsPath, turnsPath string) (string, error) {
	hash := sha256.New()
	for _, path := range []string{wordsPath, turnsPath} {
		if err := hashFile(hash, path); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

func hashFile(dst io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}
	return nil
}
