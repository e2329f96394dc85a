// Package aligncache persists aligned word streams in SQLite so repeated
// runs over identical inputs skip the alignment pass.
//
// Entries are keyed by a SHA-256 fingerprint covering both input files, so
// any change to the transcription or diarization output misses the cache.
// The database is a disposable cache, not an archive: schema changes bump
// schemaVersion and a mismatched database is an error the caller resolves by
// deleting the file.
package aligncache
