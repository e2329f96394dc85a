// Package segment renders an aligned word stream into output artifacts: a
// per-speaker paragraph transcript and a phrase-grouped SRT subtitle file.
//
// Both writers are single-pass streaming consumers holding only the state of
// the currently open paragraph or phrase. They must not be invoked
// concurrently on the same stream.
package segment
