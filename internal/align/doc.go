// Package align assigns a speaker label to each transcribed word by locating
// the word's temporal midpoint in a sorted table of diarization turns.
//
// Assignment is an ordered parallel map: the word list is partitioned into
// contiguous chunks distributed across a bounded worker pool, and results are
// written back to their original positions, so parallelism is never
// observable in the output.
//
// When several turns contain a word's midpoint, the turn with the greatest
// start time wins. That tie-break falls out of the rightmost-start binary
// search and is kept as a deliberate policy for overlapping diarization
// output; callers relying on overlap resolution should not expect
// earliest-turn semantics.
package align
