// Command chorus merges word-level transcription timestamps with diarization
// speaker turns and renders a dialogue transcript plus an SRT subtitle file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chorus: %v\n", err)
		os.Exit(1)
	}
}
