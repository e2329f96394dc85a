package segment

import (
	"strings"
	"unicode/utf8"
)

// wrapText packs words greedily into lines of at most maxLineLength
// characters, counted as runes so non-ASCII text wraps at the same width as
// ASCII. A single word longer than the limit is emitted on its own line
// rather than split.
func wrapText(text string, maxLineLength int) []string {
	if maxLineLength <= 0 || utf8.RuneCountInString(text) <= maxLineLength {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	currentLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case currentLen == 0:
			current.WriteString(word)
			currentLen = wordLen
		case currentLen+1+wordLen <= maxLineLength:
			current.WriteString(" ")
			current.WriteString(word)
			currentLen += 1 + wordLen
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentLen = wordLen
		}
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
