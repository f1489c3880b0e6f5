// Package extract converts loosely structured exam-document text into
// normalized question records. It is deliberately heuristic: tuned for
// numbered, option-lettered exam layouts, preferring to drop a
// low-confidence fragment over fabricating structure.
package extract

import (
	"regexp"
	"strings"
)

var (
	// pageSlashPattern matches pagination strings like "Page: 3/12".
	pageSlashPattern = regexp.MustCompile(`Page:\s*\d+/\d+`)

	// pageOfPattern matches pagination strings like "Page 3 of 12".
	pageOfPattern = regexp.MustCompile(`Page\s+\d+\s+of\s+\d+`)
)

// CleanLine strips pagination artifacts from a single line and collapses
// all whitespace runs to single spaces. Cleaning an already-clean line
// returns it unchanged.
func CleanLine(text string) string {
	text = pageSlashPattern.ReplaceAllString(text, " ")
	text = pageOfPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// SplitLines prepares full document text for line-based segmentation:
// page markers become line breaks (they often glue two paragraphs
// together in extracted text), then each line is cleaned and empty lines
// are dropped.
func SplitLines(text string) []string {
	text = pageSlashPattern.ReplaceAllString(text, "\n")
	text = pageOfPattern.ReplaceAllString(text, "\n")

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := CleanLine(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
