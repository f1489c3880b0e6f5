package extract

import (
	"regexp"
	"strconv"

	"github.com/coolbeans/qbank/pkg/question"
)

// Mark annotation patterns, ordered from explicit annotation to bare
// trailing number. The first pattern that matches wins, so the order
// encodes a confidence ranking.
var (
	bracketedMarkPattern     = regexp.MustCompile(`(?i)\[(\d+)\s*(?:mark|marks|m)\]`)
	parenthesizedMarkPattern = regexp.MustCompile(`(?i)\((\d+)\s*(?:mark|marks|m)\)`)
	trailingMarkPattern      = regexp.MustCompile(`(?i)(\d+)\s*(?:mark|marks)\s*$`)
	bareBracketPattern       = regexp.MustCompile(`\[(\d+)\]`)
	markLabelPattern         = regexp.MustCompile(`(?i)Marks\s*(\d+)`)
)

var lineMarkPatterns = []*regexp.Regexp{
	bracketedMarkPattern,
	parenthesizedMarkPattern,
	trailingMarkPattern,
	bareBracketPattern,
}

var blockMarkPatterns = []*regexp.Regexp{
	bracketedMarkPattern,
	parenthesizedMarkPattern,
	trailingMarkPattern,
	bareBracketPattern,
	markLabelPattern,
}

// ExtractMarks returns the mark value inferred from a text span, trying
// the annotation patterns in confidence order. It reports false when no
// pattern matches.
func ExtractMarks(text string) (int, bool) {
	return extractMarks(text, lineMarkPatterns)
}

// ExtractMarksLabeled is ExtractMarks extended with the "Marks <n>" label
// form that appears inside chapter-bank paragraph blocks. Only the
// structured block extractor uses it; on single lines the label form
// would shadow genuine numbering.
func ExtractMarksLabeled(text string) (int, bool) {
	return extractMarks(text, blockMarkPatterns)
}

func extractMarks(text string, patterns []*regexp.Regexp) (int, bool) {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			value, err := strconv.Atoi(m[1])
			if err != nil || value < 1 {
				continue
			}
			return value, true
		}
	}
	return 0, false
}

// DefaultMarks returns the mark value assumed when a question carries no
// annotation: 1 for multiple choice, 2 otherwise.
func DefaultMarks(questionType question.Type) int {
	if questionType == question.TypeMCQ {
		return 1
	}
	return 2
}
