package extract

import (
	"strings"

	"github.com/coolbeans/qbank/pkg/question"
)

// ClassifyType infers a question's type from its text and collected
// options. The rules fire in precedence order: option presence dominates
// every keyword heuristic, since a genuine MCQ stem can contain an
// incidental keyword like "true or false".
func ClassifyType(text string, options []string) question.Type {
	return classifyType(text, options, ExtractMarks)
}

// ClassifyTypeLabeled is ClassifyType with the labeled mark extractor,
// so the structured block path resolves the long/short tier from the
// same annotation it takes the mark value from.
func ClassifyTypeLabeled(text string, options []string) question.Type {
	return classifyType(text, options, ExtractMarksLabeled)
}

func classifyType(text string, options []string, marksFrom func(string) (int, bool)) question.Type {
	if len(options) >= 2 {
		return question.TypeMCQ
	}

	lower := strings.ToLower(text)

	if strings.Contains(lower, "true or false") || strings.Contains(lower, "true/false") {
		return question.TypeTrueFalse
	}
	if strings.Contains(lower, "assertion") && strings.Contains(lower, "reason") {
		return question.TypeAssertionReason
	}
	if strings.Contains(lower, "fill in") || strings.Contains(lower, "fill up") {
		return question.TypeFillBlank
	}
	if strings.Contains(lower, "match") && strings.Contains(lower, "column") {
		return question.TypeMatching
	}

	if marks, ok := marksFrom(text); ok {
		if marks >= 4 {
			return question.TypeLongAnswer
		}
		if marks >= 2 {
			return question.TypeShortAnswer
		}
	}

	return question.TypeShortAnswer
}
