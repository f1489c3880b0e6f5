package extract

import (
	"strings"
	"testing"

	"github.com/coolbeans/qbank/pkg/question"
)

// FuzzSegmentation runs every segmentation strategy over arbitrary text.
// Run with: go test -fuzz=FuzzSegmentation -fuzztime=30s ./pkg/extract/...
func FuzzSegmentation(f *testing.F) {
	seeds := []string{
		// Question-paper shape with options and annotations
		`Section A
1. Which of the following is a valid identifier? [1]
(a) 2value
(b) value_2
2. Explain the difference between a list and a tuple. [2]`,

		// Chapter-bank shape with inline answers
		`1. What is a nested dictionary in Python?
Ans: A dictionary stored as the value of another dictionary.
2. Write the output of print(2 ** 3).`,

		// Whole-paragraph block shape
		`1. Which operator performs floor division? (a) / (b) // Ans: b 2. Define type casting with one example Marks 2`,

		// Either/or alternatives
		`3. Write a note on packet switching.
OR
Write a note on circuit switching.`,

		// Headers and page furniture
		`CLASS XII
COMPUTER SCIENCE
Time Allowed: 3 hours
Maximum Marks: 70
Page: 1/12`,

		// Minimal and empty input
		"",
		"1.",
		"Q No 1",
		"OR",
		"Ans:",

		// Numbering edge cases
		"0. zero numbered line that is long enough to keep",
		"999. very high numbering on a line long enough to keep",
		"1)bracketless text directly after the numbering token",
		"4 Uppercase after a bare number also starts a question",

		// Annotation edge cases
		"5. Body text [0] with a zero annotation that must not count",
		"6. Body text with marks 3 and more text after the annotation",

		// Long line
		strings.Repeat("7. A very long question body that keeps going. ", 50),

		// Unicode content
		"8. Explain the output of print('नमस्ते') in Python 3 scripts",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	strategies := []Strategy{
		StrategyUniversal,
		StrategySimple,
		StrategyChapterLines,
	}
	validTypes := map[question.Type]bool{
		question.TypeMCQ:             true,
		question.TypeTrueFalse:       true,
		question.TypeAssertionReason: true,
		question.TypeFillBlank:       true,
		question.TypeMatching:        true,
		question.TypeShortAnswer:     true,
		question.TypeLongAnswer:      true,
	}

	f.Fuzz(func(t *testing.T, data string) {
		for _, strategy := range strategies {
			records := ParseText(data, strategy, "Fuzz Chapter", "Fuzz Source")
			checkRecords(t, string(strategy), records, validTypes)
		}
		records := ParseStructured(data, "Fuzz Chapter")
		checkRecords(t, string(StrategyStructured), records, validTypes)
	})
}

func checkRecords(t *testing.T, strategy string, records []question.Record, validTypes map[question.Type]bool) {
	t.Helper()
	for _, record := range records {
		if strings.TrimSpace(record.QuestionText) != record.QuestionText || record.QuestionText == "" {
			t.Errorf("%s: question text not trimmed: %q", strategy, record.QuestionText)
		}
		if record.Marks < 1 {
			t.Errorf("%s: record carries %d marks: %q", strategy, record.Marks, record.QuestionText)
		}
		if len(record.Options) == 1 {
			t.Errorf("%s: single-entry option set survived: %v", strategy, record.Options)
		}
		if len(record.Options) >= 2 && record.Type != question.TypeMCQ {
			t.Errorf("%s: options present but type is %s", strategy, record.Type)
		}
		if !validTypes[record.Type] {
			t.Errorf("%s: unknown question type %q", strategy, record.Type)
		}
		if record.Chapter != "Fuzz Chapter" {
			t.Errorf("%s: chapter not carried through: %q", strategy, record.Chapter)
		}
	}
}
