// Package question defines the normalized question record produced by the
// extraction engine, along with deduplication and tally helpers.
package question

import (
	"strings"
)

// Type represents the pedagogical type of a question.
type Type string

const (
	TypeMCQ             Type = "mcq"
	TypeTrueFalse       Type = "true_false"
	TypeAssertionReason Type = "assertion_reason"
	TypeFillBlank       Type = "fill_blank"
	TypeMatching        Type = "matching"
	TypeShortAnswer     Type = "short_answer"
	TypeLongAnswer      Type = "long_answer"
)

// MixedChapter is the chapter label for records extracted from full
// question papers, where no single chapter applies.
const MixedChapter = "Mixed"

// Record is one extracted question. Options and CorrectAnswer are omitted
// from the JSON artifact when absent; Source is omitted when empty
// (chapter-bank records parsed by the line strategy carry no source).
type Record struct {
	QuestionText  string   `json:"questionText"`
	Type          Type     `json:"type"`
	Marks         int      `json:"marks"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Chapter       string   `json:"chapter"`
	Source        string   `json:"source,omitempty"`
}

// fingerprintLength is the number of leading characters of the question
// text that identify a question for deduplication.
const fingerprintLength = 100

// Fingerprint returns the deduplication key for the record: the first 100
// characters of the question text, lowercased and edge-trimmed. Two records
// sharing a fingerprint are considered the same question.
func (r *Record) Fingerprint() string {
	runes := []rune(r.QuestionText)
	if len(runes) > fingerprintLength {
		runes = runes[:fingerprintLength]
	}
	return strings.TrimSpace(strings.ToLower(string(runes)))
}

// Dedupe folds records into a unique sequence keyed by fingerprint. The
// first record encountered for a fingerprint is retained; later ones are
// dropped silently. Input order is preserved.
func Dedupe(records []Record) []Record {
	seen := make(map[string]bool, len(records))
	unique := make([]Record, 0, len(records))
	for _, record := range records {
		fingerprint := record.Fingerprint()
		if seen[fingerprint] {
			continue
		}
		seen[fingerprint] = true
		unique = append(unique, record)
	}
	return unique
}

// CountByType tallies records per question type.
func CountByType(records []Record) map[Type]int {
	counts := make(map[Type]int)
	for _, record := range records {
		counts[record.Type]++
	}
	return counts
}

// CountBySource tallies records per origin. Records without a source
// (chapter-bank line parses) are counted under their chapter label.
func CountBySource(records []Record) map[string]int {
	counts := make(map[string]int)
	for _, record := range records {
		origin := record.Source
		if origin == "" {
			origin = record.Chapter
		}
		counts[origin]++
	}
	return counts
}
