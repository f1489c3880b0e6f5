package extract

import (
	"regexp"
	"strings"

	"github.com/coolbeans/qbank/pkg/question"
)

// The structured strategy works on whole-document text at once: chapter
// banks often place the answer and the option run inline within a single
// paragraph, so line breaks cannot be relied on to separate them.

var (
	// blockBoundaryPattern marks the start of a question block; text
	// between consecutive markers is one candidate block.
	blockBoundaryPattern = regexp.MustCompile(`(?i)(?:Q\.?\s*)?(\d+)[.\)]`)

	// answerMarkerPattern finds an explicit answer marker inside a block.
	answerMarkerPattern = regexp.MustCompile(`(?i)(?:Ans(?:wer)?|Correct\s*Answer)[:\s]+`)

	// nextNumberingPattern bounds an inline answer: everything from the
	// answer marker up to the next numbering marker belongs to the answer.
	nextNumberingPattern = regexp.MustCompile(`(?i)\s*(?:Q\.?\s*)?\d+[.\)]`)

	// inlineOptionMarkerPattern finds lettered-option markers embedded in
	// block text, in the same bracket styles as the line detector.
	inlineOptionMarkerPattern = regexp.MustCompile(`[(\[]?([a-dA-D])[)\].\s]+`)

	// firstOptionMarkerPattern locates where the option run begins so the
	// question text can be truncated before it.
	firstOptionMarkerPattern = regexp.MustCompile(`[(\[]?[a-dA-D][)\].\s]`)
)

// ParseStructured segments whole chapter-bank text into question blocks
// and recovers embedded answers and options. Blocks shorter than the
// minimum length, before or after truncation, are discarded.
func ParseStructured(text, chapter string) []question.Record {
	source := "Chapter Bank - " + chapter

	var records []question.Record
	markers := blockBoundaryPattern.FindAllStringIndex(text, -1)
	for i, marker := range markers {
		start := marker[1]
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		content := CleanLine(text[start:end])
		if len([]rune(content)) < minBodyLength {
			continue
		}

		var answer string
		if loc := answerMarkerPattern.FindStringIndex(content); loc != nil {
			region := content[loc[1]:]
			if next := nextNumberingPattern.FindStringIndex(region); next != nil {
				region = region[:next[0]]
			}
			answer = CleanLine(region)
			content = strings.TrimSpace(content[:loc[0]])
		}

		options := collectInlineOptions(content)
		if len(options) > 0 {
			if loc := firstOptionMarkerPattern.FindStringIndex(content); loc != nil {
				content = strings.TrimSpace(content[:loc[0]])
			}
		}

		questionType := ClassifyTypeLabeled(content, options)
		marks, ok := ExtractMarksLabeled(content)
		if !ok {
			marks = DefaultMarks(questionType)
		}

		content = strings.TrimSpace(trailingMarksWordPattern.ReplaceAllString(content, ""))
		content = strings.TrimSpace(trailingAnnotationPattern.ReplaceAllString(content, ""))
		if len([]rune(content)) <= minBodyLength {
			continue
		}

		if len(options) < 2 {
			options = nil
		}
		records = append(records, question.Record{
			QuestionText:  content,
			Type:          questionType,
			Marks:         marks,
			Options:       options,
			CorrectAnswer: answer,
			Chapter:       chapter,
			Source:        source,
		})
	}

	return records
}

// collectInlineOptions scans block text for an embedded option run. An
// option's text spans from its marker to the next marker (or end of
// block) and must stay free of further letter/bracket characters;
// anything else is treated as prose that merely contains a stray
// letter-punctuation pair.
func collectInlineOptions(content string) []string {
	markers := inlineOptionMarkerPattern.FindAllStringSubmatchIndex(content, -1)

	var options []string
	for i, marker := range markers {
		end := len(content)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		body := content[marker[1]:end]
		if body == "" || strings.ContainsAny(body, "([abcdABCD") {
			continue
		}

		letter := strings.ToUpper(content[marker[2]:marker[3]])
		options = append(options, letter+") "+CleanLine(body))
	}
	return options
}
