package corpus

import (
	"github.com/coolbeans/qbank/pkg/chapters"
	"github.com/coolbeans/qbank/pkg/question"
)

// ApplyChapterHints replaces the Mixed chapter label on paper records
// with a chapter suggested by keyword overlap against the subject's
// catalog. Records already carrying a real chapter (bank records) are
// left alone, as are records the classifier has no suggestion for. It
// returns the number of records hinted.
func ApplyChapterHints(records []question.Record, subject string) int {
	hinted := 0
	for i := range records {
		if records[i].Chapter != question.MixedChapter {
			continue
		}
		if chapter := chapters.Classify(records[i].QuestionText, subject); chapter != "" {
			records[i].Chapter = chapter
			hinted++
		}
	}
	return hinted
}
