package corpus

import (
	"os"

	"github.com/coolbeans/qbank/pkg/extract"
	"github.com/coolbeans/qbank/pkg/question"
)

// minStructuredYield is the fallback threshold for chapter banks: when
// the structured block extractor produces fewer records than this, the
// bank's layout is evidently not inline-answer style and the universal
// line strategy is used instead.
const minStructuredYield = 5

// RunEntry records the outcome for one document in a run.
type RunEntry struct {
	Label    string `json:"label"`
	Path     string `json:"path"`
	Strategy string `json:"strategy,omitempty"`
	Parsed   int    `json:"parsed"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// RunReport is the outcome of a whole-corpus run: per-document entries,
// counters, and the deduplicated record collection. A failed document
// contributes zero records and a failed entry; it never aborts the run.
type RunReport struct {
	Entries     []RunEntry `json:"entries"`
	TotalParsed int        `json:"total_parsed"`
	Unique      int        `json:"unique"`
	Succeeded   int        `json:"succeeded"`
	Failed      int        `json:"failed"`

	// Records is the deduplicated output, first-encountered record
	// winning per fingerprint. Processing order is banks before papers,
	// each in manifest order.
	Records []question.Record `json:"-"`
}

// SelectAndParse applies the chapter-bank strategy decision: structured
// block extraction first, falling back to the universal line strategy
// when the yield is too low.
func SelectAndParse(text, chapter string) ([]question.Record, extract.Strategy) {
	records := extract.ParseStructured(text, chapter)
	if len(records) >= minStructuredYield {
		return records, extract.StrategyStructured
	}
	records = extract.ParseText(text, extract.StrategyUniversal, chapter, "Chapter - "+chapter)
	return records, extract.StrategyUniversal
}

// ParsePaper extracts records from full question paper text. Papers
// always use the universal line strategy; their layouts separate answers
// and options by line breaks, so the structured extractor does not apply.
func ParsePaper(text, name string) []question.Record {
	return extract.ParseText(text, extract.StrategyUniversal, question.MixedChapter, name)
}

// Run processes every document in the manifest and folds the output into
// one deduplicated collection. When the manifest names a subject, paper
// records get chapter hints from its catalog.
func Run(manifest *Manifest, baseDir string) *RunReport {
	report := &RunReport{}
	var all []question.Record

	for _, bank := range manifest.Banks {
		data, err := os.ReadFile(resolvePath(baseDir, bank.Path))
		if err != nil {
			report.addFailure(bank.Chapter, bank.Path, err.Error())
			continue
		}
		records, strategy := SelectAndParse(string(data), bank.Chapter)
		report.addSuccess(bank.Chapter, bank.Path, string(strategy), len(records))
		all = append(all, records...)
	}

	for _, paper := range manifest.Papers {
		data, err := os.ReadFile(resolvePath(baseDir, paper.Path))
		if err != nil {
			report.addFailure(paper.Name, paper.Path, err.Error())
			continue
		}
		records := ParsePaper(string(data), paper.Name)
		if manifest.Subject != "" {
			ApplyChapterHints(records, manifest.Subject)
		}
		report.addSuccess(paper.Name, paper.Path, string(extract.StrategyUniversal), len(records))
		all = append(all, records...)
	}

	report.TotalParsed = len(all)
	report.Records = question.Dedupe(all)
	report.Unique = len(report.Records)
	return report
}

func (report *RunReport) addSuccess(label, path, strategy string, parsed int) {
	report.Succeeded++
	report.Entries = append(report.Entries, RunEntry{
		Label:    label,
		Path:     path,
		Strategy: strategy,
		Parsed:   parsed,
		Status:   "parsed",
	})
}

func (report *RunReport) addFailure(label, path, reason string) {
	report.Failed++
	report.Entries = append(report.Entries, RunEntry{
		Label:  label,
		Path:   path,
		Status: "failed",
		Error:  reason,
	})
}
