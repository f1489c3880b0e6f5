package corpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coolbeans/qbank/pkg/question"
)

// FormatRunReport formats a run report for terminal output.
func FormatRunReport(report *RunReport) string {
	var builder strings.Builder

	builder.WriteString("\nExtraction Report\n")
	builder.WriteString(strings.Repeat("═", 60) + "\n")
	builder.WriteString(fmt.Sprintf("Documents: %d | Parsed: %d | Failed: %d\n",
		report.Succeeded+report.Failed, report.Succeeded, report.Failed))
	builder.WriteString(strings.Repeat("─", 60) + "\n")

	for _, entry := range report.Entries {
		status := "[OK]"
		if entry.Status == "failed" {
			status = "[FAIL]"
		}

		line := fmt.Sprintf("  %-8s %-30s", status, entry.Label)
		if entry.Status == "parsed" {
			line += fmt.Sprintf(" %d questions (%s)", entry.Parsed, entry.Strategy)
		}
		if entry.Error != "" {
			line += fmt.Sprintf(" error: %s", entry.Error)
		}
		builder.WriteString(line + "\n")
	}

	builder.WriteString(strings.Repeat("─", 60) + "\n")
	builder.WriteString(fmt.Sprintf("Total questions: %d | Unique: %d\n",
		report.TotalParsed, report.Unique))

	return builder.String()
}

// FormatSummary formats type and origin tallies for a record collection,
// followed by up to sampleCount sample records for spot verification.
func FormatSummary(records []question.Record, sampleCount int) string {
	var builder strings.Builder

	builder.WriteString("\nBy Type:\n")
	for _, line := range sortedCountLines(typeCounts(records)) {
		builder.WriteString(line)
	}

	builder.WriteString("\nBy Source:\n")
	for _, line := range sortedCountLines(question.CountBySource(records)) {
		builder.WriteString(line)
	}

	if sampleCount > len(records) {
		sampleCount = len(records)
	}
	if sampleCount > 0 {
		builder.WriteString("\nSample Questions:\n")
		for i := 0; i < sampleCount; i++ {
			record := records[i]
			text := record.QuestionText
			if len([]rune(text)) > 150 {
				text = string([]rune(text)[:150]) + "..."
			}
			builder.WriteString(fmt.Sprintf("  %d. [%s, %d marks] %s\n", i+1, record.Type, record.Marks, text))
			if len(record.Options) > 0 {
				builder.WriteString(fmt.Sprintf("     options: %s\n", strings.Join(record.Options, " | ")))
			}
		}
	}

	return builder.String()
}

func typeCounts(records []question.Record) map[string]int {
	counts := make(map[string]int)
	for questionType, count := range question.CountByType(records) {
		counts[string(questionType)] = count
	}
	return counts
}

func sortedCountLines(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("  - %s: %d\n", key, counts[key]))
	}
	return lines
}
