package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/coolbeans/qbank/pkg/chapters"
	"github.com/coolbeans/qbank/pkg/corpus"
	"github.com/coolbeans/qbank/pkg/extract"
	"github.com/coolbeans/qbank/pkg/question"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "qbank",
		Short: "Exam-document question extraction",
		Long: `qbank converts loosely structured exam-document text (chapter-wise
question banks and full question papers, already reduced to plain
paragraph text) into a normalized set of question records, each tagged
with type, marks, options, and provenance.

Extraction is heuristic and lossy-but-safe: unrecognized lines join the
open question's body or are dropped, never raised as errors. The output
is a flat JSON array of question records.`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(dedupeCmd())
	rootCmd.AddCommand(subjectsCmd())
	rootCmd.AddCommand(chaptersCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse one exam document into question records",
		Long: `Parse a single plain-text exam document.

With --chapter the document is treated as a chapter-wise question bank
(structured block extraction, falling back to the universal line
strategy on low yield). With --paper it is treated as a full question
paper. --strategy overrides the selection with an explicit strategy.
With --subject, paper records still labeled Mixed get a chapter
suggested from that subject's catalog.

Example:
  qbank parse --source chapter2.txt --chapter "Functions" --output functions.json
  qbank parse --source sqp_24_25.txt --paper "SQP 2024-25" --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			chapter, _ := cmd.Flags().GetString("chapter")
			paper, _ := cmd.Flags().GetString("paper")
			strategyName, _ := cmd.Flags().GetString("strategy")
			subject, _ := cmd.Flags().GetString("subject")
			output, _ := cmd.Flags().GetString("output")
			showStats, _ := cmd.Flags().GetBool("stats")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}
			if chapter == "" && paper == "" {
				return fmt.Errorf("one of --chapter or --paper is required")
			}
			if subject != "" && chapters.ChaptersFor(subject) == nil {
				return fmt.Errorf("unknown subject: %s", subject)
			}

			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}
			text := string(data)

			var records []question.Record
			var used extract.Strategy
			switch {
			case strategyName != "":
				used = extract.ParseStrategy(strategyName)
				records = parseWithStrategy(text, used, chapter, paper)
			case chapter != "":
				records, used = corpus.SelectAndParse(text, chapter)
			default:
				records = corpus.ParsePaper(text, paper)
				used = extract.StrategyUniversal
			}

			if subject != "" {
				hinted := corpus.ApplyChapterHints(records, subject)
				fmt.Printf("Chapter hints applied to %d of %d questions\n", hinted, len(records))
			}

			fmt.Printf("Parsed %d questions from %s (%s strategy)\n", len(records), filepath.Base(source), used)

			if output != "" {
				if err := question.Save(output, records); err != nil {
					return err
				}
				fmt.Printf("Saved to %s\n", output)
			} else {
				encoded, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal records: %w", err)
				}
				fmt.Println(string(encoded))
			}

			if showStats {
				fmt.Print(corpus.FormatSummary(records, 0))
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "Plain-text exam document (required)")
	cmd.Flags().String("chapter", "", "Treat as a chapter bank with this chapter label")
	cmd.Flags().String("paper", "", "Treat as a question paper with this source name")
	cmd.Flags().String("strategy", "", "Force a strategy: universal, simple, chapterlines, structured")
	cmd.Flags().String("subject", "", "Suggest chapters for paper records from this subject's catalog")
	cmd.Flags().String("output", "", "Write the records array to this file instead of stdout")
	cmd.Flags().Bool("stats", false, "Print type and source tallies")

	return cmd
}

// parseWithStrategy runs an explicitly chosen strategy with the
// chapter/source labels the document class implies.
func parseWithStrategy(text string, strategy extract.Strategy, chapter, paper string) []question.Record {
	if strategy == extract.StrategyStructured {
		return extract.ParseStructured(text, chapter)
	}

	label := chapter
	source := ""
	if paper != "" {
		label = question.MixedChapter
		source = paper
	}
	return extract.ParseText(text, strategy, label, source)
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Process a whole corpus manifest",
		Long: `Process every document in a YAML corpus manifest, deduplicate the
combined output by content fingerprint, and write the records artifact.

A document that cannot be read contributes zero records and a failed
report entry; the run continues.

Example:
  qbank batch --manifest corpus.yaml --output parsed_questions.json --sample 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			output, _ := cmd.Flags().GetString("output")
			sample, _ := cmd.Flags().GetInt("sample")

			if manifestPath == "" {
				return fmt.Errorf("--manifest flag is required")
			}

			manifest, err := corpus.LoadManifest(manifestPath)
			if err != nil {
				return err
			}

			report := corpus.Run(manifest, filepath.Dir(manifestPath))
			fmt.Print(corpus.FormatRunReport(report))
			fmt.Print(corpus.FormatSummary(report.Records, sample))

			if output != "" {
				if err := question.Save(output, report.Records); err != nil {
					return err
				}
				fmt.Printf("\nSaved %d unique questions to %s\n", report.Unique, output)
			}
			return nil
		},
	}

	cmd.Flags().String("manifest", "", "Corpus manifest YAML (required)")
	cmd.Flags().String("output", "", "Write the deduplicated records array to this file")
	cmd.Flags().Int("sample", 3, "Number of sample questions to print")

	return cmd
}

func dedupeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Fold record artifacts into one unique set",
		Long: `Merge one or more records artifacts, keeping the first record for
each content fingerprint, in input order.

Example:
  qbank dedupe --input banks.json --input papers.json --output merged.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, _ := cmd.Flags().GetStringSlice("input")
			output, _ := cmd.Flags().GetString("output")

			if len(inputs) == 0 {
				return fmt.Errorf("at least one --input flag is required")
			}
			if output == "" {
				return fmt.Errorf("--output flag is required")
			}

			var all []question.Record
			for _, input := range inputs {
				records, err := question.Load(input)
				if err != nil {
					return err
				}
				all = append(all, records...)
			}

			unique := question.Dedupe(all)
			if err := question.Save(output, unique); err != nil {
				return err
			}

			fmt.Printf("Merged %d questions into %d unique (%d duplicates dropped)\n",
				len(all), len(unique), len(all)-len(unique))
			fmt.Printf("Saved to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringSlice("input", nil, "Records artifact to merge (repeatable)")
	cmd.Flags().String("output", "", "Write the merged records array to this file")

	return cmd
}

func subjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List supported subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, subject := range chapters.Subjects() {
				fmt.Println(subject)
			}
			return nil
		},
	}
}

func chaptersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chapters [subject]",
		Short: "List the chapter catalog for a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := args[0]
			chapterList := chapters.ChaptersFor(subject)
			if chapterList == nil {
				return fmt.Errorf("unknown subject: %s", subject)
			}
			for _, chapter := range chapterList {
				fmt.Println(chapter)
			}
			return nil
		},
	}
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run extraction when corpus documents change",
		Long: `Watch the corpus documents and rewrite the records artifact every
time one of them is created, modified, removed, or renamed.

Example:
  qbank watch --manifest corpus.yaml --output parsed_questions.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			output, _ := cmd.Flags().GetString("output")

			if manifestPath == "" {
				return fmt.Errorf("--manifest flag is required")
			}
			if output == "" {
				return fmt.Errorf("--output flag is required")
			}

			manifest, err := corpus.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			baseDir := filepath.Dir(manifestPath)

			writeRun := func(report *corpus.RunReport) {
				fmt.Print(corpus.FormatRunReport(report))
				if err := question.Save(output, report.Records); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				fmt.Printf("Saved %d unique questions to %s\n", report.Unique, output)
			}

			// Initial run before watching, so the artifact exists even if
			// nothing changes.
			writeRun(corpus.Run(manifest, baseDir))

			watcher := corpus.NewWatcher(manifest, baseDir, writeRun, func(err error) {
				fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
			})
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Printf("Watching %d documents, Ctrl-C to stop\n", manifest.DocumentCount())

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
			<-signals
			return nil
		},
	}

	cmd.Flags().String("manifest", "", "Corpus manifest YAML (required)")
	cmd.Flags().String("output", "", "Records artifact to keep up to date")

	return cmd
}
