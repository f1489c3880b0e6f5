// Package corpus drives extraction runs over a set of exam documents
// described by a YAML manifest: chapter-wise question banks and full
// question papers, each reduced to plain text.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coolbeans/qbank/pkg/chapters"
	"gopkg.in/yaml.v3"
)

// BankDocument is a chapter-wise question bank in the corpus.
type BankDocument struct {
	// Path is the plain-text document, relative to the manifest directory
	// unless absolute.
	Path string `yaml:"path"`

	// Chapter labels every record extracted from this bank.
	Chapter string `yaml:"chapter"`
}

// PaperDocument is a full question paper in the corpus.
type PaperDocument struct {
	Path string `yaml:"path"`

	// Name is the human-readable paper identifier recorded as each
	// record's source.
	Name string `yaml:"name"`
}

// Manifest describes one corpus. An empty manifest is valid and yields
// an empty run.
type Manifest struct {
	Banks  []BankDocument  `yaml:"banks"`
	Papers []PaperDocument `yaml:"papers"`

	// Subject, when set, turns on chapter hints for paper records: the
	// Mixed label is replaced by a chapter suggested from this subject's
	// catalog.
	Subject string `yaml:"subject,omitempty"`
}

// LoadManifest reads and validates a corpus manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	return manifest, nil
}

// Validate checks that every document entry carries a path and a label,
// and that a subject, when given, is in the catalog. A misspelled
// subject would silently disable chapter hints otherwise.
func (m *Manifest) Validate() error {
	if m.Subject != "" && chapters.ChaptersFor(m.Subject) == nil {
		return fmt.Errorf("unknown subject: %s", m.Subject)
	}
	for i, bank := range m.Banks {
		if bank.Path == "" {
			return fmt.Errorf("bank %d: path is required", i)
		}
		if bank.Chapter == "" {
			return fmt.Errorf("bank %d (%s): chapter is required", i, bank.Path)
		}
	}
	for i, paper := range m.Papers {
		if paper.Path == "" {
			return fmt.Errorf("paper %d: path is required", i)
		}
		if paper.Name == "" {
			return fmt.Errorf("paper %d (%s): name is required", i, paper.Path)
		}
	}
	return nil
}

// DocumentCount returns the number of documents in the corpus.
func (m *Manifest) DocumentCount() int {
	return len(m.Banks) + len(m.Papers)
}

// resolvePath joins a manifest-relative document path with the base
// directory.
func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
