package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

const manifestYAML = `subject: Computer Science
banks:
  - path: banks/functions.txt
    chapter: Functions
  - path: banks/loops.txt
    chapter: Loops
papers:
  - path: papers/sample1.txt
    name: Sample Paper 1
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	manifest, err := LoadManifest(writeManifest(t, manifestYAML))
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}

	if len(manifest.Banks) != 2 {
		t.Errorf("expected 2 banks, got %d", len(manifest.Banks))
	}
	if len(manifest.Papers) != 1 {
		t.Errorf("expected 1 paper, got %d", len(manifest.Papers))
	}
	if manifest.Banks[0].Chapter != "Functions" {
		t.Errorf("unexpected chapter: %q", manifest.Banks[0].Chapter)
	}
	if manifest.Papers[0].Name != "Sample Paper 1" {
		t.Errorf("unexpected paper name: %q", manifest.Papers[0].Name)
	}
	if manifest.DocumentCount() != 3 {
		t.Errorf("expected 3 documents, got %d", manifest.DocumentCount())
	}
	if manifest.Subject != "Computer Science" {
		t.Errorf("unexpected subject: %q", manifest.Subject)
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing manifest")
	}
}

func TestLoadManifest_MalformedYAML(t *testing.T) {
	if _, err := LoadManifest(writeManifest(t, "banks: [unterminated")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestManifestValidate_BankWithoutChapter(t *testing.T) {
	manifest := &Manifest{Banks: []BankDocument{{Path: "banks/functions.txt"}}}
	if err := manifest.Validate(); err == nil {
		t.Error("expected a validation error for a bank without a chapter")
	}
}

func TestManifestValidate_PaperWithoutName(t *testing.T) {
	manifest := &Manifest{Papers: []PaperDocument{{Path: "papers/sample1.txt"}}}
	if err := manifest.Validate(); err == nil {
		t.Error("expected a validation error for a paper without a name")
	}
}

func TestManifestValidate_UnknownSubject(t *testing.T) {
	manifest := &Manifest{Subject: "Astronomy"}
	if err := manifest.Validate(); err == nil {
		t.Error("expected a validation error for a subject outside the catalog")
	}
}

func TestManifestValidate_EmptyManifest(t *testing.T) {
	manifest := &Manifest{}
	if err := manifest.Validate(); err != nil {
		t.Errorf("an empty manifest is valid, got %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	if got := resolvePath("/corpus", "banks/functions.txt"); got != filepath.Join("/corpus", "banks/functions.txt") {
		t.Errorf("relative path not joined: %q", got)
	}
	if got := resolvePath("/corpus", "/elsewhere/doc.txt"); got != "/elsewhere/doc.txt" {
		t.Errorf("absolute path must be kept as-is: %q", got)
	}
	if got := resolvePath("", "banks/functions.txt"); got != "banks/functions.txt" {
		t.Errorf("empty base directory must keep the path: %q", got)
	}
}
