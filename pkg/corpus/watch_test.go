package corpus

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_RerunsOnDocumentChange(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "banks/functions.txt", lineBankText)

	manifest := &Manifest{
		Banks: []BankDocument{{Path: "banks/functions.txt", Chapter: "Functions"}},
	}

	reports := make(chan *RunReport, 4)
	watcher := NewWatcher(manifest, dir, func(report *RunReport) {
		reports <- report
	}, nil)

	if err := watcher.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer watcher.Stop()

	path := filepath.Join(dir, "banks", "functions.txt")
	if err := os.WriteFile(path, []byte(lineBankText+"3. Explain keyword arguments in function calls.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// A single save can surface as several events; wait for a re-run
	// that has seen the full document.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case report := <-reports:
			if report.TotalParsed == 3 {
				return
			}
		case <-deadline:
			t.Fatal("no re-run saw the changed document")
		}
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "banks/functions.txt", lineBankText)

	manifest := &Manifest{
		Banks: []BankDocument{{Path: "banks/functions.txt", Chapter: "Functions"}},
	}

	reports := make(chan *RunReport, 4)
	watcher := NewWatcher(manifest, dir, func(report *RunReport) {
		reports <- report
	}, nil)

	if err := watcher.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer watcher.Stop()

	writeDocument(t, dir, "banks/scratch.txt", "not part of the corpus")

	select {
	case <-reports:
		t.Error("a change to an unrelated file triggered a re-run")
	case <-time.After(300 * time.Millisecond):
	}
}
