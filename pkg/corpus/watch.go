package corpus

import (
	"fmt"
	"path/filepath"

	"gopkg.in/fsnotify.v1"
)

// Watcher re-runs extraction whenever a corpus document changes on disk.
// Remove and rename count as changes too: the re-run simply produces the
// corpus without that document, plus a failed entry for it.
type Watcher struct {
	manifest *Manifest
	baseDir  string

	// documents maps cleaned absolute-ish document paths to membership,
	// so unrelated files in the watched directories are ignored.
	documents map[string]bool

	onRun   func(*RunReport)
	onError func(error)

	watcher  *fsnotify.Watcher
	stopChan chan struct{}
}

// NewWatcher creates a watcher over the manifest's documents. onRun
// receives the report of every re-run; onError receives watcher-level
// errors, which never stop the watch loop.
func NewWatcher(manifest *Manifest, baseDir string, onRun func(*RunReport), onError func(error)) *Watcher {
	documents := make(map[string]bool, manifest.DocumentCount())
	for _, bank := range manifest.Banks {
		documents[filepath.Clean(resolvePath(baseDir, bank.Path))] = true
	}
	for _, paper := range manifest.Papers {
		documents[filepath.Clean(resolvePath(baseDir, paper.Path))] = true
	}

	return &Watcher{
		manifest:  manifest,
		baseDir:   baseDir,
		documents: documents,
		onRun:     onRun,
		onError:   onError,
	}
}

// Start begins watching the directories containing the corpus documents.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = watcher
	w.stopChan = make(chan struct{})

	go w.watchLoop()

	watched := make(map[string]bool)
	for document := range w.documents {
		dir := filepath.Dir(document)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			w.watcher.Close()
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		watched[dir] = true
	}

	return nil
}

// watchLoop handles file system events until Stop is called.
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.documents[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.onRun(Run(w.manifest, w.baseDir))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	if w.stopChan != nil {
		close(w.stopChan)
	}
	if w.watcher != nil {
		w.watcher.Close()
	}
}
