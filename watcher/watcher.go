package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IgnoreChecker is used by the watcher to check if a path should be ignored.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// Watcher watches the project tree recursively and requests a full index
// rebuild after a burst of changes settles. It never patches the index
// itself; rebuild semantics are always clear-and-rescan.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	coalescer     *Coalescer
	ignoreChecker IgnoreChecker
	rootDir       string
	logger        *slog.Logger
}

// NewWatcher creates a recursive file watcher on the given root directory.
// It registers all non-ignored subdirectories for watching.
func NewWatcher(rootDir string, ignoreChecker IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:     fsWatcher,
		coalescer:     NewCoalescer(100 * time.Millisecond),
		ignoreChecker: ignoreChecker,
		rootDir:       rootDir,
		logger:        logger,
	}

	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip entries that can't be read
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignoreChecker.ShouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// RebuildRequests returns the channel that receives one value per settled
// change burst, carrying the number of collapsed change events.
func (w *Watcher) RebuildRequests() <-chan int {
	return w.coalescer.Output()
}

// Start begins listening for file system events. Call this in a goroutine.
// It runs until the watcher is closed.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent folds a single fsnotify event into the rebuild coalescer.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// A newly created directory must be watched from now on
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			if !w.ignoreChecker.ShouldIgnoreDir(path) {
				if err := w.fsWatcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
				w.coalescer.Touch()
			}
			return
		}
	}

	// Changes to ignore rules affect the next scan, so they count too
	baseName := filepath.Base(path)
	if baseName == ".gitignore" || baseName == ".aiignore" {
		w.coalescer.Touch()
		return
	}

	if w.ignoreChecker.ShouldIgnore(path) {
		return
	}

	if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.coalescer.Touch()
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
