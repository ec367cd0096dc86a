// Package watch provides the debounced file watcher behind `vex watch`.
package watch

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is invoked with the batch of changed paths after the debounce
// window closes.
type Handler func(paths []string)

// Watcher watches directories for .jsx changes, grouping rapid change
// bursts (editors often write a file several times in a row) into one
// handler call.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	handler  Handler
}

// New creates a Watcher. debounce is the quiet period required before the
// handler fires.
func New(debounce time.Duration, handler Handler) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fs: fs, debounce: debounce, handler: handler}, nil
}

// Add registers a directory tree for watching.
func (w *Watcher) Add(root string) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if path != root && (strings.HasPrefix(de.Name(), ".") || de.Name() == "node_modules") {
				return filepath.SkipDir
			}
			return w.fs.Add(path)
		}
		return nil
	})
}

// Run processes events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	pending := map[string]bool{}
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".jsx") {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending[ev.Name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)

		case <-fire:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			pending = map[string]bool{}
			fire = nil
			w.handler(paths)
		}
	}
}
