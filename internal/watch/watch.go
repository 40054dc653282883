// Package watch re-runs the tally whenever the input file changes, so a
// projector screen can stay current while votes are still being exported.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const debounceDelay = 200 * time.Millisecond

// Watcher monitors one input file via fsnotify and invokes a callback on
// changes. Editors and exporters often write a file in several bursts, so
// events are debounced.
type Watcher struct {
	log  zerolog.Logger
	path string
	fn   func()

	mu       sync.Mutex
	debounce *time.Timer
}

// New creates a Watcher that calls fn when path changes.
func New(log zerolog.Logger, path string, fn func()) *Watcher {
	return &Watcher{log: log, path: path, fn: fn}
}

// Run calls fn once, then blocks watching the file until ctx is done.
// Watching the parent directory instead of the file itself survives
// rename-replace writes.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	w.fn()

	target := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug().Str("file", event.Name).Msg("input changed, re-tallying")
			w.debounceRun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) debounceRun() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.fn)
}
