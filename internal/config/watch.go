package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk. Editors often
// replace files via rename, so the parent directory is watched and events
// filtered to the config path.
type Watcher struct {
	path     string
	onChange func(Config)

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	// debounce coalesces the write bursts editors produce on save.
	debounce time.Duration
}

// NewWatcher creates a watcher for the given config path. onChange is
// called with the freshly loaded config after each successful reload.
func NewWatcher(path string, onChange func(Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		watcher:  fsw,
		done:     make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if cfg, err := Load(w.path); err == nil {
				w.onChange(cfg)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
