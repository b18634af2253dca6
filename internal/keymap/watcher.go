package keymap

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/chatter/keygrid/internal/logger"
)

// ChangedMsg is sent when the keymap file changes on disk.
type ChangedMsg struct {
	Path string
}

// Watcher watches a keymap file for changes.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temporary file and renaming it over the
// original keep being observed.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	filtered chan fsnotify.Event
	done     chan struct{}
	once     sync.Once
	log      *logger.Logger
}

// NewWatcher creates a watcher for the keymap file at path.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving keymap path: %w", err)
	}

	log.Debug("creating keymap watcher", "path", abs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("failed to create fsnotify watcher", "err", err)

		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		log.Error("failed to watch keymap directory", "path", dir, "err", err)
		watcher.Close()

		return nil, fmt.Errorf("watching keymap directory: %w", err)
	}

	log.Info("keymap watcher started", "path", abs)

	self := &Watcher{
		path:     abs,
		watcher:  watcher,
		filtered: make(chan fsnotify.Event, 1),
		done:     make(chan struct{}),
		log:      log,
	}

	go self.filterEvents()

	return self, nil
}

// Path returns the absolute path of the watched keymap.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel of filtered fsnotify events.
func (w *Watcher) Events() <-chan fsnotify.Event {
	return w.filtered
}

// Close stops the watcher. Calling it more than once is a no-op.
func (w *Watcher) Close() error {
	var err error

	w.once.Do(func() {
		close(w.done)

		if cerr := w.watcher.Close(); cerr != nil {
			err = fmt.Errorf("closing fsnotify watcher: %w", cerr)
		}
	})

	return err
}

func (w *Watcher) filterEvents() {
	defer close(w.filtered)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldForward(event) {
				continue
			}

			w.log.Debug("keymap change detected", "path", event.Name, "op", event.Op.String())

			// Drop the event when one is already pending; a single reload
			// covers a burst of writes.
			select {
			case w.filtered <- event:
			default:
				w.log.Debug("keymap event dropped (pending)", "path", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.log.Warn("keymap watcher error", "err", err)
			}
		}
	}
}

// shouldForward reports whether an event concerns the keymap file itself.
func (w *Watcher) shouldForward(event fsnotify.Event) bool {
	if isScratchFile(event.Name) {
		return false
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}

	return filepath.Clean(event.Name) == w.path
}

// isScratchFile reports editor lock, swap and backup files.
func isScratchFile(name string) bool {
	base := filepath.Base(name)

	switch {
	case strings.HasSuffix(base, ".lock"),
		strings.HasSuffix(base, ".swp"),
		strings.HasSuffix(base, ".swx"),
		strings.HasSuffix(base, "~"),
		strings.HasPrefix(base, ".#"),
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"):
		return true
	}

	return false
}
