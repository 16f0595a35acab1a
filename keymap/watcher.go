package keymap

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keybind"
)

// ReloadFunc receives the result of reloading a watched keymap file. Exactly
// one of binds and err is non-nil. The callback runs on the watcher's
// goroutine; it decides how to swap the new table into a dispatcher.
type ReloadFunc func(binds *keybind.Keybinds[string], err error)

// Watcher reloads a keymap file whenever it changes on disk. Editors often
// replace files by rename, so the watch covers the containing directory and
// filters events down to the one file.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	onLoad  ReloadFunc

	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// WatchFile starts watching a keymap file. The file is loaded once
// immediately, then again on every write, create, or rename event; each load
// result is delivered to fn.
func WatchFile(path string, fn ReloadFunc) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    absPath,
		onLoad:  fn,
		closeCh: make(chan struct{}),
	}

	w.reload()

	w.doneWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and waits for the event loop to finish. No callback
// runs after Close returns. Close is idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.doneWg.Wait()
	return err
}

// processLoop handles incoming fsnotify events until closed.
func (w *Watcher) processLoop() {
	defer w.doneWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onLoad(nil, err)
		}
	}
}

// relevant reports whether the event concerns the watched file and its
// operation can change the file's content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename)
}

// reload loads the watched file and delivers the result.
func (w *Watcher) reload() {
	binds, err := LoadFile(w.path)
	w.onLoad(binds, err)
}
