// Package watch reports changes to a fixed set of files.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 100 * time.Millisecond

// Watcher watches the directories of its files and forwards events for the
// files themselves. A file is reported once it has been quiet for the
// debounce window, so a burst of writes yields one event after the last.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration

	Events  chan string
	Errors  chan error
	ready   chan string
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New watches files. Editors and exporters often replace a file instead of
// writing it in place, so the parent directory is watched rather than the
// file.
func New(debounce time.Duration, files ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		set[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		files:    set,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		ready:    make(chan string),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the event loop
// has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := w.files[name]; !ok {
				continue
			}
			if t, ok := pending[name]; ok {
				t.Reset(w.debounce)
				continue
			}
			pending[name] = time.AfterFunc(w.debounce, func() {
				select {
				case w.ready <- name:
				case <-w.closeCh:
				}
			})
		case name := <-w.ready:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
