package sheet

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a Watcher waits after the last change to a
// file before reloading it.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a sheet whenever its file changes. Reloaded sheets arrive
// on Updates and load failures on Errors. The frame loop should drain both
// and call Sheet.Apply itself, since groups are not safe for concurrent use.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	Updates chan *Sheet
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching the sheet at path. The containing directory is
// watched so editors that save by renaming over the file are seen.
func Watch(path string) (*Watcher, error) {
	return WatchDebounced(path, DefaultDebounce)
}

// WatchDebounced is Watch with a custom debounce interval.
func WatchDebounced(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
		Updates:  make(chan *Sheet, 4),
		Errors:   make(chan error, 4),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher. Updates and Errors are closed once the watch
// goroutine has exited.
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
	defer func() {
		close(w.Updates)
		close(w.Errors)
		close(w.done)
	}()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
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
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			s, err := LoadFile(w.path)
			if err != nil {
				if !w.send(nil, err) {
					return
				}
				continue
			}
			if !w.send(s, nil) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !w.send(nil, err) {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// send delivers a result, giving up when the watcher is closed.
func (w *Watcher) send(s *Sheet, err error) bool {
	if err != nil {
		select {
		case w.Errors <- err:
			return true
		case <-w.closeCh:
			return false
		}
	}
	select {
	case w.Updates <- s:
		return true
	case <-w.closeCh:
		return false
	}
}
