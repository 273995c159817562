package scene

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// change is one debounce timer firing; gen tells a stale timer from the latest.
type change struct {
	name string
	gen  int
}

// Watcher reports changed scene files under a set of directories.
//
// A burst of changes to one file is reported once, debounce after its last change.
// Events and Errors are closed once the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	fire    chan change
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs for written, created, renamed or removed .yaml and .yml files.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		fire:    make(chan change),
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

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
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	timers := make(map[string]*time.Timer)
	gens := make(map[string]int)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsSceneFile(event.Name) {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Stop()
			}
			gens[event.Name]++
			c := change{name: event.Name, gen: gens[event.Name]}
			timers[c.name] = time.AfterFunc(debounce, func() {
				select {
				case w.fire <- c:
				case <-w.closeCh:
				}
			})
		case c := <-w.fire:
			if gens[c.name] != c.gen {
				continue
			}
			delete(timers, c.name)
			select {
			case w.Events <- c.name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsSceneFile reports whether path has a YAML extension.
func IsSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
