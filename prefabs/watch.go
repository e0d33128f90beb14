package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangePrefab ChangeKind = iota
	ChangeScript
)

// Change names a prefab or script file that was written on disk.
type Change struct {
	Path string
	Kind ChangeKind
}

// Name is the file name relative to the prefabs directory layout, suitable
// for Load or LoadScript.
func (c Change) Name() string {
	base := filepath.Base(c.Path)
	if c.Kind == ChangeScript {
		return "scripts/" + base
	}
	return base
}

// Watcher forwards debounced prefab edits from a background goroutine. The
// game loop drains it without blocking.
type Watcher struct {
	watcher  *fsnotify.Watcher
	changes  chan Change
	errors   chan error
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
	debounce time.Duration
}

func NewWatcher(debounce time.Duration, dirs ...string) (*Watcher, error) {
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
		watcher:  w,
		changes:  make(chan Change, 16),
		errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
		debounce: debounce,
	}
	go watcher.run()
	return watcher, nil
}

// Drain returns the changes and the first error queued since the last call.
func (w *Watcher) Drain() ([]Change, error) {
	var out []Change
	for {
		select {
		case c := <-w.changes:
			out = append(out, c)
		case err := <-w.errors:
			return out, err
		default:
			return out, nil
		}
	}
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
	defer close(w.done)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < w.debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.changes <- Change{Path: event.Name, Kind: kind}:
			default:
				// The game loop is behind; it will reload on a later edit.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangePrefab, true
	case ".tengo":
		return ChangeScript, true
	default:
		return 0, false
	}
}
