package content

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the content tree under a directory whenever one of its
// YAML files changes. Bursts of events are coalesced into one reload.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string

	// Reloads carries freshly loaded registries. Only the newest is kept.
	Reloads chan *Registry
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching dir and its cutscenes/ and scripts/ subdirectories.
// Missing subdirectories are skipped.
func Watch(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, d := range []string{dir, filepath.Join(dir, filepath.Dir(cutsceneGlob)), filepath.Join(dir, filepath.Dir(scriptGlob))} {
		if d != dir && !isDir(d) {
			continue
		}
		if err := w.Add(d); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		dir:     dir,
		Reloads: make(chan *Registry, 1),
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
	defer close(w.done)

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isContentFile(event.Name) {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			timer.Stop()
			return
		}
	}
}

func (w *Watcher) reload() {
	r, err := LoadRegistry(os.DirFS(w.dir))
	if err != nil {
		w.sendErr(err)
		return
	}
	// replace an unconsumed registry with the newer one
	select {
	case <-w.Reloads:
	default:
	}
	w.Reloads <- r
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

func isContentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml" || ext == ".tengo"
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
