package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var (
	//go:embed all:sprites
	spriteFS embed.FS
)

// Sprites is the embedded sprite tree. Paths look like "bucko/intro.png".
func Sprites() fs.FS {
	sub, err := fs.Sub(spriteFS, "sprites")
	if err != nil {
		panic(fmt.Sprintf("embedded sprites missing: %v", err))
	}
	return sub
}

// Image is a handle to a sprite sheet decoded in the background.
type Image struct {
	path  string
	state atomic.Int32
	img   image.Image
	err   error
}

func (h *Image) Path() string { return h.path }

func (h *Image) State() LoadState { return LoadState(h.state.Load()) }

// Image returns the decoded image, or nil while loading or after a failure.
func (h *Image) Image() image.Image {
	if h.State() != StateLoaded {
		return nil
	}
	return h.img
}

// Err returns the load error once the handle has failed.
func (h *Image) Err() error {
	if h.State() != StateFailed {
		return nil
	}
	return h.err
}

// Loader decodes images off the game loop and caches handles by path.
type Loader struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]*Image
	group errgroup.Group
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Image),
	}
}

// Load returns the handle for path, starting a decode the first time the
// path is requested.
func (l *Loader) Load(path string) *Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.cache[path]; ok {
		return h
	}

	h := &Image{path: path}
	l.cache[path] = h
	l.group.Go(func() error {
		img, err := decode(l.fsys, path)
		if err != nil {
			h.err = err
			h.state.Store(int32(StateFailed))
			log.Printf("[assets] failed to load %s: %v", path, err)
			return err
		}
		h.img = img
		h.state.Store(int32(StateLoaded))
		return nil
	})
	return h
}

// Wait blocks until every started decode has finished and returns the first
// failure.
func (l *Loader) Wait() error {
	return l.group.Wait()
}

func decode(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
