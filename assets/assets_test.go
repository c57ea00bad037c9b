package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

type fakeHandle struct {
	path  string
	state LoadState
}

func (h *fakeHandle) Path() string     { return h.path }
func (h *fakeHandle) State() LoadState { return h.state }

func TestTracker_ReadyOnlyWhenAllLoaded(t *testing.T) {
	a := &fakeHandle{path: "a.png", state: StateLoaded}
	b := &fakeHandle{path: "b.png", state: StateLoading}

	var tr Tracker
	tr.Push(a)
	tr.Push(b)

	if tr.IsReady() {
		t.Fatal("IsReady() = true with one handle still loading")
	}

	b.state = StateLoaded
	if !tr.IsReady() {
		t.Fatal("IsReady() = false with both handles loaded")
	}

	tr.Clear()
	if !tr.IsReady() {
		t.Error("cleared tracker should be vacuously ready")
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d after Clear", tr.Len())
	}
}

func TestTracker_FailedIsNeverReady(t *testing.T) {
	var tr Tracker
	tr.Push(&fakeHandle{path: "ok.png", state: StateLoaded})
	tr.Push(&fakeHandle{path: "missing.png", state: StateFailed})

	if tr.IsReady() {
		t.Error("tracker with a failed handle reports ready")
	}
	failed := tr.Failed()
	if len(failed) != 1 || failed[0].Path() != "missing.png" {
		t.Errorf("Failed() = %v", failed)
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoader_LoadsAndCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"hero.png":   {Data: pngBytes(t, 128, 64)},
		"broken.png": {Data: []byte("not a png")},
	}
	l := NewLoader(fsys)

	hero := l.Load("hero.png")
	if again := l.Load("hero.png"); again != hero {
		t.Error("Load returned a new handle for a cached path")
	}
	broken := l.Load("broken.png")
	missing := l.Load("missing.png")

	if err := l.Wait(); err == nil {
		t.Error("Wait() = nil, want the first decode failure")
	}

	if hero.State() != StateLoaded {
		t.Fatalf("hero state = %v", hero.State())
	}
	if b := hero.Image().Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("hero bounds = %v", b)
	}
	for _, h := range []*Image{broken, missing} {
		if h.State() != StateFailed {
			t.Errorf("%s state = %v, want failed", h.Path(), h.State())
		}
		if h.Err() == nil {
			t.Errorf("%s has no error", h.Path())
		}
		if h.Image() != nil {
			t.Errorf("%s returned an image", h.Path())
		}
	}
}

func TestSprites_Embedded(t *testing.T) {
	l := NewLoader(Sprites())
	h := l.Load("bucko/intro.png")
	if err := l.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if b := h.Image().Bounds(); b.Dx() != 16*64 || b.Dy() != 64 {
		t.Errorf("intro sheet bounds = %v, want 16 tiles of 64", b)
	}
}
