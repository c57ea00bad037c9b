package assets

// LoadState is the lifecycle of an asynchronously loaded asset.
type LoadState int32

const (
	StateLoading LoadState = iota
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "loading"
}

// Handle is anything whose load completion can be polled.
type Handle interface {
	Path() string
	State() LoadState
}

// Tracker gates progress on a set of handles.
type Tracker struct {
	handles []Handle
}

func (t *Tracker) Push(h Handle) {
	t.handles = append(t.handles, h)
}

// IsReady reports whether every tracked handle has loaded. An empty tracker
// is ready.
func (t *Tracker) IsReady() bool {
	for _, h := range t.handles {
		if h.State() != StateLoaded {
			return false
		}
	}
	return true
}

// Failed returns the handles whose load failed.
func (t *Tracker) Failed() []Handle {
	var failed []Handle
	for _, h := range t.handles {
		if h.State() == StateFailed {
			failed = append(failed, h)
		}
	}
	return failed
}

func (t *Tracker) Len() int { return len(t.handles) }

func (t *Tracker) Clear() {
	t.handles = t.handles[:0]
}
