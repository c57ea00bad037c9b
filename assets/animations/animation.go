package animations

import "fmt"

// SetFrameInterval is the timer used by SetFrame directives. The frame is
// applied on the next update after it elapses.
const SetFrameInterval = 0.001

// Signal reports what a single Update did to the frame index.
type Signal int

const (
	SignalNone Signal = iota
	SignalAdvanced
	SignalLooped
	SignalFinished
)

func (s Signal) String() string {
	switch s {
	case SignalAdvanced:
		return "advanced"
	case SignalLooped:
		return "looped"
	case SignalFinished:
		return "finished"
	}
	return "none"
}

// Animation steps through the frames First..Last of a horizontal sprite
// sheet, one frame per Interval seconds.
type Animation struct {
	First    int
	Last     int
	Interval float64 // seconds per frame
	Delay    float64 // seconds to wait before the timer starts
	Looping  bool

	elapsed  float64
	waited   float64
	frame    int
	playing  bool
	started  bool
	finished bool
}

// NewAnimation creates a playing, non-looping animation over [first, last].
func NewAnimation(first, last int, fps float64) *Animation {
	if first < 0 || first > last {
		panic(fmt.Sprintf("invalid animation range [%d, %d]", first, last))
	}
	if fps <= 0 {
		panic(fmt.Sprintf("invalid animation fps %v", fps))
	}
	return &Animation{
		First:    first,
		Last:     last,
		Interval: 1 / fps,
		frame:    first,
		playing:  true,
	}
}

// SetFrame is a directive that shows exactly one frame and finishes once.
// Used for idle and reset poses.
func SetFrame(index int) *Animation {
	a := NewAnimation(index, index, 1)
	a.Interval = SetFrameInterval
	return a
}

func (a *Animation) WithDelay(seconds float64) *Animation {
	a.Delay = seconds
	return a
}

func (a *Animation) WithLooping() *Animation {
	a.Looping = true
	return a
}

func (a *Animation) WithPaused() *Animation {
	a.playing = false
	return a
}

func (a *Animation) Play()  { a.playing = true }
func (a *Animation) Pause() { a.playing = false }

func (a *Animation) IsPlaying() bool { return a.playing }

// Finished is true once a non-looping animation has signalled completion.
func (a *Animation) Finished() bool { return a.finished }

func (a *Animation) Frame() int { return a.frame }

// ChangeFPS swaps the frame rate and keeps the time already elapsed on the
// current frame.
func (a *Animation) ChangeFPS(fps float64) {
	if fps <= 0 {
		panic(fmt.Sprintf("invalid animation fps %v", fps))
	}
	a.Interval = 1 / fps
}

// Restart rewinds to First and waits out Delay again, without touching the
// playing state.
func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.waited = 0
	a.started = false
	a.finished = false
}

// Update advances the timer by dt seconds. At most one frame step happens
// per call; leftover time past an expiry is dropped with the timer reset.
func (a *Animation) Update(dt float64) Signal {
	if !a.started {
		a.frame = a.First
		a.started = true
	}
	if !a.playing || a.finished {
		return SignalNone
	}

	if a.waited < a.Delay {
		a.waited += dt
		if a.waited < a.Delay {
			return SignalNone
		}
	}

	a.elapsed += dt
	if a.elapsed < a.Interval {
		return SignalNone
	}
	a.elapsed = 0

	switch {
	case a.First == a.Last:
		a.frame = a.First
		a.finished = true
		return SignalFinished
	case a.frame < a.Last:
		a.frame++
		return SignalAdvanced
	case a.Looping:
		a.frame = a.First
		return SignalLooped
	default:
		a.finished = true
		return SignalFinished
	}
}
