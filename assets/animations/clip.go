package animations

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Channel is the transform property a curve writes.
type Channel int

const (
	ChannelTranslation Channel = iota
	ChannelScale
)

// Curve eases a 2D value of one target between From and To over
// [Start, Start+Duration]. Sampling is clamped: before Start it holds From,
// after the end it holds To.
type Curve struct {
	Target   int
	Channel  Channel
	From     dmath.Vec2
	To       dmath.Vec2
	Start    float64
	Duration float64

	x, y *gween.Tween
}

func NewCurve(target int, channel Channel, from, to dmath.Vec2, start, duration float64, fn ease.TweenFunc) *Curve {
	if fn == nil {
		fn = ease.Linear
	}
	return &Curve{
		Target:   target,
		Channel:  channel,
		From:     from,
		To:       to,
		Start:    start,
		Duration: duration,
		x:        gween.New(float32(from.X), float32(to.X), float32(duration), fn),
		y:        gween.New(float32(from.Y), float32(to.Y), float32(duration), fn),
	}
}

func (c *Curve) End() float64 { return c.Start + c.Duration }

// Sample evaluates the curve at clip time t.
func (c *Curve) Sample(t float64) dmath.Vec2 {
	local := float32(t - c.Start)
	x, _ := c.x.Set(local)
	y, _ := c.y.Set(local)
	return dmath.Vec2{X: float64(x), Y: float64(y)}
}

// EventKind identifies a discrete timeline event.
type EventKind int

const (
	// EventClipStarted unpauses the target's frame animation.
	EventClipStarted EventKind = iota
	EventClipEnded
	// EventActivate shows the target and unpauses its frame animation.
	EventActivate
	// EventDeactivate hides the target and pauses its frame animation.
	EventDeactivate
	// EventComplete marks the end of a clip; Target is unused.
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventClipStarted:
		return "clip-started"
	case EventClipEnded:
		return "clip-ended"
	case EventActivate:
		return "activate"
	case EventDeactivate:
		return "deactivate"
	case EventComplete:
		return "complete"
	}
	return "unknown"
}

type Event struct {
	Target int
	Kind   EventKind
	At     float64
}

// Clip is one compiled line: continuous curves plus discrete events.
type Clip struct {
	Curves   []*Curve
	Events   []Event
	Duration float64
}

func (c *Clip) AddCurve(curve *Curve) {
	c.Curves = append(c.Curves, curve)
	if end := curve.End(); end > c.Duration {
		c.Duration = end
	}
}

// AddEvent inserts an event keeping Events ordered by time. Events at equal
// times keep insertion order.
func (c *Clip) AddEvent(e Event) {
	i := sort.Search(len(c.Events), func(i int) bool { return c.Events[i].At > e.At })
	c.Events = append(c.Events, Event{})
	copy(c.Events[i+1:], c.Events[i:])
	c.Events[i] = e
	if e.At > c.Duration {
		c.Duration = e.At
	}
}

// Player plays a single clip at a time.
type Player struct {
	clip    *Clip
	time    float64
	speed   float64
	next    int // index of the first event not yet fired
	playing bool
}

func NewPlayer() *Player {
	return &Player{speed: 1}
}

// Play stops any clip in flight and starts clip from time zero at normal
// speed.
func (p *Player) Play(clip *Clip) {
	p.clip = clip
	p.time = 0
	p.speed = 1
	p.next = 0
	p.playing = clip != nil
}

func (p *Player) Stop() {
	p.clip = nil
	p.time = 0
	p.speed = 1
	p.next = 0
	p.playing = false
}

// AdjustSpeed multiplies the current playback speed.
func (p *Player) AdjustSpeed(multiplier float64) {
	p.speed *= multiplier
}

func (p *Player) Speed() float64 { return p.speed }
func (p *Player) Time() float64  { return p.time }
func (p *Player) Clip() *Clip    { return p.clip }

func (p *Player) IsPlaying(clip *Clip) bool {
	return p.playing && p.clip == clip
}

// AllFinished is true when nothing is playing or the clip time has reached
// its duration. An empty clip is finished as soon as it is played.
func (p *Player) AllFinished() bool {
	if !p.playing || p.clip == nil {
		return true
	}
	return p.time >= p.clip.Duration && p.next >= len(p.clip.Events)
}

// Advance moves clip time forward by dt scaled by the playback speed and
// returns the events crossed, in time order. Each event is returned once.
func (p *Player) Advance(dt float64) []Event {
	if !p.playing || p.clip == nil {
		return nil
	}
	p.time += dt * p.speed
	if p.time > p.clip.Duration {
		p.time = p.clip.Duration
	}

	start := p.next
	for p.next < len(p.clip.Events) && p.clip.Events[p.next].At <= p.time {
		p.next++
	}
	if start == p.next {
		return nil
	}
	return p.clip.Events[start:p.next]
}

// Sample calls fn for every curve of the playing clip at the current time,
// in authored order so later curves overwrite earlier ones.
func (p *Player) Sample(fn func(c *Curve, v dmath.Vec2)) {
	if !p.playing || p.clip == nil {
		return
	}
	for _, c := range p.clip.Curves {
		fn(c, c.Sample(p.time))
	}
}
