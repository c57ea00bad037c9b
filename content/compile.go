package content

import (
	"fmt"

	"github.com/automoto/monkebucko/assets/animations"
)

// TextSeed is what the text animator is seeded with when a line starts.
type TextSeed struct {
	Text  string
	Speed float64
	Delay *float64
}

// Timeline is a compiled cutscene: one clip and one text seed per line.
type Timeline struct {
	Clips []*animations.Clip
	Texts []TextSeed
}

func (t *Timeline) Len() int { return len(t.Clips) }

// Compile turns the authored lines of c into playable clips. Curves target
// element indices; translate and scale actions also emit clip-started and
// clip-ended events for their element.
func Compile(c *Cutscene) (*Timeline, error) {
	tl := &Timeline{
		Clips: make([]*animations.Clip, 0, len(c.Lines)),
		Texts: make([]TextSeed, 0, len(c.Lines)),
	}

	for li, line := range c.Lines {
		clip := &animations.Clip{}
		for ai, action := range line.Actions {
			if err := addAction(clip, len(c.Elements), action); err != nil {
				return nil, fmt.Errorf("content: %s line %d action %d: %w", c.ID, li, ai, err)
			}
		}
		tl.Clips = append(tl.Clips, clip)
		tl.Texts = append(tl.Texts, TextSeed{
			Text:  line.DisplayText(),
			Speed: line.Speed,
			Delay: line.Delay,
		})
	}
	return tl, nil
}

// MustCompile is Compile for content known to be valid.
func MustCompile(c *Cutscene) *Timeline {
	tl, err := Compile(c)
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", c.ID, err))
	}
	return tl
}

func addAction(clip *animations.Clip, elements int, a Action) error {
	if a.Element < 0 || a.Element >= elements {
		return fmt.Errorf("%w: %d of %d", ErrElementIndex, a.Element, elements)
	}

	switch a.Mode {
	case ModeActivate:
		clip.AddEvent(animations.Event{Target: a.Element, Kind: animations.EventActivate, At: a.Delay})
		return nil
	case ModeDeactivate:
		clip.AddEvent(animations.Event{Target: a.Element, Kind: animations.EventDeactivate, At: a.Delay})
		return nil
	}

	fn, err := animations.LookupEase(a.Ease)
	if err != nil {
		return err
	}
	channel := animations.ChannelTranslation
	if a.Mode == ModeScale {
		channel = animations.ChannelScale
	}
	curve := animations.NewCurve(a.Element, channel, a.Start, a.End, a.Delay, a.Duration, fn)
	clip.AddCurve(curve)
	clip.AddEvent(animations.Event{Target: a.Element, Kind: animations.EventClipStarted, At: a.Delay})
	clip.AddEvent(animations.Event{Target: a.Element, Kind: animations.EventClipEnded, At: curve.End()})
	return nil
}
