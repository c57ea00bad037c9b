package systems

import (
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimelines advances the clip of every cutscene instance, applies the
// events it crossed, then samples its curves into element transforms.
func UpdateTimelines(ecs *ecs.ECS) {
	dt := cfg.C.TickSeconds()
	components.Cutscene.Each(ecs.World, func(entry *donburi.Entry) {
		cs := components.Cutscene.Get(entry)
		for _, ev := range cs.Player.Advance(dt) {
			applyTimelineEvent(ecs.World, cs.Elements, ev)
		}
		cs.Player.Sample(func(c *animations.Curve, v dmath.Vec2) {
			sampleInto(ecs.World, cs.Elements, c, v)
		})
	})
}

func applyTimelineEvent(w donburi.World, targets []donburi.Entity, ev animations.Event) {
	if ev.Kind == animations.EventComplete || ev.Target < 0 || ev.Target >= len(targets) {
		return
	}
	entry := w.Entry(targets[ev.Target])
	anim := components.Animation.Get(entry).Current

	switch ev.Kind {
	case animations.EventClipStarted:
		anim.Play()
	case animations.EventActivate:
		components.Visibility.Get(entry).Visible = true
		anim.Play()
	case animations.EventDeactivate:
		components.Visibility.Get(entry).Visible = false
		anim.Pause()
	}
}

func sampleInto(w donburi.World, targets []donburi.Entity, c *animations.Curve, v dmath.Vec2) {
	if c.Target < 0 || c.Target >= len(targets) {
		return
	}
	tr := components.Transform.Get(w.Entry(targets[c.Target]))
	switch c.Channel {
	case animations.ChannelTranslation:
		tr.Position = v
	case animations.ChannelScale:
		tr.Scale = v
	}
}
