package systems

import (
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/messages"
	"github.com/automoto/monkebucko/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

func getBars(ecs *ecs.ECS) *components.CinematicBarsData {
	entry, ok := components.CinematicBars.First(ecs.World)
	if !ok {
		return nil
	}
	return components.CinematicBars.Get(entry)
}

// PlayBarsIn stops any bar movement and slides the bars in from the edges.
func PlayBarsIn(ecs *ecs.ECS) {
	if bars := getBars(ecs); bars != nil {
		bars.Player.Play(bars.In)
	}
}

// PlayBarsOut stops any bar movement and slides the bars off screen.
func PlayBarsOut(ecs *ecs.ECS) {
	if bars := getBars(ecs); bars != nil {
		bars.Player.Play(bars.Out)
	}
}

// UpdateBars moves the bars and announces when a direction completes.
func UpdateBars(ecs *ecs.ECS) {
	bars := getBars(ecs)
	if bars == nil {
		return
	}

	for _, ev := range bars.Player.Advance(cfg.C.TickSeconds()) {
		if ev.Kind != animations.EventComplete {
			continue
		}
		if bars.Player.Clip() == bars.In {
			messages.BarsIn.Publish(ecs.World, messages.BarsInEvent{})
		} else {
			messages.BarsOut.Publish(ecs.World, messages.BarsOutEvent{})
		}
	}

	bars.Player.Sample(func(c *animations.Curve, v dmath.Vec2) {
		target := bars.Upper
		if c.Target == factory.BarLower {
			target = bars.Lower
		}
		components.Transform.Get(ecs.World.Entry(target)).Position.Y = v.Y
	})
}
