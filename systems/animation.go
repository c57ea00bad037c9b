package systems

import (
	"fmt"

	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations steps every frame animation by one tick and publishes
// completion and wrap events.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := cfg.C.TickSeconds()
	components.Animation.Each(ecs.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry).Current
		if anim == nil {
			return
		}
		if !entry.HasComponent(components.Sprite) {
			panic(fmt.Sprintf("animated entity %v has no sprite", entry.Entity()))
		}

		switch anim.Update(dt) {
		case animations.SignalFinished:
			messages.AnimationFinished.Publish(ecs.World, messages.AnimationFinishedEvent{Entity: entry.Entity()})
		case animations.SignalLooped:
			messages.AnimationLooped.Publish(ecs.World, messages.AnimationLoopedEvent{Entity: entry.Entity()})
		}
	})
}
