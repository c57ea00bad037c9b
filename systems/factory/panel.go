package factory

import (
	"github.com/automoto/monkebucko/archetypes"
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInteractionPanel spawns the bottom text panel, replacing any panel
// already shown. An empty text leaves the panel blank until it is seeded.
func CreateInteractionPanel(ecs *ecs.ECS, text string, speed, opacity float64) *donburi.Entry {
	DestroyInteractionPanel(ecs.World)

	panel := archetypes.InteractionPanel.SpawnOn(ecs, cfg.LayerOverlay)
	data := &components.InteractionPanelData{Opacity: opacity}
	if text != "" {
		data.Animator = animations.NewTextAnimator(text, speed)
	}
	components.InteractionPanel.Set(panel, data)
	return panel
}

func DestroyInteractionPanel(w donburi.World) {
	if entry, ok := components.InteractionPanel.First(w); ok {
		w.Remove(entry.Entity())
	}
}
