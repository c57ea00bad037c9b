package archetypes

import (
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Director = newArchetype(
		components.Director,
	)
	CutsceneRoot = newArchetype(
		tags.CutsceneRoot,
		components.Cutscene,
		components.Visibility,
	)
	Element = newArchetype(
		tags.Element,
		components.Element,
		components.Sprite,
		components.Animation,
		components.Transform,
		components.Visibility,
	)
	CinematicBars = newArchetype(
		components.CinematicBars,
	)
	Bar = newArchetype(
		tags.Bar,
		components.Rect,
		components.Transform,
		components.Visibility,
	)
	InteractionPanel = newArchetype(
		components.InteractionPanel,
	)
	Interactable = newArchetype(
		tags.Interactable,
		components.EntityInteraction,
		components.Sprite,
		components.Animation,
		components.Transform,
		components.Visibility,
	)
	Cracking = newArchetype(
		tags.CrackingScene,
		components.Cracking,
	)
	CrackingPart = newArchetype(
		tags.CrackingScene,
		components.CrackingPart,
		components.Sprite,
		components.Animation,
		components.Transform,
		components.Visibility,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity on the default layer.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return a.SpawnOn(ecs, cfg.LayerDefault, cs...)
}

func (a *archetype) SpawnOn(ecs *ecs.ECS, layer ecs.LayerID, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.Create(
		layer,
		append(a.components, cs...)...,
	))
}
