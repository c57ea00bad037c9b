package factory

import (
	"github.com/automoto/monkebucko/archetypes"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

type hubProp struct {
	sheet       string
	interaction components.EntityInteractionData
}

// hubProps are laid out left to right in this order.
var hubProps = []hubProp{
	{"sign", components.EntityInteractionData{Kind: components.InteractText, Label: "Sign", Text: "sign"}},
	{"stone", components.EntityInteractionData{Kind: components.InteractMonologue, Label: "Stone", Monologue: "stone"}},
	{"ucko", components.EntityInteractionData{Kind: components.InteractDialogue, Label: "Uckos", Cutscene: content.CutsceneUckoIntro}},
	{"egg", components.EntityInteractionData{Kind: components.InteractSpecial, Label: "Egg", Special: "cracking"}},
	{"ninjucko", components.EntityInteractionData{Kind: components.InteractSpecial, Label: "Well", Special: "well"}},
	{"wizucko", components.EntityInteractionData{Kind: components.InteractSpecial, Label: "Shrine", Special: "shrine"}},
}

// CreateHub spawns the interactables of the hub.
func CreateHub(ecs *ecs.ECS, loader components.Loader) []donburi.Entity {
	width := float64(len(hubProps)-1) * cfg.Hub.Spacing
	left := (float64(cfg.C.Width) - width) / 2

	entities := make([]donburi.Entity, 0, len(hubProps))
	for i, prop := range hubProps {
		anim, def := GenerateAnimation(cfg.PropSheets, prop.sheet)

		entry := archetypes.Interactable.Spawn(ecs)
		interaction := prop.interaction
		components.EntityInteraction.Set(entry, &interaction)
		components.Sprite.Set(entry, &components.SpriteData{
			Sheet:    loader.Load(def.Path),
			TileSize: cfg.Cutscene.ElementTileSize,
		})
		components.Animation.Set(entry, &components.AnimationData{Current: anim})
		components.Transform.Set(entry, &components.TransformData{
			Position: dmath.Vec2{X: left + float64(i)*cfg.Hub.Spacing, Y: cfg.Hub.Baseline},
			Scale:    dmath.Vec2{X: 2, Y: 2},
			Z:        cfg.ZSprites,
		})
		components.Visibility.Set(entry, &components.VisibilityData{Visible: true})
		entities = append(entities, entry.Entity())
	}
	return entities
}
