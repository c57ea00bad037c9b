package factory

import (
	"github.com/automoto/monkebucko/archetypes"
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// CrackTarget is the curve target of the crack in the cracking clips.
const CrackTarget = 0

// partOffsets place the punch parts around the crack, in units of
// cfg.Cracking.PartSpacing.
var partOffsets = []dmath.Vec2{
	{X: -1.5, Y: 2},
	{X: 1.5, Y: 2},
	{X: -3, Y: 0},
	{X: 3, Y: 0},
}

// CreateCracking spawns the cracking minigame: the crack, hidden until
// revealed, and the punch and gun parts, hidden until their phase.
func CreateCracking(ecs *ecs.ECS, loader components.Loader, open bool) *donburi.Entry {
	origin := cfg.Cracking.Origin
	spacing := cfg.Cracking.PartSpacing

	data := &components.CrackingData{
		Phase:       cfg.CrackingReady,
		Health:      cfg.Cracking.StartHealth,
		Player:      animations.NewPlayer(),
		RevealTimer: cfg.Cracking.RevealDelay,
	}
	if open {
		data.Health = 0
		data.RevealTimer = cfg.Cracking.RevealDelayOpen
	}

	zoom := dmath.Vec2{X: cfg.Cracking.CrackScale, Y: cfg.Cracking.CrackScale}
	data.Ease = &animations.Clip{}
	data.Ease.AddCurve(animations.NewCurve(CrackTarget, animations.ChannelScale,
		dmath.Vec2{X: 1, Y: 1}, zoom, 0, cfg.Cracking.EaseDuration, animations.MustLookupEase("in-out-expo")))
	data.Fade = &animations.Clip{}
	data.Fade.AddCurve(animations.NewCurve(CrackTarget, animations.ChannelScale,
		zoom, dmath.Vec2{}, 0, cfg.Cracking.EaseDuration, animations.MustLookupEase("in-out-expo")))

	part := func(sheet string, pos dmath.Vec2, scale float64) donburi.Entity {
		def := cfg.CrackingSheets[sheet]
		entry := archetypes.CrackingPart.SpawnOn(ecs, cfg.LayerDefault)
		components.CrackingPart.Set(entry, &components.CrackingPartData{Sheet: sheet})
		components.Sprite.Set(entry, &components.SpriteData{
			Sheet:    loader.Load(def.Path),
			TileSize: cfg.Cutscene.ElementTileSize,
		})
		components.Animation.Set(entry, &components.AnimationData{Current: animations.SetFrame(0)})
		components.Transform.Set(entry, &components.TransformData{
			Position: pos,
			Scale:    dmath.Vec2{X: scale, Y: scale},
			Z:        cfg.ZSprites,
		})
		components.Visibility.Set(entry, &components.VisibilityData{Visible: false})
		return entry.Entity()
	}

	for i, sheet := range cfg.PunchParts {
		off := partOffsets[i]
		pos := dmath.Vec2{X: origin.X + off.X*spacing, Y: origin.Y + off.Y*spacing}
		data.Parts = append(data.Parts, part(sheet, pos, cfg.Cracking.PartScale))
	}
	for i := range cfg.Cracking.Guns {
		pos := dmath.Vec2{X: origin.X + (float64(i)-1.5)*2*spacing, Y: origin.Y + 3*spacing}
		data.Parts = append(data.Parts, part(gunSheet(i), pos, cfg.Cracking.PartScale))
	}

	data.Crack = part("crack", origin, 1)
	crack := ecs.World.Entry(data.Crack)
	components.Animation.Get(crack).Set(animations.SetFrame(data.DamageLevel()))
	components.Transform.Get(crack).Z = cfg.ZBackground

	entry := archetypes.Cracking.Spawn(ecs)
	components.Cracking.Set(entry, data)
	return entry
}

func gunSheet(i int) string {
	return [...]string{"gun_0", "gun_1", "gun_2", "gun_3"}[i]
}

// DestroyCracking removes every entity of the minigame.
func DestroyCracking(w donburi.World) {
	var doomed []donburi.Entity
	tags.CrackingScene.Each(w, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, e := range doomed {
		w.Remove(e)
	}
}
