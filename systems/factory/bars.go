package factory

import (
	"github.com/automoto/monkebucko/archetypes"
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// Targets of the bar clips.
const (
	BarUpper = 0
	BarLower = 1
)

// BarPositions returns the top-left y of the upper and lower bars when they
// are fully in and fully out.
func BarPositions() (upperIn, upperOut, lowerIn, lowerOut float64) {
	h := float64(cfg.C.Height)
	return 0, -cfg.Bars.Height, h - cfg.Bars.Height, h
}

// CreateCinematicBars spawns the persistent letterbox bars, parked offscreen.
func CreateCinematicBars(ecs *ecs.ECS) *donburi.Entry {
	upperIn, upperOut, lowerIn, lowerOut := BarPositions()

	fn := animations.MustLookupEase(cfg.Bars.Ease)
	clip := func(upperFrom, upperTo, lowerFrom, lowerTo float64) *animations.Clip {
		c := &animations.Clip{}
		c.AddCurve(animations.NewCurve(BarUpper, animations.ChannelTranslation,
			dmath.Vec2{Y: upperFrom}, dmath.Vec2{Y: upperTo}, 0, cfg.Bars.Duration, fn))
		c.AddCurve(animations.NewCurve(BarLower, animations.ChannelTranslation,
			dmath.Vec2{Y: lowerFrom}, dmath.Vec2{Y: lowerTo}, 0, cfg.Bars.Duration, fn))
		c.AddEvent(animations.Event{Kind: animations.EventComplete, At: cfg.Bars.Duration})
		return c
	}

	bar := func(y float64) donburi.Entity {
		entry := archetypes.Bar.SpawnOn(ecs, cfg.LayerOverlay)
		components.Rect.Set(entry, &components.RectData{
			Width:  float64(cfg.C.Width),
			Height: cfg.Bars.Height,
		})
		components.Transform.Set(entry, &components.TransformData{
			Position: dmath.Vec2{Y: y},
			Scale:    dmath.Vec2{X: 1, Y: 1},
			Z:        cfg.ZEffects,
		})
		components.Visibility.Set(entry, &components.VisibilityData{Visible: true})
		return entry.Entity()
	}

	bars := archetypes.CinematicBars.Spawn(ecs)
	components.CinematicBars.Set(bars, &components.CinematicBarsData{
		Player: animations.NewPlayer(),
		In:     clip(upperOut, upperIn, lowerOut, lowerIn),
		Out:    clip(upperIn, upperOut, lowerIn, lowerOut),
		Upper:  bar(upperOut),
		Lower:  bar(lowerOut),
	})
	return bars
}
