package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TransformData places an entity on screen. Position is the sprite centre.
type TransformData struct {
	Position dmath.Vec2
	Scale    dmath.Vec2
	Z        float64
}

var Transform = donburi.NewComponentType[TransformData]()

type VisibilityData struct {
	Visible bool
}

var Visibility = donburi.NewComponentType[VisibilityData]()

// RectData is a solid rectangle drawn from its top-left corner.
type RectData struct {
	Width  float64
	Height float64
}

var Rect = donburi.NewComponentType[RectData]()
