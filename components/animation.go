package components

import (
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Current *animations.Animation
}

// Set replaces the current animation wholesale. Nothing carries over from the
// previous one.
func (a *AnimationData) Set(anim *animations.Animation) {
	a.Current = anim
}

var Animation = donburi.NewComponentType[AnimationData]()
