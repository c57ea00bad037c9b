package factory

import (
	"fmt"

	"github.com/automoto/monkebucko/assets/animations"
	cfg "github.com/automoto/monkebucko/config"
)

// GenerateAnimation builds the frame animation for a named sheet of the
// given table. An unknown key is a configuration error.
func GenerateAnimation(sheets map[string]cfg.SheetDef, key string) (*animations.Animation, cfg.SheetDef) {
	def, ok := sheets[key]
	if !ok {
		panic(fmt.Sprintf("No sheet definition found for key: %s", key))
	}
	anim := animations.NewAnimation(0, def.Last(), def.FPS)
	if def.Looping {
		anim.WithLooping()
	}
	return anim, def
}
