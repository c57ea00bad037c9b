package systems

import "github.com/yohamta/donburi"

// RegisterHandlers subscribes every system that reacts to events. Call it
// once per world, before the first tick.
func RegisterHandlers(w donburi.World) {
	RegisterCutsceneHandlers(w)
	RegisterInteractionHandlers(w)
	RegisterCrackingHandlers(w)
}
