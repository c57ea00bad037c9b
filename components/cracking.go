package components

import (
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi"
)

// CrackingData is the singleton for the egg cracking minigame.
type CrackingData struct {
	Phase  config.CrackingPhase
	Health uint8
	Parts  []donburi.Entity // punches in config.PunchParts order, then guns
	Crack  donburi.Entity
	Toggle int // which fist the next single or fast punch uses

	// Player eases the crack in on entry and out when leaving. Its clips
	// target index 0, the crack.
	Player *animations.Player
	Ease   *animations.Clip
	Fade   *animations.Clip

	RevealTimer float64
	Revealed    bool
	Damage      uint8 // damage dealt in the current tick
}

// Punches returns the punch part entities.
func (c *CrackingData) Punches() []donburi.Entity {
	return c.Parts[:len(config.PunchParts)]
}

// Guns returns the gun part entities.
func (c *CrackingData) Guns() []donburi.Entity {
	return c.Parts[len(config.PunchParts):]
}

// DamageLevel buckets the remaining health into the six crack frames.
func (c *CrackingData) DamageLevel() int {
	switch h := c.Health; {
	case h == 255:
		return 0
	case h >= 192:
		return 1
	case h >= 128:
		return 2
	case h >= 64:
		return 3
	case h >= 1:
		return 4
	}
	return 5
}

var Cracking = donburi.NewComponentType[CrackingData]()

// CrackingPartData marks a punch or gun sprite spawned by the minigame.
type CrackingPartData struct {
	Sheet string
}

var CrackingPart = donburi.NewComponentType[CrackingPartData]()
