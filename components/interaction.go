package components

import (
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/yohamta/donburi"
)

// InteractionData is the singleton tracking who owns the player's focus.
type InteractionData struct {
	State           config.InteractionStateID
	MovementEnabled bool
	Focus           int     // index into the interactables, ordered by x
	TextSpeed       float64 // multiplier on authored reveal speeds

	Monologues *content.MonologueServer
}

// RevealSpeed scales an authored characters-per-second value by the player's
// text speed setting.
func (i *InteractionData) RevealSpeed(authored float64) float64 {
	if i.TextSpeed <= 0 {
		return authored
	}
	return authored * i.TextSpeed
}

var Interaction = donburi.NewComponentType[InteractionData]()

// InteractionKind selects how an interactable reacts.
type InteractionKind int

const (
	InteractText InteractionKind = iota
	InteractMonologue
	InteractDialogue
	InteractSpecial
)

func (k InteractionKind) String() string {
	switch k {
	case InteractMonologue:
		return "monologue"
	case InteractDialogue:
		return "dialogue"
	case InteractSpecial:
		return "special"
	}
	return "text"
}

// EntityInteractionData is attached to anything the player can interact
// with. Which field is read depends on Kind.
type EntityInteractionData struct {
	Kind      InteractionKind
	Label     string
	Text      string // text id
	Monologue string // monologue id
	Cutscene  content.CutsceneID
	Special   string // special handler name
}

var EntityInteraction = donburi.NewComponentType[EntityInteractionData]()

// InteractionPanelData is the text panel shown along the bottom edge.
type InteractionPanelData struct {
	Animator *animations.TextAnimator
	Opacity  float64
}

// Visible returns the revealed text, empty when nothing is seeded.
func (p *InteractionPanelData) Visible() string {
	if p.Animator == nil {
		return ""
	}
	return p.Animator.Visible()
}

// Busy reports whether text is still being revealed.
func (p *InteractionPanelData) Busy() bool {
	return p.Animator != nil && (p.Animator.IsPlaying() || p.Animator.IsWaiting())
}

var InteractionPanel = donburi.NewComponentType[InteractionPanelData]()
