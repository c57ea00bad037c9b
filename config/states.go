package config

// CutscenePhase is the director's state machine position.
type CutscenePhase int

const (
	PhaseIdle CutscenePhase = iota
	PhaseLoading
	PhasePlaying
	PhaseEnding
)

func (p CutscenePhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseEnding:
		return "ending"
	}
	return "idle"
}

// InteractionStateID is what currently owns the interaction panel.
type InteractionStateID int

const (
	InteractionNone InteractionStateID = iota
	InteractionText
	InteractionMonologue
	InteractionDialogue
)

func (s InteractionStateID) String() string {
	switch s {
	case InteractionText:
		return "text"
	case InteractionMonologue:
		return "monologue"
	case InteractionDialogue:
		return "dialogue"
	}
	return "none"
}

// GameStateID is the top-level mode of play.
type GameStateID int

const (
	GameStateTopDown GameStateID = iota
	GameStateBones
	GameStateCracking
)

func (s GameStateID) String() string {
	switch s {
	case GameStateBones:
		return "bones"
	case GameStateCracking:
		return "cracking"
	}
	return "top-down"
}

// CrackingPhase is the current step of the egg cracking minigame.
type CrackingPhase int

const (
	CrackingReady CrackingPhase = iota
	CrackingEasing
	CrackingPunch
	CrackingFastPunch
	CrackingQuadPunch
	CrackingViolence
	CrackingFading
)

func (p CrackingPhase) String() string {
	switch p {
	case CrackingEasing:
		return "easing"
	case CrackingPunch:
		return "punch"
	case CrackingFastPunch:
		return "fast-punch"
	case CrackingQuadPunch:
		return "quad-punch"
	case CrackingViolence:
		return "violence"
	case CrackingFading:
		return "fading"
	}
	return "ready"
}

// Next is the phase the swap action moves to. Violence is the last attack
// phase; Ready, Easing and Fading are not part of the rotation.
func (p CrackingPhase) Next() CrackingPhase {
	switch p {
	case CrackingPunch:
		return CrackingFastPunch
	case CrackingFastPunch:
		return CrackingQuadPunch
	case CrackingQuadPunch:
		return CrackingViolence
	}
	return p
}
