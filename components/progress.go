package components

import (
	"github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProgressFlags is the persisted set of game-wide flags.
type ProgressFlags uint32

const (
	FlagFirstLaunch ProgressFlags = 1 << iota
	FlagCrackOpen
	FlagUckoIntroSeen
	FlagWizuckoSeen
)

var flagNames = map[string]ProgressFlags{
	"first_launch":    FlagFirstLaunch,
	"crack_open":      FlagCrackOpen,
	"ucko_intro_seen": FlagUckoIntroSeen,
	"wizucko_seen":    FlagWizuckoSeen,
}

// ParseFlag resolves a snake_case flag name.
func ParseFlag(name string) (ProgressFlags, bool) {
	f, ok := flagNames[name]
	return f, ok
}

func (f ProgressFlags) Has(flag ProgressFlags) bool { return f&flag == flag }
func (f *ProgressFlags) Insert(flag ProgressFlags) { *f |= flag }
func (f *ProgressFlags) Remove(flag ProgressFlags) { *f &^= flag }

// ProgressData is one save slot.
type ProgressData struct {
	TimePlayed float64       `json:"timePlayed"` // seconds
	Flags      ProgressFlags `json:"flags"`
	Map        string        `json:"map"`
	PositionX  float64       `json:"positionX"`
	PositionY  float64       `json:"positionY"`
}

// NewProgress is the state of a fresh slot.
func NewProgress() ProgressData {
	return ProgressData{
		Flags:     FlagFirstLaunch,
		Map:       "hub",
		PositionX: config.Progress.FirstSpawn.X,
		PositionY: config.Progress.FirstSpawn.Y,
	}
}

// GameStateData is the singleton for the running session.
type GameStateData struct {
	State       config.GameStateID
	Slot        int
	Progress    ProgressData
	Spawn       dmath.Vec2
	SessionTime float64 // seconds since the last save
}

var GameState = donburi.NewComponentType[GameStateData]()
