package components

import (
	"github.com/automoto/monkebucko/assets"
	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/yohamta/donburi"
)

// CutsceneData lives on the root entity of a spawned cutscene instance.
type CutsceneData struct {
	ID       content.CutsceneID
	Elements []donburi.Entity
	Timeline *content.Timeline
	Player   *animations.Player
	Tracker  assets.Tracker
}

var Cutscene = donburi.NewComponentType[CutsceneData]()

// ElementData links an element sprite back to its cutscene root.
type ElementData struct {
	Root  donburi.Entity
	Index int
}

var Element = donburi.NewComponentType[ElementData]()

// Loader hands out asset handles by path.
type Loader interface {
	Load(path string) *assets.Image
}

// DirectorData is the singleton owning cutscene progression. Current is the
// one cutscene with advancement focus, CutsceneNone when idle.
type DirectorData struct {
	Registry *content.Registry
	Loader   Loader

	Phase    config.CutscenePhase
	Current  content.CutsceneID
	Instance donburi.Entity
	Cursor   int

	Preload []content.CutsceneID

	// Loading exits once both latches are set, in either order.
	Loaded bool
	BarsIn bool

	BarsOut  bool
	Advances int
	Cancel   bool
	Aborted  bool

	LoadElapsed float64
}

// Active reports whether a cutscene currently has focus.
func (d *DirectorData) Active() bool {
	return d.Current != content.CutsceneNone
}

var Director = donburi.NewComponentType[DirectorData]()

// CinematicBarsData drives the letterbox bars.
type CinematicBarsData struct {
	Player *animations.Player
	In     *animations.Clip
	Out    *animations.Clip
	Upper  donburi.Entity
	Lower  donburi.Entity
}

var CinematicBars = donburi.NewComponentType[CinematicBarsData]()
