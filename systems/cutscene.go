package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/automoto/monkebucko/messages"
	"github.com/automoto/monkebucko/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoDirector     = errors.New("no cutscene director")
	ErrCutsceneActive = errors.New("cutscene already active")
	ErrAssetLoad      = errors.New("cutscene asset failed to load")
	ErrLoadTimeout    = errors.New("cutscene assets not ready in time")
)

func directorOf(w donburi.World) *components.DirectorData {
	entry, ok := components.Director.First(w)
	if !ok {
		return nil
	}
	return components.Director.Get(entry)
}

// RegisterCutsceneHandlers subscribes the director to the events it waits
// on. The handlers only latch; UpdateCutscene acts on the latches.
func RegisterCutsceneHandlers(w donburi.World) {
	messages.BarsIn.Subscribe(w, func(w donburi.World, _ messages.BarsInEvent) {
		if d := directorOf(w); d != nil {
			d.BarsIn = true
		}
	})
	messages.BarsOut.Subscribe(w, func(w donburi.World, _ messages.BarsOutEvent) {
		if d := directorOf(w); d != nil {
			d.BarsOut = true
		}
	})
	messages.InteractionAdvance.Subscribe(w, func(w donburi.World, _ messages.InteractionAdvanceEvent) {
		if d := directorOf(w); d != nil && d.Phase == cfg.PhasePlaying {
			d.Advances++
		}
	})
	messages.CutsceneCancel.Subscribe(w, func(w donburi.World, _ messages.CutsceneCancelEvent) {
		if d := directorOf(w); d != nil && (d.Phase == cfg.PhaseLoading || d.Phase == cfg.PhasePlaying) {
			d.Cancel = true
		}
	})
}

// BeginCutscene makes id the current cutscene and starts loading it. An id
// with no registered content aborts: the player gets control back and
// CutsceneEnded is sent with Aborted set.
func BeginCutscene(ecs *ecs.ECS, id content.CutsceneID) error {
	d := getDirector(ecs)
	if d == nil {
		return ErrNoDirector
	}
	if d.Active() {
		return fmt.Errorf("begin %s while %s plays: %w", id, d.Current, ErrCutsceneActive)
	}
	return beginCutscene(ecs, d, id, true)
}

func beginCutscene(ecs *ecs.ECS, d *components.DirectorData, id content.CutsceneID, playBars bool) error {
	in := getOrCreateInteraction(ecs)
	in.MovementEnabled = false

	c, err := d.Registry.Lookup(id)
	if err != nil {
		return abortCutscene(ecs, d, id, err)
	}
	root, ok := factory.FindCutscene(ecs.World, id)
	if !ok {
		root, err = factory.CreateCutscene(ecs, c, d.Loader)
		if err != nil {
			return abortCutscene(ecs, d, id, err)
		}
	}

	d.Current = id
	d.Instance = root.Entity()
	d.Phase = cfg.PhaseLoading
	d.Cursor = 0
	d.Loaded = false
	d.BarsIn = !playBars
	d.BarsOut = false
	d.Advances = 0
	d.Cancel = false
	d.Aborted = false
	d.LoadElapsed = 0

	in.State = cfg.InteractionDialogue
	factory.CreateInteractionPanel(ecs, "", 0, cfg.Panel.DialogueOpacity)
	if playBars {
		PlayBarsIn(ecs)
	}

	log.Printf("[cutscene] loading %s", id)
	messages.CutsceneStarted.Publish(ecs.World, messages.CutsceneStartedEvent{ID: id})
	return nil
}

// abortCutscene drops id without running its terminal effects.
func abortCutscene(ecs *ecs.ECS, d *components.DirectorData, id content.CutsceneID, err error) error {
	log.Printf("[cutscene] aborting %s: %v", id, err)

	if d.Instance != donburi.Null {
		factory.DestroyCutscene(ecs.World, d.Instance)
	}
	factory.DestroyInteractionPanel(ecs.World)
	if d.Phase != cfg.PhaseIdle {
		PlayBarsOut(ecs)
	}

	d.Current = content.CutsceneNone
	d.Instance = donburi.Null
	d.Phase = cfg.PhaseIdle
	d.Aborted = true
	returnFocus(ecs)

	messages.CutsceneEnded.Publish(ecs.World, messages.CutsceneEndedEvent{ID: id, Aborted: true})
	return err
}

// UpdateCutscene runs the director state machine. It must run after
// messages.Drain so this tick's latches are set.
func UpdateCutscene(ecs *ecs.ECS) {
	d := getDirector(ecs)
	if d == nil {
		return
	}
	preloadCutscenes(ecs, d)

	switch d.Phase {
	case cfg.PhaseLoading:
		updateLoading(ecs, d)
	case cfg.PhasePlaying:
		updatePlaying(ecs, d)
	case cfg.PhaseEnding:
		if d.BarsOut {
			d.BarsOut = false
			concludeCutscene(ecs, d)
		}
	}
}

func preloadCutscenes(ecs *ecs.ECS, d *components.DirectorData) {
	for _, id := range d.Preload {
		if _, ok := factory.FindCutscene(ecs.World, id); ok {
			continue
		}
		c, err := d.Registry.Lookup(id)
		if err != nil {
			log.Printf("[cutscene] preload: %v", err)
			continue
		}
		if _, err := factory.CreateCutscene(ecs, c, d.Loader); err != nil {
			log.Printf("[cutscene] preload %s: %v", id, err)
			continue
		}
		log.Printf("[cutscene] preloaded %s", id)
	}
	d.Preload = d.Preload[:0]
}

func instanceOf(ecs *ecs.ECS, d *components.DirectorData) (*donburi.Entry, *components.CutsceneData) {
	root := ecs.World.Entry(d.Instance)
	return root, components.Cutscene.Get(root)
}

func updateLoading(ecs *ecs.ECS, d *components.DirectorData) {
	if d.Cancel {
		d.Cancel = false
		enterEnding(ecs, d)
		return
	}

	_, cs := instanceOf(ecs, d)
	if failed := cs.Tracker.Failed(); len(failed) > 0 {
		abortCutscene(ecs, d, d.Current, fmt.Errorf("%w: %s", ErrAssetLoad, failed[0].Path()))
		return
	}

	if cs.Tracker.IsReady() {
		d.Loaded = true
	} else {
		d.LoadElapsed += cfg.C.TickSeconds()
		if d.LoadElapsed >= cfg.Cutscene.LoadTimeout.Seconds() {
			abortCutscene(ecs, d, d.Current, fmt.Errorf("%w after %v", ErrLoadTimeout, cfg.Cutscene.LoadTimeout))
			return
		}
	}

	if d.Loaded && d.BarsIn {
		d.Loaded = false
		d.BarsIn = false
		enterPlaying(ecs, d)
	}
}

func enterPlaying(ecs *ecs.ECS, d *components.DirectorData) {
	root, cs := instanceOf(ecs, d)
	components.Visibility.Get(root).Visible = true

	d.Phase = cfg.PhasePlaying
	d.Cursor = 0
	d.Advances = 0
	log.Printf("[cutscene] playing %s", d.Current)

	if cs.Timeline.Len() == 0 {
		enterEnding(ecs, d)
		return
	}
	playLine(ecs, cs, 0)
}

func updatePlaying(ecs *ecs.ECS, d *components.DirectorData) {
	if d.Cancel {
		d.Cancel = false
		d.Advances = 0
		enterEnding(ecs, d)
		return
	}
	for d.Advances > 0 && d.Phase == cfg.PhasePlaying {
		d.Advances--
		advanceLine(ecs, d)
	}
	d.Advances = 0
}

// advanceLine handles one advance request. Past the last line it ends the
// cutscene. While the current clip is still running it only speeds the clip
// up; the cursor moves on the next request once the clip has finished.
func advanceLine(ecs *ecs.ECS, d *components.DirectorData) {
	_, cs := instanceOf(ecs, d)

	next := d.Cursor + 1
	if next >= cs.Timeline.Len() {
		enterEnding(ecs, d)
		return
	}
	if !cs.Player.AllFinished() {
		cs.Player.AdjustSpeed(cfg.Cutscene.Impatience)
		return
	}

	d.Cursor = next
	playLine(ecs, cs, next)
}

// playLine starts the clip of line i and seeds the panel with its text.
func playLine(ecs *ecs.ECS, cs *components.CutsceneData, i int) {
	cs.Player.Play(cs.Timeline.Clips[i])

	panel := getPanel(ecs)
	if panel == nil {
		factory.CreateInteractionPanel(ecs, "", 0, cfg.Panel.DialogueOpacity)
		panel = getPanel(ecs)
	}
	seed := cs.Timeline.Texts[i]
	anim := animations.NewTextAnimator(seed.Text, getOrCreateInteraction(ecs).RevealSpeed(seed.Speed))
	if seed.Delay != nil {
		anim.WithWaitBefore(*seed.Delay)
	}
	panel.Animator = anim
}

func enterEnding(ecs *ecs.ECS, d *components.DirectorData) {
	d.Phase = cfg.PhaseEnding
	if panel := getPanel(ecs); panel != nil {
		panel.Animator = nil
	}
	log.Printf("[cutscene] ending %s", d.Current)

	if next := runPostEffects(ecs, d.Current); next != content.CutsceneNone {
		concludeCutscene(ecs, d)
		if err := beginCutscene(ecs, d, next, false); err != nil {
			PlayBarsOut(ecs)
		}
		return
	}
	PlayBarsOut(ecs)
}

// runPostEffects applies what finishing id does to the game and returns the
// cutscene that follows it, if any.
func runPostEffects(ecs *ecs.ECS, id content.CutsceneID) content.CutsceneID {
	gs := getOrCreateGameState(ecs)
	switch id {
	case content.CutsceneUckoIntro:
		gs.State = cfg.GameStateBones
		gs.Spawn = cfg.Cutscene.BonesSpawn
		gs.Progress.PositionX = gs.Spawn.X
		gs.Progress.PositionY = gs.Spawn.Y
		gs.Progress.Flags.Insert(components.FlagUckoIntroSeen)
	case content.CutsceneWizuckoWin:
		return content.CutsceneWizuckoIntro
	}
	return content.CutsceneNone
}

// concludeCutscene despawns the current instance and hands control back.
func concludeCutscene(ecs *ecs.ECS, d *components.DirectorData) {
	id := d.Current

	factory.DestroyCutscene(ecs.World, d.Instance)
	factory.DestroyInteractionPanel(ecs.World)

	d.Current = content.CutsceneNone
	d.Instance = donburi.Null
	d.Phase = cfg.PhaseIdle
	d.Cursor = 0
	returnFocus(ecs)

	log.Printf("[cutscene] finished %s", id)
	messages.CutsceneEnded.Publish(ecs.World, messages.CutsceneEndedEvent{ID: id})
	SaveProgress(ecs)
}

// SwapRegistry replaces the content registry. The current cutscene keeps
// its compiled timeline; idle preloaded instances are dropped so they are
// rebuilt from the new content.
func SwapRegistry(ecs *ecs.ECS, r *content.Registry) {
	d := getDirector(ecs)
	if d == nil {
		return
	}
	d.Registry = r

	var stale []donburi.Entity
	components.Cutscene.Each(ecs.World, func(entry *donburi.Entry) {
		if entry.Entity() != d.Instance {
			stale = append(stale, entry.Entity())
		}
	})
	for _, e := range stale {
		factory.DestroyCutscene(ecs.World, e)
	}

	if in := getOrCreateInteraction(ecs); in.Monologues != nil {
		in.Monologues.SetRegistry(r)
	}
	if err := LoadScriptHandlers(r); err != nil {
		log.Printf("Warning: could not reload scripts: %v", err)
	}
	log.Printf("[cutscene] content reloaded: %d cutscenes", len(r.IDs()))
}
