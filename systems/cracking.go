package systems

import (
	"log"

	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/messages"
	"github.com/automoto/monkebucko/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// BeginCracking switches the game into the egg cracking minigame.
func BeginCracking(ecs *ecs.ECS) error {
	d := getDirector(ecs)
	if d == nil {
		return ErrNoDirector
	}
	if _, ok := components.Cracking.First(ecs.World); ok {
		return nil
	}

	gs := getOrCreateGameState(ecs)
	gs.State = cfg.GameStateCracking
	factory.CreateCracking(ecs, d.Loader, gs.Progress.Flags.Has(components.FlagCrackOpen))

	in := getOrCreateInteraction(ecs)
	in.MovementEnabled = false
	log.Printf("[cracking] started")
	return nil
}

// RegisterCrackingHandlers counts hits: every finished or wrapped part
// animation while the attack is held deals one point of damage.
func RegisterCrackingHandlers(w donburi.World) {
	hit := func(w donburi.World, e donburi.Entity) {
		entry, ok := components.Cracking.First(w)
		if !ok {
			return
		}
		c := components.Cracking.Get(entry)
		if !attacking(w) || !isPart(c, e) {
			return
		}
		if c.Damage < 255 {
			c.Damage++
		}
	}
	messages.AnimationFinished.Subscribe(w, func(w donburi.World, ev messages.AnimationFinishedEvent) {
		hit(w, ev.Entity)
	})
	messages.AnimationLooped.Subscribe(w, func(w donburi.World, ev messages.AnimationLoopedEvent) {
		hit(w, ev.Entity)
	})
}

func attacking(w donburi.World) bool {
	entry, ok := components.Input.First(w)
	if !ok {
		return false
	}
	return components.Input.Get(entry).Current[cfg.ActionInteract]
}

func isPart(c *components.CrackingData, e donburi.Entity) bool {
	for _, p := range c.Parts {
		if p == e {
			return true
		}
	}
	return false
}

// UpdateCracking runs the minigame. It must run after messages.Drain so the
// damage of this tick is counted.
func UpdateCracking(ecs *ecs.ECS) {
	entry, ok := components.Cracking.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cracking.Get(entry)
	input := getOrCreateInput(ecs)
	gs := getOrCreateGameState(ecs)
	dt := cfg.C.TickSeconds()

	crack := ecs.World.Entry(c.Crack)
	c.Player.Advance(dt)
	c.Player.Sample(func(curve *animations.Curve, v dmath.Vec2) {
		if curve.Target == factory.CrackTarget && curve.Channel == animations.ChannelScale {
			components.Transform.Get(crack).Scale = v
		}
	})

	applyDamage(ecs, c, gs)

	interact := GetAction(input, cfg.ActionInteract)
	open := gs.Progress.Flags.Has(components.FlagCrackOpen)

	switch c.Phase {
	case cfg.CrackingReady:
		if !c.Revealed {
			c.RevealTimer -= dt
			if c.RevealTimer <= 0 {
				c.Revealed = true
				components.Visibility.Get(crack).Visible = true
			}
		}
		if GetAction(input, cfg.ActionCancel).JustPressed {
			leaveCracking(ecs)
			return
		}
		if c.Revealed && interact.JustPressed {
			c.Phase = cfg.CrackingEasing
			c.Player.Play(c.Ease)
		}
		return

	case cfg.CrackingEasing:
		if !c.Player.AllFinished() {
			return
		}
		if open {
			if GetAction(input, cfg.ActionJump).JustPressed {
				startFading(c)
			}
			return
		}
		setCrackingPhase(ecs, c, cfg.CrackingPunch)
		return

	case cfg.CrackingFading:
		if c.Player.AllFinished() {
			leaveCracking(ecs)
		}
		return
	}

	// Attack phases.
	if GetAction(input, cfg.ActionCancel).JustPressed {
		hideParts(ecs, c)
		c.Player.Stop()
		components.Transform.Get(crack).Scale = dmath.Vec2{X: 1, Y: 1}
		c.Phase = cfg.CrackingReady
		return
	}
	if open && GetAction(input, cfg.ActionJump).JustPressed {
		hideParts(ecs, c)
		startFading(c)
		return
	}
	if GetAction(input, cfg.ActionSwap).JustPressed && !interact.Pressed {
		if next := c.Phase.Next(); next != c.Phase {
			setCrackingPhase(ecs, c, next)
		}
		return
	}

	switch c.Phase {
	case cfg.CrackingPunch:
		updateSinglePunch(ecs, c, interact)
	case cfg.CrackingFastPunch:
		updateFastPunch(ecs, c, interact)
	case cfg.CrackingQuadPunch:
		updateQuadPunch(ecs, c, interact)
	case cfg.CrackingViolence:
		updateViolence(ecs, c, interact)
	}
}

func applyDamage(ecs *ecs.ECS, c *components.CrackingData, gs *components.GameStateData) {
	if c.Damage == 0 {
		return
	}
	if c.Damage >= c.Health {
		c.Health = 0
	} else {
		c.Health -= c.Damage
	}
	c.Damage = 0

	level := c.DamageLevel()
	components.Animation.Get(ecs.World.Entry(c.Crack)).Set(animations.SetFrame(level))
	if level == 5 && !gs.Progress.Flags.Has(components.FlagCrackOpen) {
		gs.Progress.Flags.Insert(components.FlagCrackOpen)
		log.Printf("[cracking] egg is open")
	}
}

func startFading(c *components.CrackingData) {
	c.Phase = cfg.CrackingFading
	c.Player.Play(c.Fade)
}

// leaveCracking returns to the top-down game and saves.
func leaveCracking(ecs *ecs.ECS) {
	factory.DestroyCracking(ecs.World)
	gs := getOrCreateGameState(ecs)
	gs.State = cfg.GameStateTopDown
	returnFocus(ecs)
	log.Printf("[cracking] left")
	SaveProgress(ecs)
}

func setCrackingPhase(ecs *ecs.ECS, c *components.CrackingData, phase cfg.CrackingPhase) {
	hideParts(ecs, c)
	c.Phase = phase
	c.Toggle = 0

	switch phase {
	case cfg.CrackingPunch, cfg.CrackingFastPunch:
		showParts(ecs, c.Punches()[:2])
	case cfg.CrackingQuadPunch:
		showParts(ecs, c.Punches())
	case cfg.CrackingViolence:
		showParts(ecs, c.Punches()[:2])
	}
	log.Printf("[cracking] %s", phase)
}

func showParts(ecs *ecs.ECS, parts []donburi.Entity) {
	for _, e := range parts {
		entry := ecs.World.Entry(e)
		components.Visibility.Get(entry).Visible = true
		components.Animation.Get(entry).Set(animations.SetFrame(0))
	}
}

func hideParts(ecs *ecs.ECS, c *components.CrackingData) {
	for _, e := range c.Parts {
		entry := ecs.World.Entry(e)
		components.Visibility.Get(entry).Visible = false
		components.Animation.Get(entry).Set(animations.SetFrame(0))
	}
}

func setPart(ecs *ecs.ECS, e donburi.Entity, anim *animations.Animation) {
	components.Animation.Get(ecs.World.Entry(e)).Set(anim)
}

func updateSinglePunch(ecs *ecs.ECS, c *components.CrackingData, interact components.ActionState) {
	fist := c.Punches()[c.Toggle]
	if interact.JustPressed {
		setPart(ecs, fist, animations.SetFrame(1))
	}
	if interact.JustReleased {
		setPart(ecs, fist, animations.SetFrame(0))
		c.Toggle = 1 - c.Toggle
	}
}

func updateFastPunch(ecs *ecs.ECS, c *components.CrackingData, interact components.ActionState) {
	lower := c.Punches()[:2]
	if interact.JustPressed {
		for i, e := range lower {
			stagger := float64((i+c.Toggle)%2) * cfg.Cracking.FastPunchDelay
			setPart(ecs, e, animations.NewAnimation(0, 1, cfg.Cracking.FastPunchFPS).WithDelay(stagger).WithLooping())
		}
	}
	if interact.JustReleased {
		for _, e := range lower {
			setPart(ecs, e, animations.SetFrame(0))
		}
		c.Toggle = 1 - c.Toggle
	}
}

func updateQuadPunch(ecs *ecs.ECS, c *components.CrackingData, interact components.ActionState) {
	if interact.JustPressed {
		for i, e := range c.Punches() {
			stagger := float64(i) * cfg.Cracking.QuadPunchStagger
			setPart(ecs, e, animations.NewAnimation(0, 1, cfg.Cracking.QuadPunchFPS).WithDelay(stagger).WithLooping())
		}
	}
	if interact.JustReleased {
		for _, e := range c.Punches() {
			setPart(ecs, e, animations.SetFrame(0))
		}
	}
}

func updateViolence(ecs *ecs.ECS, c *components.CrackingData, interact components.ActionState) {
	if interact.JustPressed {
		for _, e := range c.Punches() {
			components.Visibility.Get(ecs.World.Entry(e)).Visible = false
		}
		for i, e := range c.Guns() {
			gun := cfg.Cracking.Guns[i]
			entry := ecs.World.Entry(e)
			components.Visibility.Get(entry).Visible = true
			components.Animation.Get(entry).Set(animations.NewAnimation(0, gun.Frames-1, gun.FPS).WithLooping())
		}
	}
	if interact.JustReleased {
		for _, e := range c.Guns() {
			entry := ecs.World.Entry(e)
			components.Visibility.Get(entry).Visible = false
			components.Animation.Get(entry).Set(animations.SetFrame(0))
		}
		showParts(ecs, c.Punches()[:2])
	}
}
