package systems

import (
	"testing"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func (h *harness) cracking() *components.CrackingData {
	h.t.Helper()
	entry, ok := components.Cracking.First(h.e.World)
	if !ok {
		h.t.Fatal("no cracking minigame")
	}
	return components.Cracking.Get(entry)
}

func (h *harness) visibleParts() int {
	n := 0
	for _, e := range h.cracking().Parts {
		if components.Visibility.Get(h.e.World.Entry(e)).Visible {
			n++
		}
	}
	return n
}

// startPunching enters the minigame and eases in to the single punch phase.
func startPunching(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t, testLoader(t))
	if err := BeginCracking(h.e); err != nil {
		t.Fatalf("BeginCracking() = %v", err)
	}
	if got := getOrCreateGameState(h.e).State; got != cfg.GameStateCracking {
		t.Fatalf("state = %v", got)
	}

	h.tickUntil("reveal", 600, func() bool { return h.cracking().Revealed })
	h.tap(cfg.ActionInteract)
	if got := h.cracking().Phase; got != cfg.CrackingEasing {
		t.Fatalf("phase after interact = %v, want easing", got)
	}
	h.tickUntil("punch", 400, func() bool { return h.cracking().Phase == cfg.CrackingPunch })
	// Let the reset poses of the shown parts finish.
	h.ticks(2)
	return h
}

// punch lands one single punch.
func (h *harness) punch() {
	h.press(cfg.ActionInteract)
	h.ticks(2)
	h.release(cfg.ActionInteract)
	h.ticks(2)
}

func TestCracking_IgnoresInteractBeforeReveal(t *testing.T) {
	h := newHarness(t, testLoader(t))
	if err := BeginCracking(h.e); err != nil {
		t.Fatal(err)
	}
	h.tap(cfg.ActionInteract)
	if got := h.cracking().Phase; got != cfg.CrackingReady {
		t.Errorf("phase = %v, want ready", got)
	}
	if h.interaction().MovementEnabled {
		t.Error("movement enabled during the minigame")
	}
}

func TestCracking_BeginTwiceKeepsOneGame(t *testing.T) {
	h := newHarness(t, testLoader(t))
	if err := BeginCracking(h.e); err != nil {
		t.Fatal(err)
	}
	first := h.cracking()
	if err := BeginCracking(h.e); err != nil {
		t.Fatal(err)
	}
	if h.cracking() != first {
		t.Error("second BeginCracking replaced the game")
	}
}

func TestCracking_PunchesDamageUntilOpen(t *testing.T) {
	h := startPunching(t)
	if got := h.visibleParts(); got != 2 {
		t.Fatalf("visible parts = %d, want the two lower fists", got)
	}

	c := h.cracking()
	c.Health = 2

	h.punch()
	if c.Health != 1 {
		t.Fatalf("health after one punch = %d, want 1", c.Health)
	}
	if c.Toggle != 1 {
		t.Errorf("toggle = %d, want the other fist next", c.Toggle)
	}

	h.punch()
	if c.Health != 0 || c.DamageLevel() != 5 {
		t.Fatalf("health = %d level = %d", c.Health, c.DamageLevel())
	}
	gs := getOrCreateGameState(h.e)
	if !gs.Progress.Flags.Has(components.FlagCrackOpen) {
		t.Fatal("crack_open not set")
	}

	h.tap(cfg.ActionJump)
	if c.Phase != cfg.CrackingFading {
		t.Fatalf("phase after jump = %v, want fading", c.Phase)
	}
	h.tickUntil("leave", 400, func() bool { return gs.State == cfg.GameStateTopDown })

	if _, ok := components.Cracking.First(h.e.World); ok {
		t.Error("minigame still spawned")
	}
	if !h.interaction().MovementEnabled {
		t.Error("movement not returned")
	}
	saved, ok, err := LoadSlot(0)
	if err != nil || !ok {
		t.Fatalf("LoadSlot(0) = %v, %v", ok, err)
	}
	if !saved.Flags.Has(components.FlagCrackOpen) {
		t.Error("saved slot is missing crack_open")
	}
}

func TestCracking_JumpIgnoredWhileClosed(t *testing.T) {
	h := startPunching(t)
	h.tap(cfg.ActionJump)
	if got := h.cracking().Phase; got != cfg.CrackingPunch {
		t.Errorf("phase = %v, want punch", got)
	}
}

func TestCracking_SwapCyclesAttacks(t *testing.T) {
	h := startPunching(t)

	tests := []struct {
		want    cfg.CrackingPhase
		visible int
	}{
		{cfg.CrackingFastPunch, 2},
		{cfg.CrackingQuadPunch, 4},
		{cfg.CrackingViolence, 2},
		{cfg.CrackingViolence, 2},
	}
	for _, tt := range tests {
		h.tap(cfg.ActionSwap)
		if got := h.cracking().Phase; got != tt.want {
			t.Fatalf("phase = %v, want %v", got, tt.want)
		}
		if got := h.visibleParts(); got != tt.visible {
			t.Errorf("%v: visible parts = %d, want %d", tt.want, got, tt.visible)
		}
	}

	c := h.cracking()
	h.press(cfg.ActionInteract)
	h.tick()
	for _, e := range c.Guns() {
		if !components.Visibility.Get(h.e.World.Entry(e)).Visible {
			t.Error("gun hidden while attacking")
		}
	}
	for _, e := range c.Punches() {
		if components.Visibility.Get(h.e.World.Entry(e)).Visible {
			t.Error("fist shown while the guns are out")
		}
	}

	// Swapping is locked while attacking.
	h.press(cfg.ActionSwap)
	h.tick()
	if c.Phase != cfg.CrackingViolence {
		t.Errorf("phase = %v after swap while attacking", c.Phase)
	}

	h.release(cfg.ActionInteract, cfg.ActionSwap)
	h.tick()
	if got := h.visibleParts(); got != 2 {
		t.Errorf("visible parts after release = %d, want 2", got)
	}
	if c.Damage != 0 {
		t.Errorf("pending damage = %d", c.Damage)
	}
}

func TestCracking_CancelBacksOutThenLeaves(t *testing.T) {
	h := startPunching(t)
	c := h.cracking()

	h.tap(cfg.ActionCancel)
	if c.Phase != cfg.CrackingReady {
		t.Fatalf("phase = %v, want ready", c.Phase)
	}
	if got := h.visibleParts(); got != 0 {
		t.Errorf("visible parts = %d", got)
	}
	crack := components.Transform.Get(h.e.World.Entry(c.Crack))
	if crack.Scale != (dmath.Vec2{X: 1, Y: 1}) {
		t.Errorf("crack scale = %v", crack.Scale)
	}

	h.tap(cfg.ActionCancel)
	if got := getOrCreateGameState(h.e).State; got != cfg.GameStateTopDown {
		t.Errorf("state = %v, want top-down", got)
	}
	if _, ok := components.Cracking.First(h.e.World); ok {
		t.Error("minigame still spawned")
	}
}

func TestCrackingData_DamageLevel(t *testing.T) {
	tests := []struct {
		health uint8
		want   int
	}{
		{255, 0},
		{200, 1},
		{192, 1},
		{191, 2},
		{128, 2},
		{64, 3},
		{63, 4},
		{1, 4},
		{0, 5},
	}
	for _, tt := range tests {
		c := components.CrackingData{Health: tt.health}
		if got := c.DamageLevel(); got != tt.want {
			t.Errorf("DamageLevel(%d) = %d, want %d", tt.health, got, tt.want)
		}
	}
}
