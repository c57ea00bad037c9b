package systems

import (
	"strings"
	"testing"

	"github.com/automoto/monkebucko/assets/animations"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/automoto/monkebucko/messages"
	"github.com/automoto/monkebucko/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateAnimations_PanicsWithoutSprite(t *testing.T) {
	h := newHarness(t, testLoader(t))
	entry := h.e.World.Entry(h.e.World.Create(components.Animation))
	components.Animation.Set(entry, &components.AnimationData{Current: animations.NewAnimation(0, 1, 12)})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("UpdateAnimations did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "no sprite") {
			t.Errorf("panic = %v", r)
		}
	}()
	UpdateAnimations(h.e)
}

func TestUpdateAnimations_PublishesFinishedAndLooped(t *testing.T) {
	h := newHarness(t, testLoader(t))

	spawn := func(anim *animations.Animation) donburi.Entity {
		entry := h.e.World.Entry(h.e.World.Create(components.Animation, components.Sprite))
		components.Animation.Set(entry, &components.AnimationData{Current: anim})
		return entry.Entity()
	}
	once := spawn(animations.NewAnimation(0, 1, 60))
	loop := spawn(animations.NewAnimation(0, 1, 60).WithLooping())

	finished := map[donburi.Entity]int{}
	looped := map[donburi.Entity]int{}
	messages.AnimationFinished.Subscribe(h.e.World, func(_ donburi.World, ev messages.AnimationFinishedEvent) {
		finished[ev.Entity]++
	})
	messages.AnimationLooped.Subscribe(h.e.World, func(_ donburi.World, ev messages.AnimationLoopedEvent) {
		looped[ev.Entity]++
	})

	for i := 0; i < 6; i++ {
		UpdateAnimations(h.e)
	}
	messages.Drain(h.e.World)

	if finished[once] != 1 || looped[once] != 0 {
		t.Errorf("one-shot: finished %d looped %d", finished[once], looped[once])
	}
	if finished[loop] != 0 || looped[loop] < 2 {
		t.Errorf("looping: finished %d looped %d", finished[loop], looped[loop])
	}
}

func TestUpdateTimelines_ActivationEvents(t *testing.T) {
	h := newHarness(t, testLoader(t, "a.png"))
	c := &content.Cutscene{
		ID:       content.CutsceneNinjuckoIntro,
		Elements: []content.Element{{Path: "a.png", Frames: 2}},
		Lines: []content.Line{{
			Text: "x",
			Actions: []content.Action{
				{Element: 0, Mode: content.ModeDeactivate},
				{Element: 0, Mode: content.ModeActivate, Delay: 0.5},
				{Element: 0, Mode: content.ModeScale, Start: dmath.Vec2{X: 1, Y: 1}, End: dmath.Vec2{X: 2, Y: 2}, Delay: 0.6, Duration: 0.4},
			},
		}},
	}
	c.ApplyDefaults()
	root, err := factory.CreateCutscene(h.e, c, h.loader)
	if err != nil {
		t.Fatal(err)
	}
	cs := components.Cutscene.Get(root)
	element := h.e.World.Entry(cs.Elements[0])
	cs.Player.Play(cs.Timeline.Clips[0])

	UpdateTimelines(h.e)
	if components.Visibility.Get(element).Visible {
		t.Error("element visible after deactivate")
	}
	if components.Animation.Get(element).Current.IsPlaying() {
		t.Error("element animation playing after deactivate")
	}

	for cs.Player.Time() < 0.5 {
		UpdateTimelines(h.e)
	}
	if !components.Visibility.Get(element).Visible {
		t.Error("element hidden after activate")
	}
	if !components.Animation.Get(element).Current.IsPlaying() {
		t.Error("element animation paused after activate")
	}

	for !cs.Player.AllFinished() {
		UpdateTimelines(h.e)
	}
	if got := components.Transform.Get(element).Scale; got != (dmath.Vec2{X: 2, Y: 2}) {
		t.Errorf("scale at clip end = %v", got)
	}
}

func TestUpdateBars_PublishesOncePerDirection(t *testing.T) {
	h := newHarness(t, testLoader(t))
	var in, out int
	messages.BarsIn.Subscribe(h.e.World, func(donburi.World, messages.BarsInEvent) { in++ })
	messages.BarsOut.Subscribe(h.e.World, func(donburi.World, messages.BarsOutEvent) { out++ })

	PlayBarsIn(h.e)
	h.ticks(240)
	if in != 1 || out != 0 {
		t.Fatalf("after bars in: in=%d out=%d", in, out)
	}
	bars := getBars(h.e)
	upper := components.Transform.Get(h.e.World.Entry(bars.Upper)).Position.Y
	if upper != 0 {
		t.Errorf("upper bar at %v after sliding in", upper)
	}

	PlayBarsOut(h.e)
	h.ticks(240)
	if in != 1 || out != 1 {
		t.Errorf("after bars out: in=%d out=%d", in, out)
	}
}

func TestUpdateBars_RestartMidSlide(t *testing.T) {
	barTicks := int(cfg.Bars.Duration * float64(cfg.C.TPS))

	t.Run("in again restarts", func(t *testing.T) {
		h := newHarness(t, testLoader(t))
		var in int
		messages.BarsIn.Subscribe(h.e.World, func(donburi.World, messages.BarsInEvent) { in++ })

		PlayBarsIn(h.e)
		h.ticks(barTicks / 2)
		if in != 0 {
			t.Fatalf("bars in announced halfway: %d", in)
		}

		PlayBarsIn(h.e)
		n := h.tickUntil("bars in", 2*barTicks, func() bool { return in > 0 })
		if n < barTicks || n > barTicks+1 {
			t.Errorf("bars in after %d ticks from the restart, want %d", n, barTicks)
		}
		h.ticks(barTicks)
		if in != 1 {
			t.Errorf("bars in announced %d times", in)
		}
	})

	t.Run("out interrupts in", func(t *testing.T) {
		h := newHarness(t, testLoader(t))
		var in, out int
		messages.BarsIn.Subscribe(h.e.World, func(donburi.World, messages.BarsInEvent) { in++ })
		messages.BarsOut.Subscribe(h.e.World, func(donburi.World, messages.BarsOutEvent) { out++ })

		PlayBarsIn(h.e)
		h.ticks(barTicks / 2)
		PlayBarsOut(h.e)
		h.ticks(2 * barTicks)
		if in != 0 || out != 1 {
			t.Errorf("in=%d out=%d, want 0 and 1", in, out)
		}
	})
}
