package systems

import (
	"testing"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func withStore(t *testing.T) *memStore {
	t.Helper()
	s := newMemStore()
	SetItemStore(s)
	t.Cleanup(func() { SetItemStore(nil) })
	return s
}

func TestSlots_SaveLoadErase(t *testing.T) {
	withStore(t)

	if _, ok, err := LoadSlot(1); ok || err != nil {
		t.Fatalf("LoadSlot on empty slot = %v, %v", ok, err)
	}

	p := components.NewProgress()
	p.TimePlayed = 42
	p.Flags.Insert(components.FlagCrackOpen)
	if err := SaveSlot(1, p); err != nil {
		t.Fatal(err)
	}

	got, ok, err := LoadSlot(1)
	if err != nil || !ok {
		t.Fatalf("LoadSlot(1) = %v, %v", ok, err)
	}
	if got != p {
		t.Errorf("LoadSlot(1) = %+v, want %+v", got, p)
	}

	summaries := SlotSummaries()
	if len(summaries) != cfg.Progress.SlotCount {
		t.Fatalf("len(SlotSummaries()) = %d", len(summaries))
	}
	if summaries[0].Exists || !summaries[1].Exists || summaries[1].TimePlayed != 42 {
		t.Errorf("summaries = %+v", summaries)
	}

	if err := EraseSlot(1); err != nil {
		t.Fatal(err)
	}
	if err := EraseSlot(1); err != nil {
		t.Errorf("erasing an empty slot = %v", err)
	}
	if _, ok, _ := LoadSlot(1); ok {
		t.Error("slot survived erase")
	}
}

func TestSlots_CorruptSlotStartsFresh(t *testing.T) {
	s := withStore(t)
	s.items[slotKey(0)] = []byte("{not json")

	if _, _, err := LoadSlot(0); err == nil {
		t.Error("LoadSlot accepted a corrupt slot")
	}
	if got := SlotSummaries()[0]; got.Exists {
		t.Errorf("corrupt slot summary = %+v", got)
	}

	e := ecs.NewECS(donburi.NewWorld())
	gs := StartSession(e, 0)
	if !gs.Progress.Flags.Has(components.FlagFirstLaunch) {
		t.Error("corrupt slot did not start fresh progress")
	}
}

func TestStartSession_StateFromFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags components.ProgressFlags
		want  cfg.GameStateID
	}{
		{"fresh", components.FlagFirstLaunch, cfg.GameStateTopDown},
		{"crack open", components.FlagCrackOpen, cfg.GameStateTopDown},
		{"intro seen", components.FlagUckoIntroSeen, cfg.GameStateBones},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStore(t)
			p := components.NewProgress()
			p.Flags = tt.flags
			p.PositionX, p.PositionY = 10, 20
			if err := SaveSlot(2, p); err != nil {
				t.Fatal(err)
			}

			gs := StartSession(ecs.NewECS(donburi.NewWorld()), 2)
			if gs.State != tt.want {
				t.Errorf("state = %v, want %v", gs.State, tt.want)
			}
			if gs.Slot != 2 || gs.Spawn.X != 10 || gs.Spawn.Y != 20 {
				t.Errorf("session = %+v", *gs)
			}
		})
	}
}

func TestSaveProgress_AccumulatesPlayTime(t *testing.T) {
	withStore(t)
	e := ecs.NewECS(donburi.NewWorld())
	gs := StartSession(e, 0)

	for i := 0; i < cfg.C.TPS*2; i++ {
		UpdateSessionTime(e)
	}
	SaveProgress(e)
	for i := 0; i < cfg.C.TPS; i++ {
		UpdateSessionTime(e)
	}
	SaveProgress(e)

	if gs.SessionTime != 0 {
		t.Errorf("session time after save = %v", gs.SessionTime)
	}
	saved, ok, err := LoadSlot(0)
	if err != nil || !ok {
		t.Fatalf("LoadSlot(0) = %v, %v", ok, err)
	}
	if saved.TimePlayed < 2.99 || saved.TimePlayed > 3.01 {
		t.Errorf("time played = %v, want 3s", saved.TimePlayed)
	}
	if saved.Flags.Has(components.FlagFirstLaunch) {
		t.Error("first_launch survived a save")
	}
}

func TestSaveProgress_NoStore(t *testing.T) {
	SetItemStore(nil)
	e := ecs.NewECS(donburi.NewWorld())
	StartSession(e, 0)
	SaveProgress(e)
	if _, ok, err := LoadSlot(0); ok || err != nil {
		t.Errorf("LoadSlot without a store = %v, %v", ok, err)
	}
}

func TestSettings(t *testing.T) {
	s := withStore(t)

	got := LoadSettings()
	if *got != *DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, want defaults", *got)
	}
	if speed := got.TextSpeed(); speed != 1 {
		t.Errorf("default text speed = %v", speed)
	}

	if err := SaveSettings(&SavedSettings{Fullscreen: true, TextSpeedIndex: 3}); err != nil {
		t.Fatal(err)
	}
	got = LoadSettings()
	if !got.Fullscreen || got.TextSpeed() != 4 {
		t.Errorf("LoadSettings() = %+v", *got)
	}

	e := ecs.NewECS(donburi.NewWorld())
	ApplySavedSettings(e, got)
	if in := getOrCreateInteraction(e); in.RevealSpeed(10) != 40 {
		t.Errorf("reveal speed = %v, want 40", in.RevealSpeed(10))
	}

	s.items["settings"] = []byte("garbage")
	if got := LoadSettings(); *got != *DefaultSettings() {
		t.Errorf("corrupt settings = %+v, want defaults", *got)
	}
}

func TestSavedSettings_TextSpeedOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, len(cfg.Settings.TextSpeedSteps)} {
		s := SavedSettings{TextSpeedIndex: idx}
		want := cfg.Settings.TextSpeedSteps[cfg.Settings.DefaultTextSpeedIndex]
		if got := s.TextSpeed(); got != want {
			t.Errorf("TextSpeed() with index %d = %v, want %v", idx, got, want)
		}
	}
}
