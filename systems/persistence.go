package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// ItemStore is the part of gdata.Manager the game uses. A missing item
// loads as nil data; saving nil clears an item.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	TextSpeedIndex  int  `json:"textSpeedIndex"`
}

// DefaultSettings is used until the player changes anything.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		TextSpeedIndex:  cfg.Settings.DefaultTextSpeedIndex,
	}
}

var store ItemStore

// InitPersistence opens the gdata store for slots and settings
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Progress.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// SetItemStore replaces the backing store. A nil store disables saving.
func SetItemStore(s ItemStore) {
	store = s
}

func slotKey(slot int) string {
	return fmt.Sprintf("slot_%d", slot)
}

// LoadSlot reads a save slot. ok is false for a slot that was never saved.
func LoadSlot(slot int) (p components.ProgressData, ok bool, err error) {
	if store == nil {
		return components.ProgressData{}, false, nil
	}
	data, err := store.LoadItem(slotKey(slot))
	if err != nil {
		return components.ProgressData{}, false, fmt.Errorf("load slot %d: %w", slot, err)
	}
	if len(data) == 0 {
		return components.ProgressData{}, false, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return components.ProgressData{}, false, fmt.Errorf("parse slot %d: %w", slot, err)
	}
	return p, true, nil
}

// SaveSlot writes a save slot.
func SaveSlot(slot int, p components.ProgressData) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize slot %d: %w", slot, err)
	}
	if err := store.SaveItem(slotKey(slot), data); err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	return nil
}

// EraseSlot clears a save slot. Erasing an empty slot is not an error.
func EraseSlot(slot int) error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(slotKey(slot), nil); err != nil {
		return fmt.Errorf("erase slot %d: %w", slot, err)
	}
	return nil
}

// SlotSummaries describes every slot for the menu.
func SlotSummaries() []components.SlotSummary {
	out := make([]components.SlotSummary, cfg.Progress.SlotCount)
	for i := range out {
		p, ok, err := LoadSlot(i)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		out[i] = components.SlotSummary{Exists: ok, TimePlayed: p.TimePlayed}
	}
	return out
}

// StartSession loads slot into the game state. A missing or unreadable slot
// starts fresh progress.
func StartSession(ecs *ecs.ECS, slot int) *components.GameStateData {
	gs := getOrCreateGameState(ecs)
	p, ok, err := LoadSlot(slot)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	if !ok {
		p = components.NewProgress()
	}

	gs.Slot = slot
	gs.Progress = p
	gs.SessionTime = 0
	gs.Spawn.X = p.PositionX
	gs.Spawn.Y = p.PositionY
	gs.State = cfg.GameStateTopDown
	if p.Flags.Has(components.FlagUckoIntroSeen) {
		gs.State = cfg.GameStateBones
	}
	log.Printf("[progress] slot %d loaded (%.0fs played)", slot, p.TimePlayed)
	return gs
}

// SaveProgress folds the session time into the slot and writes it.
func SaveProgress(ecs *ecs.ECS) {
	gs := getOrCreateGameState(ecs)
	gs.Progress.TimePlayed += gs.SessionTime
	gs.SessionTime = 0
	gs.Progress.Flags.Remove(components.FlagFirstLaunch)

	if err := SaveSlot(gs.Slot, gs.Progress); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

// UpdateSessionTime counts play time since the last save.
func UpdateSessionTime(ecs *ecs.ECS) {
	getOrCreateGameState(ecs).SessionTime += cfg.C.TickSeconds()
}

// LoadSettings loads settings from disk, falling back to the defaults.
func LoadSettings() *SavedSettings {
	if store == nil {
		return DefaultSettings()
	}
	data, err := store.LoadItem("settings")
	if err != nil || len(data) == 0 {
		if err != nil {
			log.Printf("Warning: Could not load settings: %v", err)
		}
		return DefaultSettings()
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return DefaultSettings()
	}
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := store.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// TextSpeed returns the reveal multiplier selected in s.
func (s *SavedSettings) TextSpeed() float64 {
	steps := cfg.Settings.TextSpeedSteps
	if s.TextSpeedIndex < 0 || s.TextSpeedIndex >= len(steps) {
		return steps[cfg.Settings.DefaultTextSpeedIndex]
	}
	return steps[s.TextSpeedIndex]
}

// ApplyWindowSettings applies the display part of saved settings.
func ApplyWindowSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// ApplySavedSettings applies the session part of saved settings.
func ApplySavedSettings(ecs *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	getOrCreateInteraction(ecs).TextSpeed = saved.TextSpeed()
}
