package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/monkebucko/assets"
	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/content"
	"github.com/automoto/monkebucko/messages"
	"github.com/automoto/monkebucko/systems"
	"github.com/automoto/monkebucko/systems/factory"
	"github.com/automoto/monkebucko/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene is the hub: interactables, cutscenes and the cracking
// minigame, played on one save slot.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	slot         int
	once         sync.Once

	panel   *ui.PanelUI
	watcher *content.Watcher
}

// NewGameScene creates the game scene for a save slot
func NewGameScene(sc SceneChanger, slot int) *GameScene {
	return &GameScene{sceneChanger: sc, slot: slot}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.pollReloads()
	gs.ecs.Update()

	var panel *components.InteractionPanelData
	if entry, ok := components.InteractionPanel.First(gs.ecs.World); ok {
		panel = components.InteractionPanel.Get(entry)
	}
	gs.panel.Sync(panel)
	gs.panel.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.panel.Draw(screen)
}

// Close stops watching the content directory. The scene can not reload
// content afterwards.
func (gs *GameScene) Close() error {
	if gs.watcher == nil {
		return nil
	}
	err := gs.watcher.Close()
	gs.watcher = nil
	return err
}

// pollReloads swaps in content reloaded by the watcher, if any.
func (gs *GameScene) pollReloads() {
	if gs.watcher == nil {
		return
	}
	select {
	case r := <-gs.watcher.Reloads:
		systems.SwapRegistry(gs.ecs, r)
	case err := <-gs.watcher.Errors:
		log.Printf("Warning: content reload failed: %v", err)
	default:
	}
}

func (gs *GameScene) configure() {
	registry := gs.loadRegistry()
	loader := assets.NewLoader(assets.Sprites())

	e := ecs.NewECS(donburi.NewWorld())
	systems.RegisterHandlers(e.World)
	if err := systems.LoadScriptHandlers(registry); err != nil {
		log.Printf("Warning: Could not load scripts: %v", err)
	}

	// Input first, then producers, then the event drain, then the
	// consumers that act on this tick's latches.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateInteractionInput)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateTimelines)
	e.AddSystem(systems.UpdateBars)
	e.AddSystem(systems.UpdateTyping)
	e.AddSystem(func(e *ecs.ECS) { messages.Drain(e.World) })
	e.AddSystem(systems.UpdateCutscene)
	e.AddSystem(systems.UpdateCracking)
	e.AddSystem(systems.UpdateSessionTime)

	e.AddRenderer(cfg.LayerDefault, systems.DrawSprites)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawCutscene)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawCrackingHUD)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)

	gs.ecs = e
	gs.panel = ui.NewPanelUI()

	director := factory.CreateDirector(gs.ecs, registry, loader)
	factory.CreateCinematicBars(gs.ecs)
	factory.CreateHub(gs.ecs, loader)

	state := systems.StartSession(gs.ecs, gs.slot)
	systems.ApplySavedSettings(gs.ecs, systems.LoadSettings())

	if state.Progress.Flags.Has(components.FlagFirstLaunch) {
		if err := systems.BeginCutscene(gs.ecs, content.CutsceneUckoIntro); err != nil {
			log.Printf("Warning: %v", err)
		}
	} else {
		d := components.Director.Get(director)
		d.Preload = append(d.Preload, content.CutsceneUckoIntro)
	}
}

// loadRegistry reads the embedded content, or the content directory when
// one is configured, and starts watching it.
func (gs *GameScene) loadRegistry() *content.Registry {
	dir := cfg.Debug.ContentDir
	if dir == "" {
		return content.MustLoadRegistry()
	}

	registry, err := content.LoadRegistry(os.DirFS(dir))
	if err != nil {
		log.Printf("Warning: Could not load content from %s, using built-in content: %v", dir, err)
		return content.MustLoadRegistry()
	}
	w, err := content.Watch(dir)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", dir, err)
		return registry
	}
	gs.watcher = w
	log.Printf("[content] watching %s", dir)
	return registry
}
