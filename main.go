package main

import (
	"flag"
	"io"
	"log"

	"github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/fonts"
	"github.com/automoto/monkebucko/scenes"
	"github.com/automoto/monkebucko/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene and releases the old one
func (g *Game) ChangeScene(scene interface{}) {
	g.closeScene()
	g.scene = scene.(Scene)
}

func (g *Game) closeScene() {
	if c, ok := g.scene.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("Warning: closing scene: %v", err)
		}
	}
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.Panel.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{}
	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g, config.Debug.Slot)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start straight into a save slot")
	flag.IntVar(&config.Debug.Slot, "slot", config.Debug.Slot, "save slot used with -skip-menu")
	flag.StringVar(&config.Debug.ContentDir, "content-dir", config.Debug.ContentDir, "load and hot-reload cutscene content from this directory")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "draw the debug overlay")
	flag.Parse()

	if config.Debug.Slot < 0 || config.Debug.Slot >= config.Progress.SlotCount {
		log.Fatalf("slot must be in [0, %d)", config.Progress.SlotCount)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("monkebucko")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplyWindowSettings(systems.LoadSettings())

	g := NewGame()
	err := ebiten.RunGame(g)
	g.closeScene()
	if err != nil {
		log.Fatal(err)
	}
}
