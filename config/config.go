package config

import (
	"image/color"
	"time"

	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// TickSeconds is the fixed simulation step.
func (c *Config) TickSeconds() float64 {
	return 1 / float64(c.TPS)
}

// Render layers
const (
	LayerDefault ecs.LayerID = iota
	LayerOverlay
)

// Z ordering inside a layer
const (
	ZBackground = 0.0
	ZSprites    = 1.0
	ZEffects    = 10.0
)

// CutsceneConfig contains cutscene engine tuning
type CutsceneConfig struct {
	Impatience       float64       // clip speed multiplier when advancing early
	LoadTimeout      time.Duration // abort a cutscene whose assets never become ready
	ElementTileSize  int           // square frame size of element sheets
	Offscreen        dmath.Vec2    // spawn position of hidden elements
	ElementZStep     float64       // z offset per element index
	DefaultTextSpeed float64       // characters per second
	DefaultFPS       float64
	DefaultDuration  float64 // seconds
	TeleportDuration float64 // seconds
	SpeakerSeparator string
	BonesSpawn       dmath.Vec2 // player spawn after the intro
}

// BarsConfig contains cinematic bar configuration
type BarsConfig struct {
	Height   float64
	Duration float64 // seconds per direction
	Ease     string
	Color    color.RGBA
}

// PanelConfig contains interaction text panel configuration
type PanelConfig struct {
	TextOpacity     float64 // background alpha for text and monologue
	DialogueOpacity float64 // background alpha during cutscenes
	FontSize        float64
	HeightFraction  float64 // share of the screen height, anchored to the bottom
	TextColor       color.RGBA
	HintColor       color.RGBA
}

// GunSheet is one violence-phase gun animation
type GunSheet struct {
	Frames int
	FPS    float64
}

// CrackingConfig contains the egg cracking minigame configuration
type CrackingConfig struct {
	StartHealth      uint8
	RevealDelay      float64 // seconds before the crack appears
	RevealDelayOpen  float64 // reveal delay once the crack is open
	EaseDuration     float64
	FastPunchFPS     float64
	FastPunchDelay   float64
	QuadPunchFPS     float64
	QuadPunchStagger float64
	Guns             [4]GunSheet
	PartSpacing      float64
	Origin           dmath.Vec2 // crack centre
	CrackScale       float64    // crack zoom once eased in
	PartScale        float64
}

// ProgressConfig contains save slot configuration
type ProgressConfig struct {
	AppName    string
	SlotCount  int
	FirstSpawn dmath.Vec2
}

// MenuConfig contains save slot menu configuration
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HubConfig contains the interactable hub layout
type HubConfig struct {
	Spacing   float64
	Baseline  float64
	FocusLift float64
}

// DebugConfig contains command-line options
type DebugConfig struct {
	SkipMenu   bool   // skip the slot menu and use Slot directly
	Slot       int    // save slot used with SkipMenu
	ContentDir string // hot-reload cutscene content from this directory
	Overlay    bool   // outline sprites and print the director state
}

// Global configuration instances
var C *Config
var Cutscene CutsceneConfig
var Bars BarsConfig
var Panel PanelConfig
var Cracking CrackingConfig
var Progress ProgressConfig
var Menu MenuConfig
var Hub HubConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Grey         = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	DarkBlue     = color.RGBA{R: 20, G: 24, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Cutscene = CutsceneConfig{
		Impatience:       256,
		LoadTimeout:      10 * time.Second,
		ElementTileSize:  64,
		Offscreen:        dmath.Vec2{X: -2000, Y: -2000},
		ElementZStep:     0.01,
		DefaultTextSpeed: 16,
		DefaultFPS:       12,
		DefaultDuration:  1,
		TeleportDuration: 0.001,
		SpeakerSeparator: ": ",
		BonesSpawn:       dmath.Vec2{X: 1280, Y: 128},
	}

	Bars = BarsConfig{
		Height:   float64(C.Height) / 8,
		Duration: 3,
		Ease:     "smooth-step",
		Color:    Black,
	}

	Panel = PanelConfig{
		TextOpacity:     0.75,
		DialogueOpacity: 0,
		FontSize:        16,
		HeightFraction:  0.125,
		TextColor:       White,
		HintColor:       Grey,
	}

	Cracking = CrackingConfig{
		StartHealth:      200,
		RevealDelay:      8,
		RevealDelayOpen:  2,
		EaseDuration:     3,
		FastPunchFPS:     12,
		FastPunchDelay:   0.083,
		QuadPunchFPS:     16,
		QuadPunchStagger: 0.016,
		Guns: [4]GunSheet{
			{Frames: 4, FPS: 60},
			{Frames: 15, FPS: 24},
			{Frames: 4, FPS: 24},
			{Frames: 4, FPS: 12},
		},
		PartSpacing: 96,
		Origin:      dmath.Vec2{X: 640, Y: 360},
		CrackScale:  3,
		PartScale:   2,
	}

	Progress = ProgressConfig{
		AppName:    "monkebucko",
		SlotCount:  3,
		FirstSpawn: dmath.Vec2{X: 832, Y: 1024},
	}

	Menu = MenuConfig{
		BackgroundColor:   DarkBlue,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            160,
		MenuStartY:        260,
		MenuItemHeight:    30,
		MenuItemGap:       20,
	}

	Hub = HubConfig{
		Spacing:   200,
		Baseline:  420,
		FocusLift: 16,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
