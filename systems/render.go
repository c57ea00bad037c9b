package systems

import (
	"fmt"
	"sort"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/fonts"
	"github.com/automoto/monkebucko/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	drawQueue []*donburi.Entry
)

// DrawSprites renders the world sprites: hub props and the cracking scene.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	drawSprites(ecs, screen, false)
	drawFocus(ecs, screen)
}

// DrawCutscene renders cutscene elements and the cinematic bars above the
// world.
func DrawCutscene(ecs *ecs.ECS, screen *ebiten.Image) {
	drawSprites(ecs, screen, true)
	DrawBars(ecs, screen)
}

func drawSprites(ecs *ecs.ECS, screen *ebiten.Image, elements bool) {
	w := ecs.World
	drawQueue = drawQueue[:0]
	components.Sprite.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tags.Element) != elements || !isDrawn(w, e) {
			return
		}
		drawQueue = append(drawQueue, e)
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		return components.Transform.Get(drawQueue[i]).Z < components.Transform.Get(drawQueue[j]).Z
	})

	lift := focusedEntity(ecs)
	for _, e := range drawQueue {
		offset := 0.0
		if e.Entity() == lift {
			offset = -cfg.Hub.FocusLift
		}
		drawSprite(screen, e, offset)
	}
}

// isDrawn reports whether e is visible. Elements also need a visible root.
func isDrawn(w donburi.World, e *donburi.Entry) bool {
	if !e.HasComponent(components.Visibility) || !components.Visibility.Get(e).Visible {
		return false
	}
	if !e.HasComponent(components.Element) {
		return true
	}
	root := components.Element.Get(e).Root
	if !w.Valid(root) {
		return false
	}
	return components.Visibility.Get(w.Entry(root)).Visible
}

func drawSprite(screen *ebiten.Image, e *donburi.Entry, liftY float64) {
	sprite := components.Sprite.Get(e)
	tr := components.Transform.Get(e)

	frame := 0
	if e.HasComponent(components.Animation) {
		if anim := components.Animation.Get(e).Current; anim != nil {
			frame = anim.Frame()
		}
	}
	img := sprite.Frame(frame)
	if img == nil {
		return
	}

	tile := float64(sprite.TileSize)
	size := sprite.DrawSize()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-tile/2, -tile/2)
	drawOp.GeoM.Scale(tr.Scale.X*size.X/tile, tr.Scale.Y*size.Y/tile)
	drawOp.GeoM.Translate(tr.Position.X, tr.Position.Y+liftY)
	screen.DrawImage(img, drawOp)
}

// focusedEntity is the interactable the player would interact with, or
// donburi.Null while the player has no control.
func focusedEntity(ecs *ecs.ECS) donburi.Entity {
	in := getOrCreateInteraction(ecs)
	if in.State != cfg.InteractionNone || !in.MovementEnabled {
		return donburi.Null
	}
	if getOrCreateGameState(ecs).State == cfg.GameStateCracking {
		return donburi.Null
	}
	targets := Interactables(ecs.World)
	if len(targets) == 0 {
		return donburi.Null
	}
	return targets[(in.Focus%len(targets)+len(targets))%len(targets)].Entity()
}

func drawFocus(ecs *ecs.ECS, screen *ebiten.Image) {
	e := focusedEntity(ecs)
	if e == donburi.Null {
		return
	}
	entry := ecs.World.Entry(e)
	tr := components.Transform.Get(entry)
	sprite := components.Sprite.Get(entry)
	label := components.EntityInteraction.Get(entry).Label

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(tr.Position.X, tr.Position.Y-sprite.DrawSize().Y*tr.Scale.Y/2-2*cfg.Hub.FocusLift)
	op.ColorScale.ScaleWithColor(cfg.Menu.TextColorSelected)
	text.Draw(screen, label, fonts.Small.Face(), op)
}

// DrawBars renders the cinematic bars.
func DrawBars(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Bar.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Visibility.Get(e).Visible {
			return
		}
		r := components.Rect.Get(e)
		tr := components.Transform.Get(e)
		vector.FillRect(
			screen,
			float32(tr.Position.X), float32(tr.Position.Y),
			float32(r.Width), float32(r.Height),
			cfg.Bars.Color,
			false,
		)
	})
}

// DrawCrackingHUD shows the remaining egg health and the controls of the
// current phase.
func DrawCrackingHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cracking.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cracking.Get(entry)

	var hint string
	switch c.Phase {
	case cfg.CrackingReady:
		if !c.Revealed {
			return
		}
		hint = "Interact: Begin   Cancel: Leave"
	case cfg.CrackingEasing:
		if !getOrCreateGameState(ecs).Progress.Flags.Has(components.FlagCrackOpen) {
			return
		}
		hint = "Jump: Leave"
	case cfg.CrackingFading:
		return
	default:
		hint = fmt.Sprintf("%s   Interact: Attack   Swap: Next   Cancel: Stop", c.Phase)
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())-2*cfg.Panel.FontSize)
	op.ColorScale.ScaleWithColor(cfg.Panel.HintColor)
	text.Draw(screen, hint, fonts.Small.Face(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(cfg.Panel.FontSize, cfg.Panel.FontSize)
	op.ColorScale.ScaleWithColor(cfg.Panel.TextColor)
	text.Draw(screen, fmt.Sprintf("Egg %d/%d", c.Health, cfg.Cracking.StartHealth), fonts.Small.Face(), op)
}
