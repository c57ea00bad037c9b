package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugElementColor = color.RGBA{0, 255, 0, 255}    // Green
	debugPropColor    = color.RGBA{255, 180, 50, 255} // Orange
	debugOtherColor   = color.RGBA{0, 255, 255, 255}  // Cyan
)

// DrawDebug outlines every drawn sprite and prints the director state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if !isDrawn(ecs.World, e) {
			return
		}
		sprite := components.Sprite.Get(e)
		tr := components.Transform.Get(e)
		size := sprite.DrawSize()
		w := size.X * tr.Scale.X
		h := size.Y * tr.Scale.Y
		x := tr.Position.X - w/2
		y := tr.Position.Y - h/2

		c := debugOtherColor
		if e.HasComponent(tags.Element) {
			c = debugElementColor
		} else if e.HasComponent(tags.Interactable) {
			c = debugPropColor
		}

		vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
		vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
		vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
	})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f\n%s", ebiten.ActualTPS(), DebugStatus(ecs)), 4, 4)
}

// DebugStatus describes the director, interaction and session state, one
// line each.
func DebugStatus(ecs *ecs.ECS) string {
	var b strings.Builder

	if d := getDirector(ecs); d != nil {
		fmt.Fprintf(&b, "cutscene %s %s", d.Current, d.Phase)
		if ecs.World.Valid(d.Instance) {
			cs := components.Cutscene.Get(ecs.World.Entry(d.Instance))
			fmt.Fprintf(&b, " line %d/%d t=%.2f x%.0f", d.Cursor+1, cs.Timeline.Len(), cs.Player.Time(), cs.Player.Speed())
		}
		if len(d.Preload) > 0 {
			fmt.Fprintf(&b, " preload %v", d.Preload)
		}
		b.WriteByte('\n')
	}

	in := getOrCreateInteraction(ecs)
	fmt.Fprintf(&b, "interaction %s focus %d movement %t\n", in.State, in.Focus, in.MovementEnabled)

	gs := getOrCreateGameState(ecs)
	fmt.Fprintf(&b, "game %s slot %d flags %04b", gs.State, gs.Slot, uint32(gs.Progress.Flags))
	return b.String()
}
