package systems

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// menu rows after the slots
const (
	menuRowTextSpeed = iota
	menuRowQuit
	menuExtraRows
)

// NewUpdateMenu creates the save slot menu system. createGame builds the
// game scene for the chosen slot.
func NewUpdateMenu(sceneChanger SceneChanger, createGame func(slot int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		rows := len(menu.Slots) + menuExtraRows
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + rows) % rows
			menu.Confirming = false
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % rows
			menu.Confirming = false
		}

		slot, isSlot := menuSlot(menu)
		switch {
		case isSlot:
			if GetAction(input, cfg.ActionSwap).JustPressed && menu.Slots[slot].Exists {
				if menu.Confirming {
					if err := EraseSlot(slot); err != nil {
						log.Printf("Warning: Could not erase slot %d: %v", slot, err)
					}
					menu.Slots = SlotSummaries()
					menu.Confirming = false
				} else {
					menu.Confirming = true
				}
				return
			}
			if GetAction(input, cfg.ActionMenuSelect).JustPressed {
				sceneChanger.ChangeScene(createGame(slot))
				return
			}
		case menu.SelectedIndex-len(menu.Slots) == menuRowTextSpeed:
			steps := len(cfg.Settings.TextSpeedSteps)
			changed := false
			if GetAction(input, cfg.ActionFocusPrev).JustPressed {
				menu.TextSpeedIndex = (menu.TextSpeedIndex - 1 + steps) % steps
				changed = true
			}
			if GetAction(input, cfg.ActionFocusNext).JustPressed || GetAction(input, cfg.ActionMenuSelect).JustPressed {
				menu.TextSpeedIndex = (menu.TextSpeedIndex + 1) % steps
				changed = true
			}
			if changed {
				saved := LoadSettings()
				saved.TextSpeedIndex = menu.TextSpeedIndex
				_ = SaveSettings(saved)
			}
		case menu.SelectedIndex-len(menu.Slots) == menuRowQuit:
			if GetAction(input, cfg.ActionMenuSelect).JustPressed {
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			if menu.Confirming {
				menu.Confirming = false
				return
			}
			os.Exit(0)
		}
	}
}

func menuSlot(menu *components.MenuData) (int, bool) {
	if menu.SelectedIndex < len(menu.Slots) {
		return menu.SelectedIndex, true
	}
	return 0, false
}

// DrawMenu renders the save slot menu
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, "MONKEBUCKO", fonts.Title.Face(), width/2, cfg.Menu.TitleY, cfg.Menu.TextColorNormal)

	for i := 0; i < len(menu.Slots)+menuExtraRows; i++ {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, menuLabel(menu, i), fonts.Regular.Face(), width/2, y, textColor)
	}

	input := getOrCreateInput(e)
	drawCentered(screen, getMenuHint(input.LastInputMethod, menu), fonts.Small.Face(), width/2, height-2*cfg.Panel.FontSize, cfg.Panel.HintColor)
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func menuLabel(menu *components.MenuData, row int) string {
	if row < len(menu.Slots) {
		s := menu.Slots[row]
		if !s.Exists {
			return fmt.Sprintf("Slot %d: New game", row+1)
		}
		played := (time.Duration(s.TimePlayed) * time.Second).Round(time.Second)
		label := fmt.Sprintf("Slot %d: %s", row+1, played)
		if row == menu.SelectedIndex && menu.Confirming {
			label += "  (erase? press again)"
		}
		return label
	}
	switch row - len(menu.Slots) {
	case menuRowTextSpeed:
		return fmt.Sprintf("Text speed: x%g", cfg.Settings.TextSpeedSteps[menu.TextSpeedIndex])
	case menuRowQuit:
		return "Quit"
	}
	return ""
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod, menu *components.MenuData) string {
	if _, ok := menuSlot(menu); ok && menu.Slots[menu.SelectedIndex].Exists {
		switch method {
		case components.InputPlayStation:
			return "D-Pad: Navigate   Cross: Play   R1: Erase"
		case components.InputXbox:
			return "D-Pad: Navigate   A: Play   RB: Erase"
		}
		return "Arrows: Navigate   Enter: Play   Tab: Erase"
	}
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		speed := LoadSettings().TextSpeedIndex
		if speed < 0 || speed >= len(cfg.Settings.TextSpeedSteps) {
			speed = cfg.Settings.DefaultTextSpeedIndex
		}
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Slots:          SlotSummaries(),
			TextSpeedIndex: speed,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
