package components

import "github.com/yohamta/donburi"

// SlotSummary is what the slot menu shows for one save slot.
type SlotSummary struct {
	Exists     bool
	TimePlayed float64
}

// MenuData stores the current state of the save slot menu
type MenuData struct {
	SelectedIndex  int // slots first, then text speed, then quit
	Slots          []SlotSummary
	Confirming     bool // waiting for a second press to erase a slot
	TextSpeedIndex int
}

// Menu is the component type for the save slot menu state
var Menu = donburi.NewComponentType[MenuData]()
