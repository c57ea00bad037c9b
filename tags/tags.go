package tags

import "github.com/yohamta/donburi"

var (
	CutsceneRoot  = donburi.NewTag().SetName("CutsceneRoot")
	Element       = donburi.NewTag().SetName("Element")
	Bar           = donburi.NewTag().SetName("Bar")
	Interactable  = donburi.NewTag().SetName("Interactable")
	CrackingScene = donburi.NewTag().SetName("CrackingScene")
)
