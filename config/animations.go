package config

// SheetDef describes a horizontal sprite sheet with square tiles.
type SheetDef struct {
	Path    string
	Frames  int
	FPS     float64
	Looping bool
}

// Last is the index of the final frame.
func (d SheetDef) Last() int { return d.Frames - 1 }

// CrackingSheets are the punch and gun part sheets of the cracking minigame.
var CrackingSheets = map[string]SheetDef{
	"punch_lower_left":  {Path: "cracking/punch_lower_left.png", Frames: 2, FPS: 12},
	"punch_lower_right": {Path: "cracking/punch_lower_right.png", Frames: 2, FPS: 12},
	"punch_upper_left":  {Path: "cracking/punch_upper_left.png", Frames: 2, FPS: 12},
	"punch_upper_right": {Path: "cracking/punch_upper_right.png", Frames: 2, FPS: 12},
	"gun_0":             {Path: "cracking/gun_0.png", Frames: 4, FPS: 60, Looping: true},
	"gun_1":             {Path: "cracking/gun_1.png", Frames: 15, FPS: 24, Looping: true},
	"gun_2":             {Path: "cracking/gun_2.png", Frames: 4, FPS: 24, Looping: true},
	"gun_3":             {Path: "cracking/gun_3.png", Frames: 4, FPS: 12, Looping: true},
	"crack":             {Path: "cracking/crack.png", Frames: 6, FPS: 1},
}

// PunchParts lists the punch sheets in spawn order. The first two are used by
// the single and fast punch phases, all four by the quad punch.
var PunchParts = []string{
	"punch_lower_left",
	"punch_lower_right",
	"punch_upper_left",
	"punch_upper_right",
}

// PropSheets are hub interactables.
var PropSheets = map[string]SheetDef{
	"sign":     {Path: "props/sign.png", Frames: 1, FPS: 1},
	"stone":    {Path: "props/stone.png", Frames: 1, FPS: 1},
	"egg":      {Path: "props/egg.png", Frames: 2, FPS: 2, Looping: true},
	"ucko":     {Path: "ucko/group.png", Frames: 1, FPS: 1},
	"ninjucko": {Path: "ninjucko/idle.png", Frames: 4, FPS: 8, Looping: true},
	"wizucko":  {Path: "wizucko/idle.png", Frames: 4, FPS: 8, Looping: true},
}
