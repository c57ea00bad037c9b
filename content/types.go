package content

import (
	"fmt"
	"strings"

	"github.com/automoto/monkebucko/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// CutsceneID names an authored cutscene.
type CutsceneID int

const (
	CutsceneNone CutsceneID = iota
	CutsceneUckoIntro
	CutsceneNinjuckoIntro
	CutsceneWizuckoWin
	CutsceneWizuckoIntro
)

var cutsceneNames = [...]string{
	CutsceneNone:          "none",
	CutsceneUckoIntro:     "ucko_intro",
	CutsceneNinjuckoIntro: "ninjucko_intro",
	CutsceneWizuckoWin:    "wizucko_win",
	CutsceneWizuckoIntro:  "wizucko_intro",
}

func (id CutsceneID) String() string {
	if id < 0 || int(id) >= len(cutsceneNames) {
		return fmt.Sprintf("cutscene(%d)", int(id))
	}
	return cutsceneNames[id]
}

// ParseCutsceneID resolves a snake_case cutscene name.
func ParseCutsceneID(name string) (CutsceneID, error) {
	for i, n := range cutsceneNames {
		if n == name {
			return CutsceneID(i), nil
		}
	}
	return CutsceneNone, fmt.Errorf("%w: %q", ErrUnknownCutscene, name)
}

func (id *CutsceneID) UnmarshalText(text []byte) error {
	parsed, err := ParseCutsceneID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id CutsceneID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ActionMode selects what an action does to its element.
type ActionMode int

const (
	ModeTranslate ActionMode = iota
	ModeScale
	ModeActivate
	ModeDeactivate
)

func (m ActionMode) String() string {
	switch m {
	case ModeScale:
		return "scale"
	case ModeActivate:
		return "activate"
	case ModeDeactivate:
		return "deactivate"
	}
	return "translate"
}

func (m *ActionMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "translate":
		*m = ModeTranslate
	case "scale":
		*m = ModeScale
	case "activate":
		*m = ModeActivate
	case "deactivate":
		*m = ModeDeactivate
	default:
		return fmt.Errorf("content: unknown action mode %q", text)
	}
	return nil
}

// Action is one timed effect on one element within a line.
type Action struct {
	Element  int        `yaml:"element"`
	Mode     ActionMode `yaml:"mode"`
	Start    dmath.Vec2 `yaml:"start"`
	End      dmath.Vec2 `yaml:"end"`
	Ease     string     `yaml:"ease"`
	Delay    float64    `yaml:"delay"`
	Duration float64    `yaml:"duration"`
}

// Teleport moves an element instantly by way of a one millisecond translate.
func Teleport(element int, from, to dmath.Vec2) Action {
	return Action{
		Element:  element,
		Mode:     ModeTranslate,
		Start:    from,
		End:      to,
		Duration: config.Cutscene.TeleportDuration,
	}
}

// Line is one line of dialogue and the actions played with it.
type Line struct {
	Speaker string   `yaml:"speaker"`
	Text    string   `yaml:"text"`
	Speed   float64  `yaml:"speed"`
	Delay   *float64 `yaml:"delay"`
	Actions []Action `yaml:"actions"`
}

// DisplayText is the text shown in the panel, prefixed with the speaker.
func (l Line) DisplayText() string {
	if l.Speaker == "" {
		return l.Text
	}
	return l.Speaker + config.Cutscene.SpeakerSeparator + l.Text
}

// Element is a sprite taking part in a cutscene. Frames are laid out
// horizontally in square tiles.
type Element struct {
	Path    string      `yaml:"path"`
	Size    *dmath.Vec2 `yaml:"size"`
	Frames  int         `yaml:"frames"`
	FPS     float64     `yaml:"fps"`
	Looping bool        `yaml:"looping"`
}

// Cutscene is the authored content of one cutscene id.
type Cutscene struct {
	ID       CutsceneID `yaml:"id"`
	Elements []Element  `yaml:"elements"`
	Lines    []Line     `yaml:"lines"`
}

// ApplyDefaults fills zero values with the configured defaults.
func (c *Cutscene) ApplyDefaults() {
	for i := range c.Elements {
		e := &c.Elements[i]
		if e.Frames <= 0 {
			e.Frames = 1
		}
		if e.FPS <= 0 {
			e.FPS = config.Cutscene.DefaultFPS
		}
	}
	for i := range c.Lines {
		l := &c.Lines[i]
		if l.Speed <= 0 {
			l.Speed = config.Cutscene.DefaultTextSpeed
		}
		for j := range l.Actions {
			a := &l.Actions[j]
			if a.Duration <= 0 && (a.Mode == ModeTranslate || a.Mode == ModeScale) {
				a.Duration = config.Cutscene.DefaultDuration
			}
		}
	}
}
