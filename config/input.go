package config

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionAdvance
	ActionCancel
	ActionInteract
	ActionSwap
	ActionJump
	ActionFocusPrev
	ActionFocusNext
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[string]ActionID{
	"advance":     ActionAdvance,
	"cancel":      ActionCancel,
	"interact":    ActionInteract,
	"swap":        ActionSwap,
	"jump":        ActionJump,
	"focus_prev":  ActionFocusPrev,
	"focus_next":  ActionFocusNext,
	"menu_up":     ActionMenuUp,
	"menu_down":   ActionMenuDown,
	"menu_select": ActionMenuSelect,
	"menu_back":   ActionMenuBack,
}

func (a ActionID) String() string {
	for name, id := range actionNames {
		if id == a {
			return name
		}
	}
	return "none"
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

//go:embed bindings.yaml
var defaultBindings []byte

// ParseKeyBindings decodes a YAML document mapping action names to lists of
// ebiten key names.
func ParseKeyBindings(data []byte) (map[ActionID][]ebiten.Key, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse bindings: %w", err)
	}

	out := make(map[ActionID][]ebiten.Key, len(raw))
	for name, keyNames := range raw {
		id, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown action %q", name)
		}
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				return nil, fmt.Errorf("config: action %s: key %q: %w", name, kn, err)
			}
			out[id] = append(out[id], k)
		}
	}
	return out, nil
}

// gamepad buttons per action; keyboard keys come from bindings.yaml
var gamepadBindings = map[ActionID][]ebiten.StandardGamepadButton{
	// A / Cross button
	ActionAdvance: {ebiten.StandardGamepadButtonRightBottom},
	// Start / Options button
	ActionCancel:     {ebiten.StandardGamepadButtonCenterRight},
	ActionInteract:   {ebiten.StandardGamepadButtonRightBottom},
	ActionSwap:       {ebiten.StandardGamepadButtonRightTop},
	ActionJump:       {ebiten.StandardGamepadButtonRightBottom},
	ActionFocusPrev:  {ebiten.StandardGamepadButtonLeftLeft},
	ActionFocusNext:  {ebiten.StandardGamepadButtonLeftRight},
	ActionMenuUp:     {ebiten.StandardGamepadButtonLeftTop},
	ActionMenuDown:   {ebiten.StandardGamepadButtonLeftBottom},
	ActionMenuSelect: {ebiten.StandardGamepadButtonRightBottom},
	// B / Circle button
	ActionMenuBack: {ebiten.StandardGamepadButtonRightRight},
}

func init() {
	keys, err := ParseKeyBindings(defaultBindings)
	if err != nil {
		panic(fmt.Sprintf("embedded key bindings: %v", err))
	}

	Input = InputConfig{
		Bindings:       make(map[ActionID]InputBinding, ActionCount),
		AnalogDeadzone: 0.5,
	}
	for id := ActionNone + 1; id < ActionCount; id++ {
		Input.Bindings[id] = InputBinding{
			Keys:                   keys[id],
			StandardGamepadButtons: gamepadBindings[id],
		}
	}
}
