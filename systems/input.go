package systems

import (
	"log"
	"strings"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for gamepad IDs to avoid allocations
var (
	gamepadIDs          []ebiten.GamepadID
	connectedGamepadIDs []ebiten.GamepadID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run before every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	connectedGamepadIDs = inpututil.AppendJustConnectedGamepadIDs(connectedGamepadIDs[:0])
	for _, id := range connectedGamepadIDs {
		log.Printf("[input] gamepad %d connected: %s", id, ebiten.GamepadName(id))
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var pressed [cfg.ActionCount]bool
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into focus and menu navigation
	left, right, up, down, analogGpID := getAnalogStickState(gamepadIDs)
	if left || right || up || down {
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	pressed[cfg.ActionFocusPrev] = pressed[cfg.ActionFocusPrev] || left
	pressed[cfg.ActionFocusNext] = pressed[cfg.ActionFocusNext] || right
	pressed[cfg.ActionMenuUp] = pressed[cfg.ActionMenuUp] || up
	pressed[cfg.ActionMenuDown] = pressed[cfg.ActionMenuDown] || down

	method := input.LastInputMethod
	if gamepadUsed {
		method = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		method = components.InputKeyboard
	}
	applyInput(input, pressed, method)
}

// applyInput swaps the frame buffers and stores this frame's pressed state.
func applyInput(input *components.InputData, pressed [cfg.ActionCount]bool, method components.InputMethod) {
	input.Previous = input.Current
	input.Current = pressed
	input.LastInputMethod = method
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
