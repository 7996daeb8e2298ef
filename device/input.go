// Package device adapts ebiten keyboard, mouse, gamepad and audio to the
// controller's input source and sound player.
package device

import (
	"math"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to a single action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings maps every boolean action to its controls.
var DefaultBindings = map[cfg.ActionID]InputBinding{
	cfg.ActionWalk: {
		Keys: []ebiten.Key{ebiten.KeyAltLeft},
	},
	cfg.ActionSprint: {
		Keys: []ebiten.Key{ebiten.KeyShiftLeft},
		// Left stick click
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftStick,
		},
	},
	cfg.ActionCrouch: {
		Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionInteract: {
		Keys: []ebiten.Key{ebiten.KeyE},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	cfg.ActionZoom: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
		// Left trigger
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontBottomLeft,
		},
	},
	cfg.ActionPause: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	cfg.ActionMenuUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		// D-pad Up
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionMenuDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		// D-pad Down
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	cfg.ActionMenuLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		// D-pad Left
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionMenuRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		// D-pad Right
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionMenuSelect: {
		Keys: []ebiten.Key{ebiten.KeyEnter},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
}

// Deadzone for analog stick input (0.0 to 1.0)
const analogDeadzone = 0.25

// stickLookScale converts full right-stick deflection into pointer units.
const stickLookScale = 12

// Input polls ebiten once per tick. It implements systems.InputSource.
type Input struct {
	Bindings map[cfg.ActionID]InputBinding

	gamepadIDs []ebiten.GamepadID
	cursorX    int
	cursorY    int
	hasCursor  bool
}

// NewInput returns an input source using the default bindings.
func NewInput() *Input {
	return &Input{Bindings: DefaultBindings}
}

// Poll reads every bound control and both sticks.
func (in *Input) Poll() components.RawInput {
	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])

	var raw components.RawInput
	for action, binding := range in.Bindings {
		raw.Actions[action] = in.pressed(binding)
	}

	raw.Move = in.keyboardMove().Add(in.stick(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical))
	if l := raw.Move.Len(); l > 1 {
		raw.Move = raw.Move.Mul(1 / l)
	}

	raw.Look = in.pointerDelta().Add(in.stick(ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical).Mul(stickLookScale))
	return raw
}

func (in *Input) pressed(binding InputBinding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// keyboardMove returns WASD as x = strafe, y = forward.
func (in *Input) keyboardMove() mgl64.Vec2 {
	var move mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		move[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		move[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		move[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		move[0]--
	}
	return move
}

// stick returns the first deflected stick with up as positive y.
func (in *Input) stick(hAxis, vAxis ebiten.StandardGamepadAxis) mgl64.Vec2 {
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(gpID, hAxis),
			-ebiten.StandardGamepadAxisValue(gpID, vAxis),
		}
		if math.Abs(v.X()) < analogDeadzone {
			v[0] = 0
		}
		if math.Abs(v.Y()) < analogDeadzone {
			v[1] = 0
		}
		if v != (mgl64.Vec2{}) {
			return v
		}
	}
	return mgl64.Vec2{}
}

// pointerDelta returns the cursor motion since the last poll with up as
// positive y. Motion is only read while the cursor is captured.
func (in *Input) pointerDelta() mgl64.Vec2 {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		in.hasCursor = false
		return mgl64.Vec2{}
	}

	x, y := ebiten.CursorPosition()
	if !in.hasCursor {
		in.cursorX, in.cursorY, in.hasCursor = x, y, true
		return mgl64.Vec2{}
	}
	delta := mgl64.Vec2{float64(x - in.cursorX), float64(in.cursorY - y)}
	in.cursorX, in.cursorY = x, y
	return delta
}
