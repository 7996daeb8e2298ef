package components

import (
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// RawInput is one poll of the input device.
type RawInput struct {
	Move    mgl64.Vec2 // x = strafe, y = forward
	Look    mgl64.Vec2 // Pointer delta since the last poll
	Actions [cfg.ActionCount]bool
}

// InputSnapshot is the read-only view of the input for one tick. Handlers
// receive it by value.
type InputSnapshot struct {
	Move mgl64.Vec2
	Look mgl64.Vec2

	Walk     bool
	Sprint   bool
	Crouch   bool
	Jump     bool
	Interact bool
	Zoom     bool

	Dash      mgl64.Vec2 // Direction of the armed dash gesture
	DashArmed bool
}

// HasMove reports whether any movement input is present.
func (s InputSnapshot) HasMove() bool {
	return s.Move.X() != 0 || s.Move.Y() != 0
}

// InputData stores the current and previous tick's pressed state for all
// actions together with the snapshot built from them.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current tick's Pressed state
	Previous [cfg.ActionCount]bool // Previous tick's Pressed state
	Toggled  [cfg.ActionCount]bool // Latched value for toggle-mode actions
	Move     mgl64.Vec2
	Look     mgl64.Vec2
	Snapshot InputSnapshot
}

// Action returns the temporal state of an action by comparing ticks.
func (d *InputData) Action(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      d.Current[action],
		JustPressed:  d.Current[action] && !d.Previous[action],
		JustReleased: !d.Current[action] && d.Previous[action],
	}
}

var Input = donburi.NewComponentType[InputData]()

// DashGestureData tracks the double-press of a movement direction.
type DashGestureData struct {
	PreviousDirection  mgl64.Vec2 // Quantized direction of the last press
	PressCount         int
	TimeSinceLastPress float64
	Consumed           bool       // A dash fired and the direction has not changed since
	Held               mgl64.Vec2 // Quantized direction held last tick
}

var DashGesture = donburi.NewComponentType[DashGestureData]()
