package systems

import (
	"math"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dashAxisThreshold is the stick deflection that counts as a direction press.
const dashAxisThreshold = 0.5

// InputSource is the device layer. Poll is called once per tick.
type InputSource interface {
	Poll() components.RawInput
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() components.RawInput

func (f InputSourceFunc) Poll() components.RawInput { return f() }

// UpdateInput reads the device and rebuilds every actor's snapshot.
// Must run BEFORE any handler that reads input.
func UpdateInput(source InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		raw := source.Poll()
		dt := cfg.Sim.FixedDelta()

		components.Input.Each(ecs.World, func(e *donburi.Entry) {
			input := components.Input.Get(e)

			// Swap buffers: current becomes previous
			input.Previous = input.Current
			input.Current = raw.Actions
			input.Move = raw.Move
			input.Look = raw.Look

			snap := BuildSnapshot(input, cfg.Input)
			if e.HasComponent(components.DashGesture) {
				gesture := components.DashGesture.Get(e)
				if dir, ok := DetectDash(gesture, raw.Move, dt, cfg.Input.DashWindow); ok {
					snap.Dash = dir
					snap.DashArmed = true
				}
			}
			input.Snapshot = snap
		})
	}
}

// BuildSnapshot resolves every action through its configured mode. Toggle
// latches are kept on input.
func BuildSnapshot(input *components.InputData, conf cfg.InputConfig) components.InputSnapshot {
	resolve := func(action cfg.ActionID) bool {
		state := input.Action(action)
		switch conf.Mode(action) {
		case cfg.ModePress:
			return state.JustPressed
		case cfg.ModeToggle:
			if state.JustPressed {
				input.Toggled[action] = !input.Toggled[action]
			}
			return input.Toggled[action]
		}
		return state.Pressed
	}

	return components.InputSnapshot{
		Move:     input.Move,
		Look:     input.Look,
		Walk:     resolve(cfg.ActionWalk),
		Sprint:   resolve(cfg.ActionSprint),
		Crouch:   resolve(cfg.ActionCrouch),
		Jump:     resolve(cfg.ActionJump),
		Interact: resolve(cfg.ActionInteract),
		Zoom:     resolve(cfg.ActionZoom),
	}
}

// DetectDash advances the double-press detector by one tick and reports the
// dash direction when the gesture arms. A press is the move input entering a
// direction, either from rest or from another direction.
func DetectDash(g *components.DashGestureData, move mgl64.Vec2, dt, window float64) (mgl64.Vec2, bool) {
	dir := quantize(move)

	g.TimeSinceLastPress += dt
	if (g.PressCount > 0 || g.Consumed) && g.TimeSinceLastPress > window {
		resetGesture(g)
	}

	pressed := dir != (mgl64.Vec2{}) && dir != g.Held
	g.Held = dir
	if !pressed {
		return mgl64.Vec2{}, false
	}

	if dir != g.PreviousDirection {
		resetGesture(g)
		g.PreviousDirection = dir
	}
	if g.Consumed {
		return mgl64.Vec2{}, false
	}

	g.PressCount++
	g.TimeSinceLastPress = 0
	if g.PressCount < 2 {
		return mgl64.Vec2{}, false
	}

	g.PressCount = 0
	g.Consumed = true
	return dir.Normalize(), true
}

func resetGesture(g *components.DashGestureData) {
	g.PreviousDirection = mgl64.Vec2{}
	g.PressCount = 0
	g.TimeSinceLastPress = 0
	g.Consumed = false
}

func quantize(move mgl64.Vec2) mgl64.Vec2 {
	axis := func(v float64) float64 {
		if math.Abs(v) < dashAxisThreshold {
			return 0
		}
		return math.Copysign(1, v)
	}
	return mgl64.Vec2{axis(move.X()), axis(move.Y())}
}
