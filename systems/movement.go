package systems

import (
	"math"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// standEpsilon is how close the height must be to count as standing.
const standEpsilon = 1e-6

// ResolveTargetSpeed picks the speed the actor is steering toward.
// Priority: crouch, sprint, walk, dash, then run. A body that has not finished
// standing moves at crouch speed, and no movement input means zero.
func ResolveTargetSpeed(in components.InputSnapshot, dashing, standing bool, p cfg.PlayerConfig) float64 {
	target := p.RunSpeed
	switch {
	case in.Crouch:
		target = p.CrouchSpeed
	case in.Sprint:
		target = p.SprintSpeed
	case in.Walk:
		target = p.WalkSpeed
	case dashing:
		target = p.DashSpeed
	}

	if !standing && !in.Crouch {
		target = p.CrouchSpeed
	}
	if !in.HasMove() {
		target = 0
	}
	return target
}

// IsStanding reports whether a body height has returned to the standing value.
func IsStanding(height float64) bool {
	return math.Abs(height-cfg.Player.StandHeight) < standEpsilon
}

func updateSpeed(a *actor) {
	// A running dash holds the input lock, so only an armed gesture counts here
	a.motion.TargetSpeed = ResolveTargetSpeed(a.input, a.input.DashArmed, IsStanding(a.body.Scale().Y()), cfg.Player)
	a.motion.CurrentSpeed = gamemath.ApproachSpeed(a.motion.CurrentSpeed, a.motion.TargetSpeed, cfg.Player.Acceleration*a.dt)
}

func handleMovement(a *actor) {
	if !cfg.Features.Move {
		return
	}

	switch {
	case a.motion.IsGrounded:
		updateSpeed(a)
		local := mgl64.Vec3{a.input.Move.X(), 0, a.input.Move.Y()}
		desired := a.body.Rotation().Rotate(local).Mul(a.motion.CurrentSpeed)
		change := desired.Sub(a.body.Velocity())
		change[1] = 0
		a.body.AddForce(change, physics.VelocityChange)

	default:
		// Airborne: no steering, horizontal velocity decays
		drag := gamemath.Horizontal(a.motion.CurrentVelocity).Mul(-cfg.Player.AirDrag * a.dt)
		a.body.AddForce(drag, physics.VelocityChange)
	}
}
