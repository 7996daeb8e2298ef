package systems

import (
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CanStandUp sweeps a sphere up from the body centre through the space a
// standing body would occupy.
func CanStandUp(caster physics.Caster, body physics.RigidBody, p cfg.PlayerConfig) bool {
	gap := 2*p.StandHeight - body.Scale().Y() - p.Radius
	if gap <= 0 {
		return true
	}
	_, blocked := caster.SphereCast(body.Position(), gamemath.Up, p.Radius, gap, physics.LayerGround)
	return !blocked
}

// handleCrouch eases the body height toward the crouch or stand height on a
// quadratic curve. The timer keeps running while standing is blocked.
func handleCrouch(e *ecs.ECS, a *actor) {
	if !cfg.Features.Crouch {
		return
	}
	if a.motion.IsDashing || a.motion.IsJumping || a.motion.IsVaultingToLedge {
		return
	}

	if a.input.Crouch && !a.motion.CrouchHeld {
		PlaySFX(e, cfg.SoundCrouch)
	}
	a.motion.CrouchHeld = a.input.Crouch

	a.motion.CrouchTimer += a.dt
	progress := gamemath.QuadraticProgress(a.motion.CrouchTimer, cfg.Player.CrouchTime)

	scale := a.body.Scale()
	if a.input.Crouch {
		scale[1] = gamemath.Lerp(scale.Y(), cfg.Player.CrouchHeight, progress)
	} else if CanStandUp(a.space, a.body, cfg.Player) {
		scale[1] = gamemath.Lerp(scale.Y(), cfg.Player.StandHeight, progress)
	}
	a.body.SetScale(scale)

	if progress > 1 {
		a.motion.CrouchTimer = 0
	}
	a.motion.IsCrouching = a.input.Crouch || !IsStanding(scale.Y())
}
