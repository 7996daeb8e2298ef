package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FindVaultTarget looks for a ledge ahead of the camera and a landing point on
// top of it. The first probe runs along the camera forward against ledges; the
// second drops from above the far side of the hit onto any solid surface.
func FindVaultTarget(caster physics.Caster, camPos, camForward mgl64.Vec3, p cfg.PlayerConfig) (mgl64.Vec3, bool) {
	ledge, ok := caster.Raycast(camPos, camForward, p.VaultReach, physics.LayerLedge)
	if !ok {
		return mgl64.Vec3{}, false
	}

	origin := ledge.Point.
		Add(camForward.Normalize().Mul(p.Radius)).
		Add(gamemath.Up.Mul(p.VaultHeight * p.StandHeight))
	landing, ok := caster.Raycast(origin, gamemath.Up.Mul(-1), p.StandHeight, physics.LayerSolid)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return landing.Point, true
}

func handleVaultToLedge(e *ecs.ECS, a *actor) {
	a.motion.VaultAvailable = false
	if !cfg.Features.VaultToLedges {
		return
	}
	if a.motion.IsCrouching || a.motion.IsDashing || a.motion.IsJumping {
		return
	}

	target, ok := FindVaultTarget(a.space, a.camera.Position, a.camera.Forward(), cfg.Player)
	if !ok {
		return
	}
	a.motion.VaultAvailable = true
	a.motion.VaultTarget = target

	if a.input.Interact {
		RequestVault(a.entry, target)
		PlaySFX(e, cfg.SoundVault)
	}
}

// RequestVault starts moving the body onto target. The body turns to face the
// target while it moves, then turns back to its original facing.
func RequestVault(e *donburi.Entry, target mgl64.Vec3) {
	body := components.Body.Get(e).Body
	task := acquireLock(e, components.TaskVault)

	start := body.Rotation()
	facing, ok := gamemath.LookRotation(target.Sub(body.Position()))
	if !ok {
		facing = start
	}
	task.Vault = components.VaultTask{
		Phase:          components.VaultMove,
		StartPosition:  body.Position(),
		Target:         target,
		StartRotation:  start,
		TargetRotation: facing,
	}
	advanceVault(e, cfg.Sim.FixedDelta())
}

func advanceVault(e *donburi.Entry, dt float64) {
	task := components.Exclusive.Get(e)
	body := components.Body.Get(e).Body
	v := &task.Vault
	duration := cfg.Player.VaultDuration

	// The task owns the transform; nothing else may move the body meanwhile
	body.SetVelocity(mgl64.Vec3{})

	v.Elapsed += dt
	t := 1.0
	if duration > 0 {
		t = v.Elapsed / duration
	}

	switch v.Phase {
	case components.VaultMove:
		body.SetPosition(gamemath.LerpVec3(v.StartPosition, v.Target, t))
		body.SetRotation(gamemath.LerpRotation(v.StartRotation, v.TargetRotation, t))
		if t >= 1 {
			v.Phase = components.VaultRestore
			v.Elapsed = 0
		}

	case components.VaultRestore:
		body.SetRotation(gamemath.LerpRotation(v.TargetRotation, v.StartRotation, t))
		if t >= 1 {
			releaseLock(e, "finished")
		}
	}
}
