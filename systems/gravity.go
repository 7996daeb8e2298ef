package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity accelerates airborne bodies downward. Grounded bodies were
// already given zero vertical velocity by the ground snap.
func UpdateGravity(ecs *ecs.ECS) {
	if !cfg.Features.Gravity {
		return
	}
	dt := cfg.Sim.FixedDelta()

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		if motion.IsGrounded || motion.IsVaultingToLedge {
			return
		}
		body := components.Body.Get(e).Body
		body.AddForce(mgl64.Vec3{0, cfg.Player.Gravity * dt, 0}, physics.VelocityChange)
	})
}
