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

// GroundResult is the outcome of one ground classification.
type GroundResult struct {
	Grounded     bool
	ContactPoint mgl64.Vec3
}

// groundProbes returns the five probe directions: straight down first, then
// the angled probes in the order their hits override the contact point.
func groundProbes(angle float64) [5]mgl64.Vec3 {
	down := gamemath.Up.Mul(-1)
	rad := mgl64.DegToRad(angle)
	return [5]mgl64.Vec3{
		down,
		mgl64.QuatRotate(rad, gamemath.Right).Rotate(down),
		mgl64.QuatRotate(-rad, gamemath.Right).Rotate(down),
		mgl64.QuatRotate(rad, gamemath.Forward).Rotate(down),
		mgl64.QuatRotate(-rad, gamemath.Forward).Rotate(down),
	}
}

// ClassifyGround casts the ground probes from origin. The straight-down probe
// is extent+tolerance long and the angled ones are extent long. Any hit means
// grounded; the contact point is the last hit in probe order.
func ClassifyGround(caster physics.Caster, origin mgl64.Vec3, extent, tolerance, angle float64) GroundResult {
	var result GroundResult
	for i, dir := range groundProbes(angle) {
		length := extent
		if i == 0 {
			length += tolerance
		}
		hit, ok := caster.Raycast(origin, dir, length, physics.LayerSolid)
		if !ok {
			continue
		}
		result.Grounded = true
		result.ContactPoint = hit.Point
	}
	return result
}

// UpdateGround classifies every body and snaps grounded ones onto the floor.
// Must run BEFORE gravity and every motion handler.
func UpdateGround(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		body := components.Body.Get(e).Body

		motion.WasGrounded = motion.IsGrounded

		// A rising body has left the ground; probing would snap a fresh jump
		// straight back down.
		result := GroundResult{}
		if body.Velocity().Y() <= 0 {
			result = ClassifyGround(space, body.CenterOfMass(), body.Scale().Y(), cfg.Player.GroundTolerance, cfg.Player.ProbeAngle)
		}

		motion.IsGrounded = result.Grounded
		if result.Grounded {
			pos := body.Position()
			body.SetPosition(mgl64.Vec3{pos.X(), result.ContactPoint.Y() + body.Scale().Y(), pos.Z()})
			v := body.Velocity()
			body.SetVelocity(mgl64.Vec3{v.X(), 0, v.Z()})
			motion.GroundPoint = result.ContactPoint
		}
		motion.CurrentVelocity = body.Velocity()

		if motion.IsGrounded && !motion.WasGrounded {
			motion.IsJumping = false
			PlaySFX(ecs, cfg.SoundLand)
		}
	})
}
