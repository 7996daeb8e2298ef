package systems

import (
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// handleJump applies the jump impulse on the tick jump is pressed while
// grounded. JumpCooldown, LandingGrace and AllowJumpWhileSliding are not read.
func handleJump(e *ecs.ECS, a *actor) {
	if !cfg.Features.Jump {
		return
	}
	if !a.motion.IsGrounded || !a.input.Jump {
		return
	}

	impulse := gamemath.JumpImpulse(cfg.Player.JumpHeight, cfg.Player.Gravity, a.body.Mass())
	a.body.AddForce(gamemath.Up.Mul(impulse), physics.Impulse)
	a.motion.IsJumping = true
	PlaySFX(e, cfg.SoundJump)
}
