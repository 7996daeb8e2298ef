package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func handleDash(e *ecs.ECS, a *actor) {
	if !cfg.Features.Dash || !a.input.DashArmed {
		return
	}
	RequestDash(a.entry)
	PlaySFX(e, cfg.SoundDash)
}

// RequestDash starts a dash along the body's current facing. A running task is
// cancelled first and distance accounting restarts from zero.
func RequestDash(e *donburi.Entry) {
	body := components.Body.Get(e).Body
	task := acquireLock(e, components.TaskDash)
	task.Dash = components.DashTask{
		Direction: body.Rotation().Rotate(gamemath.Forward),
	}
	advanceDash(e, cfg.Sim.FixedDelta())
}

// advanceDash pushes the body for one tick, or releases the lock once the dash
// has covered its distance.
func advanceDash(e *donburi.Entry, dt float64) {
	task := components.Exclusive.Get(e)
	if task.Dash.DistanceCovered >= cfg.Player.DashDistance {
		releaseLock(e, "finished")
		return
	}

	body := components.Body.Get(e).Body
	body.AddForce(task.Dash.Direction.Mul(cfg.Player.DashSpeed), physics.Acceleration)
	task.Dash.DistanceCovered += cfg.Player.DashSpeed * dt
}
