package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTasks advances the running exclusive task and the zoom tween by one
// tick. It runs before the motion dispatcher so a task that finishes this tick
// hands input back in the same tick.
func UpdateTasks(ecs *ecs.ECS) {
	dt := cfg.Sim.FixedDelta()

	components.Exclusive.Each(ecs.World, func(e *donburi.Entry) {
		switch components.Exclusive.Get(e).Kind {
		case components.TaskDash:
			advanceDash(e, dt)
		case components.TaskVault:
			advanceVault(e, dt)
		}
	})

	components.Zoom.Each(ecs.World, func(e *donburi.Entry) {
		advanceZoom(components.Zoom.Get(e), components.Camera.Get(e), dt)
	})
}
