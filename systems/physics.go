package systems

import (
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every body in the collision world.
func UpdatePhysics(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}
	space.Step(cfg.Sim.FixedDelta())
}
