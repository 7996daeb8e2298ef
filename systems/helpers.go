package systems

import (
	"github.com/automoto/doomerang-fps/components"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/yohamta/donburi/ecs"
)

// getSpace returns the collision world, or nil before the level is built.
func getSpace(e *ecs.ECS) *physics.World {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).World
}
