package components

import (
	"github.com/automoto/doomerang-fps/physics"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the collision world shared by every actor.
type SpaceData struct {
	*physics.World
}

// Space is a singleton component.
var Space = donburi.NewComponentType[SpaceData]()
