package components

import (
	"github.com/automoto/doomerang-fps/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body.
type BodyData struct {
	Body physics.RigidBody
}

var Body = donburi.NewComponentType[BodyData]()
