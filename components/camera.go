package components

import (
	"github.com/automoto/doomerang-fps/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the first-person view transform.
type CameraData struct {
	Position mgl64.Vec3 // World position, synced to the camera root
	Pitch    float64    // Degrees, positive looks down
	Rotation mgl64.Quat // World rotation: body yaw then pitch
	FOV      float64
}

// Forward returns the direction the camera looks along.
func (c *CameraData) Forward() mgl64.Vec3 {
	return c.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

// CameraRoot returns the world position of a body-space camera offset. The
// vertical offset scales with the body height.
func CameraRoot(body physics.RigidBody, offset mgl64.Vec3) mgl64.Vec3 {
	scale := body.Scale()
	local := mgl64.Vec3{offset.X() * scale.X(), offset.Y() * scale.Y(), offset.Z() * scale.Z()}
	return body.Position().Add(body.Rotation().Rotate(local))
}

var Camera = donburi.NewComponentType[CameraData]()
