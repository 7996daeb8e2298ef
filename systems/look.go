package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLook is the late pass: it moves the camera to its root, then applies
// pointer look. Pitch only tilts the camera; yaw turns the body.
func UpdateLook(ecs *ecs.ECS) {
	dt := cfg.Sim.FixedDelta()

	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		camera := components.Camera.Get(e)
		body := components.Body.Get(e).Body

		camera.Position = components.CameraRoot(body, cfg.Camera.RootOffset)

		if cfg.Features.MouseLook {
			look := components.Input.Get(e).Snapshot.Look
			dy := look.Y()
			if cfg.Camera.InvertY {
				dy = -dy
			}
			camera.Pitch = mgl64.Clamp(camera.Pitch-dy*cfg.Camera.Sensitivity*dt, cfg.Camera.LookDownLimit, cfg.Camera.LookUpLimit)
			body.MoveRotation(gamemath.Yaw(look.X() * cfg.Camera.Sensitivity * dt))
		}

		camera.Rotation = body.Rotation().Mul(gamemath.Pitch(camera.Pitch))
	})
}
