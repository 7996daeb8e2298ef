package factory

import (
	"github.com/automoto/doomerang-fps/archetypes"
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a standing player whose feet rest on feet, facing yaw
// degrees. The body is registered with world so it gets integrated.
func CreatePlayer(ecs *ecs.ECS, world *physics.World, feet mgl64.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := physics.NewBody(feet.Add(mgl64.Vec3{0, cfg.Player.StandHeight, 0}), cfg.Player.Mass)
	body.SetScale(mgl64.Vec3{1, cfg.Player.StandHeight, 1})
	body.SetRotation(gamemath.Yaw(yaw))
	if world != nil {
		world.AddBody(body)
	}
	components.Body.SetValue(player, components.BodyData{Body: body})

	components.Motion.SetValue(player, components.MotionData{
		CanAcceptInput: true,
		// Spawned on the floor; avoids a landing on the first tick
		IsGrounded:  true,
		WasGrounded: true,
	})

	components.Camera.SetValue(player, components.CameraData{
		Position: components.CameraRoot(body, cfg.Camera.RootOffset),
		Rotation: body.Rotation(),
		FOV:      cfg.Camera.DefaultFOV,
	})
	components.Zoom.SetValue(player, components.ZoomData{
		Target: cfg.Camera.DefaultFOV,
	})

	components.Health.SetValue(player, components.HealthData{
		Current:  cfg.Health.Start,
		Previous: cfg.Health.Start,
		Min:      cfg.Health.Min,
		Max:      cfg.Health.Max,
	})

	fill := 0.0
	if cfg.Health.Max > 0 {
		fill = cfg.Health.Start / cfg.Health.Max
	}
	components.HealthBar.SetValue(player, components.HealthBarData{
		Bar:         fill,
		Chaser:      fill,
		BarColor:    cfg.HUD.BarColor,
		ChaserColor: cfg.HUD.ChaserColor,
	})

	return player
}
