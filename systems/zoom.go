package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// handleZoom starts a field of view tween whenever the zoom input flips.
func handleZoom(a *actor) {
	if !cfg.Features.Zoom {
		return
	}
	zoom := components.Zoom.Get(a.entry)
	if a.input.Zoom == zoom.Zoomed {
		return
	}

	zoom.Zoomed = a.input.Zoom
	zoom.Target = cfg.Camera.DefaultFOV
	if zoom.Zoomed {
		zoom.Target = cfg.Camera.ZoomFOV
	}
	zoom.Tween = gween.New(float32(a.camera.FOV), float32(zoom.Target), float32(cfg.Camera.TimeToZoom), ease.Linear)
}

func advanceZoom(zoom *components.ZoomData, camera *components.CameraData, dt float64) {
	if zoom.Tween == nil {
		return
	}
	fov, finished := zoom.Tween.Update(float32(dt))
	camera.FOV = float64(fov)
	if finished {
		camera.FOV = zoom.Target
		zoom.Tween = nil
	}
}
