package render

import (
	"fmt"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/fonts"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints the player's motion and health state under the bar.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.HUD.ShowDebug {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	motion := components.Motion.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	camera := components.Camera.Get(playerEntry)
	pos := components.Body.Get(playerEntry).Body.Position()

	lines := []string{
		fmt.Sprintf("HP %.0f/%.0f", health.Current, health.Max),
		fmt.Sprintf("pos %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("speed %.2f -> %.2f", motion.CurrentSpeed, motion.TargetSpeed),
		fmt.Sprintf("pitch %.1f fov %.1f", camera.Pitch, camera.FOV),
		fmt.Sprintf("%s %s", groundedLabel(motion), actionLabel(motion)),
		fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
	}

	face := fonts.Debug.Get()
	y := int(cfg.HUD.BarY+cfg.HUD.BarHeight) + 16
	for _, line := range lines {
		text.Draw(screen, line, face, int(cfg.HUD.BarX), y, cfg.HUD.TextColor)
		y += 12
	}
}

func groundedLabel(m *components.MotionData) string {
	if m.IsGrounded {
		return "grounded"
	}
	return "airborne"
}

func actionLabel(m *components.MotionData) string {
	switch {
	case m.IsVaultingToLedge:
		return "vault"
	case m.IsDashing:
		return "dash"
	case m.IsJumping:
		return "jump"
	case m.IsCrouching:
		return "crouch"
	}
	return ""
}

func getSpace(e *ecs.ECS) *physics.World {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).World
}

// triggerFor returns the trigger that owns a collider, if any.
func triggerFor(box *physics.Box) *components.TriggerData {
	entry, ok := box.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Trigger) {
		return nil
	}
	return components.Trigger.Get(entry)
}
