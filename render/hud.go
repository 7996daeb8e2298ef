// Package render draws the arena map, the health HUD and debug readouts.
// Every function here is a donburi renderer.
package render

import (
	"image/color"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the damage overlay, the crosshair and the health bar with
// its chaser in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.HealthBar) {
		return
	}
	bar := components.HealthBar.Get(playerEntry)

	drawOverlay(screen, bar)
	drawCrosshair(screen)

	x, y := float32(cfg.HUD.BarX), float32(cfg.HUD.BarY)
	w, h := float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight)

	vector.FillRect(screen, x, y, w, h, cfg.HUD.BackgroundColor, false)
	// Chaser sits behind the bar so only the gap between them shows
	vector.FillRect(screen, x, y, w*float32(bar.Chaser), h, bar.ChaserColor, false)
	vector.FillRect(screen, x, y, w*float32(bar.Bar), h, bar.BarColor, false)

	if bar.Severe {
		vector.FillRect(screen, x, y+h, w, 2, cfg.HUD.SevereColor, false)
	}
}

func drawOverlay(screen *ebiten.Image, bar *components.HealthBarData) {
	c := cfg.HUD.OverlayColor
	alpha := overlayAlpha(c.A, bar)
	if alpha <= 0 {
		return
	}
	tint := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(min(alpha, 255) / 2)}

	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), tint, false)
}

// overlayAlpha scales the overlay colour by the fade. Severe damage keeps a
// faint tint even after the fade ends.
func overlayAlpha(base uint8, bar *components.HealthBarData) float64 {
	alpha := float64(base) * max(bar.OverlayAlpha, 0)
	if bar.Severe {
		alpha = max(alpha, float64(base)/4)
	}
	return alpha
}

func drawCrosshair(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	size := float32(cfg.HUD.CrosshairSize)

	vector.StrokeLine(screen, cx-size, cy, cx+size, cy, 1, cfg.HUD.TextColor, false)
	vector.StrokeLine(screen, cx, cy-size, cx, cy+size, 1, cfg.HUD.TextColor, false)
}
