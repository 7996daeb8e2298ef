package render

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/fonts"
	"github.com/automoto/doomerang-fps/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const menuHint = "Arrows: Navigate   Left/Right/Enter: Change   Esc: Resume"

// DrawLookMenu renders the pause overlay and the look settings.
func DrawLookMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(ecs) {
		return
	}
	menu := systems.GetOrCreateLookMenu(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.OverlayColor, false)

	lines := systems.LookMenuLines()
	step := cfg.Menu.ItemHeight + cfg.Menu.ItemGap
	startY := (height - float64(len(lines))*step) / 2

	face := fonts.HUD.Get()
	for i, line := range lines {
		c := cfg.Menu.TextColorNormal
		if components.LookMenuOption(i) == menu.SelectedOption {
			c = cfg.Menu.TextColorSelected
		}
		// Approximate width for the 12pt face
		x := int((width - float64(len(line)*7)) / 2)
		y := int(startY + float64(i)*step + cfg.Menu.ItemHeight)
		text.Draw(screen, line, face, x, y, c)
	}

	hintX := int((width - float64(len(menuHint)*6)) / 2)
	text.Draw(screen, menuHint, fonts.Debug.Get(), hintX, int(height)-12, cfg.Menu.TextColorNormal)
}
