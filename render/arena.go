package render

import (
	"image/color"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	skyColor     = color.RGBA{20, 24, 32, 255}
	groundColor  = color.RGBA{70, 70, 80, 255}
	ledgeColor   = color.RGBA{140, 120, 90, 255}
	damageColor  = color.RGBA{200, 40, 40, 120}
	healColor    = color.RGBA{40, 200, 80, 120}
	playerColor  = color.RGBA{60, 140, 255, 255}
	facingLength = 1.5
)

// DrawArena renders a top-down view of the level centred on the player.
// Screen up is world +Z.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)

	space := getSpace(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if space == nil || !ok {
		return
	}
	body := components.Body.Get(playerEntry).Body
	view := newTopDown(screen, body.Position())

	for _, box := range space.Boxes() {
		c := groundColor
		switch box.Layer {
		case physics.LayerLedge:
			c = ledgeColor
		case physics.LayerTrigger:
			c = damageColor
			if trigger := triggerFor(box); trigger != nil && trigger.Kind == components.TriggerHeal {
				c = healColor
			}
		}
		view.fillBox(screen, box, c)
	}

	pos := body.Position()
	r := cfg.Player.Radius
	view.fillRect(screen, pos.X()-r, pos.Z()-r, pos.X()+r, pos.Z()+r, playerColor)

	facing := pos.Add(body.Rotation().Rotate(mgl64.Vec3{0, 0, facingLength}))
	x0, y0 := view.project(pos.X(), pos.Z())
	x1, y1 := view.project(facing.X(), facing.Z())
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, playerColor, false)
}

type topDown struct {
	centerX, centerZ float64
	halfW, halfH     float64
	scale            float64
}

func newTopDown(screen *ebiten.Image, center mgl64.Vec3) topDown {
	b := screen.Bounds()
	return topDown{
		centerX: center.X(),
		centerZ: center.Z(),
		halfW:   float64(b.Dx()) / 2,
		halfH:   float64(b.Dy()) / 2,
		scale:   cfg.HUD.MapScale,
	}
}

func (v topDown) project(x, z float64) (float32, float32) {
	sx := v.halfW + (x-v.centerX)*v.scale
	sy := v.halfH - (z-v.centerZ)*v.scale
	return float32(sx), float32(sy)
}

func (v topDown) fillRect(screen *ebiten.Image, minX, minZ, maxX, maxZ float64, c color.Color) {
	x, y := v.project(minX, maxZ)
	w := float32((maxX - minX) * v.scale)
	h := float32((maxZ - minZ) * v.scale)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func (v topDown) fillBox(screen *ebiten.Image, box *physics.Box, c color.Color) {
	v.fillRect(screen, box.Min.X(), box.Min.Z(), box.Max.X(), box.Max.Z(), c)
}
