package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/doomerang-fps/assets"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/render"
	"github.com/automoto/doomerang-fps/systems"
	"github.com/automoto/doomerang-fps/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the first-person controller in a single arena.
type ArenaScene struct {
	ecs   *ecs.ECS
	level string
	input systems.InputSource
	sound systems.SoundPlayer
	prefs systems.ItemStore
}

// NewArenaScene loads the named level and spawns the player at its spawn point.
// Look menu changes are saved to prefs, which may be nil.
func NewArenaScene(level string, input systems.InputSource, sound systems.SoundPlayer, prefs systems.ItemStore) (*ArenaScene, error) {
	as := &ArenaScene{level: level, input: input, sound: sound, prefs: prefs}
	if err := as.configure(); err != nil {
		return nil, err
	}
	return as, nil
}

func (as *ArenaScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := as.configure(); err != nil {
			log.Printf("Warning: reload %s failed: %v", as.level, err)
		}
	}
	as.ecs.Update()

	switch {
	case systems.IsPaused(as.ecs):
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() error {
	arena, err := assets.LoadArena(as.level)
	if err != nil {
		return fmt.Errorf("load arena: %w", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Fixed order: input first, sound dispatch last
	ecs.AddSystem(systems.UpdateInput(as.input))
	ecs.AddSystem(systems.UpdateLookMenu(as.prefs))

	// Gameplay systems wrapped with the pause check
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateGround))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateGravity))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTasks))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMotion))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTriggers))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHealth))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHealthBar))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLook))
	ecs.AddSystem(systems.UpdateAudio(as.sound))

	ecs.AddRenderer(cfg.Default, render.DrawArena)
	ecs.AddRenderer(cfg.Default, render.DrawHUD)
	ecs.AddRenderer(cfg.Default, render.DrawDebug)
	ecs.AddRenderer(cfg.Default, render.DrawLookMenu)

	factory.CreateAudio(ecs)
	world, err := factory.CreateLevel(ecs, arena)
	if err != nil {
		return err
	}
	factory.CreatePlayer(ecs, world, arena.Spawn.Position, arena.Spawn.Yaw)

	as.ecs = ecs
	return nil
}
