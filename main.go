package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/device"
	"github.com/automoto/doomerang-fps/fonts"
	"github.com/automoto/doomerang-fps/scenes"
	"github.com/automoto/doomerang-fps/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	appName      = "doomerang_fps"
	defaultLevel = "arena.tmx"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
	prefs   systems.ItemStore
}

func NewGame(level string, prefs systems.ItemStore) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	scene, err := scenes.NewArenaScene(level, device.NewInput(), device.NewSpeaker(), prefs)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene, prefs: prefs}, nil
}

func (g *Game) Update() error {
	if g.watcher != nil && g.watcher.Poll() {
		if err := config.Load(config.Debug.ConfigPath); err != nil {
			log.Printf("Warning: Could not reload config: %v", err)
		} else {
			// Values changed in the look menu win over the file
			applySavedLook(g.prefs)
			ebiten.SetTPS(config.Sim.TickRate)
		}
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Sim.Width, config.Sim.Height)
	return config.Sim.Width, config.Sim.Height
}

func main() {
	flag.StringVar(&config.Debug.ConfigPath, "config", "", "YAML tuning file to overlay on the defaults")
	flag.BoolVar(&config.Debug.WatchConfig, "watch", false, "reload the tuning file when it changes")
	level := flag.String("level", defaultLevel, "embedded level to load")
	flag.Parse()

	if config.Debug.ConfigPath != "" {
		if err := config.Load(config.Debug.ConfigPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Initialize persistence and load saved settings
	var prefs systems.ItemStore
	if store, err := systems.OpenSettingsStore(appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		prefs = store
	}
	applySavedLook(prefs)

	game, err := NewGame(*level, prefs)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if config.Debug.WatchConfig && config.Debug.ConfigPath != "" {
		watcher, err := config.Watch(config.Debug.ConfigPath)
		if err != nil {
			log.Printf("Warning: Could not watch config: %v", err)
		} else {
			game.watcher = watcher
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.Sim.Width*2, config.Sim.Height*2)
	ebiten.SetWindowTitle("doomerang fps")
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// applySavedLook overlays the preferences saved from the look menu, if any.
func applySavedLook(prefs systems.ItemStore) {
	saved, err := systems.LoadLookSettings(prefs)
	if err != nil {
		return
	}
	systems.ApplyLookSettings(saved)
}
