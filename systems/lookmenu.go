package systems

import (
	"fmt"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLookMenu toggles the pause menu and applies look preference changes.
// Every change is written to store at once; only the changed value is added
// to what was saved before. Must run AFTER UpdateInput.
func UpdateLookMenu(store ItemStore) ecs.System {
	return func(e *ecs.ECS) {
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		input := components.Input.Get(playerEntry)
		menu := GetOrCreateLookMenu(e)

		if input.Action(cfg.ActionPause).JustPressed {
			menu.IsOpen = !menu.IsOpen
			menu.SelectedOption = components.LookOptResume
			return
		}
		if !menu.IsOpen {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		n := int(components.LookOptCount)
		if input.Action(cfg.ActionMenuUp).JustPressed {
			menu.SelectedOption = components.LookMenuOption((int(menu.SelectedOption) - 1 + n) % n)
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			menu.SelectedOption = components.LookMenuOption((int(menu.SelectedOption) + 1) % n)
		}

		switch {
		case input.Action(cfg.ActionMenuLeft).JustPressed:
			adjustLookOption(store, menu, -1)
		case input.Action(cfg.ActionMenuRight).JustPressed:
			adjustLookOption(store, menu, +1)
		case input.Action(cfg.ActionMenuSelect).JustPressed:
			if menu.SelectedOption == components.LookOptResume {
				menu.IsOpen = false
				return
			}
			adjustLookOption(store, menu, +1)
		}
	}
}

// adjustLookOption steps sensitivity or flips a boolean preference, then saves.
func adjustLookOption(store ItemStore, menu *components.LookMenuData, direction int) {
	prefs, err := LoadLookSettings(store)
	if err != nil || prefs == nil {
		prefs = &LookSettings{}
	}

	switch menu.SelectedOption {
	case components.LookOptSensitivity:
		v := stepSensitivity(cfg.Camera.Sensitivity, direction)
		prefs.Sensitivity = &v
	case components.LookOptInvertY:
		prefs.InvertY = flipped(cfg.Camera.InvertY)
	case components.LookOptToggleWalk:
		prefs.ToggleWalk = flipped(cfg.Input.ToggleWalk)
	case components.LookOptToggleSprint:
		prefs.ToggleSprint = flipped(cfg.Input.ToggleSprint)
	case components.LookOptToggleCrouch:
		prefs.ToggleCrouch = flipped(cfg.Input.ToggleCrouch)
	case components.LookOptToggleZoom:
		prefs.ToggleZoom = flipped(cfg.Input.ToggleZoom)
	default:
		return
	}

	ApplyLookSettings(prefs)
	_ = SaveLookSettings(store, *prefs)
}

// stepSensitivity moves one step and clamps to the configured range.
func stepSensitivity(current float64, direction int) float64 {
	v := current + float64(direction)*cfg.Menu.SensitivityStep
	return max(cfg.Menu.MinSensitivity, min(v, cfg.Menu.MaxSensitivity))
}

func flipped(v bool) *bool {
	v = !v
	return &v
}

// LookMenuLines returns the label of every option in menu order.
func LookMenuLines() []string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	mode := func(toggle bool) string {
		if toggle {
			return "toggle"
		}
		return "hold"
	}
	return []string{
		components.LookOptResume:       "Resume",
		components.LookOptSensitivity:  fmt.Sprintf("Sensitivity  < %.0f >", cfg.Camera.Sensitivity),
		components.LookOptInvertY:      "Invert Y  " + onOff(cfg.Camera.InvertY),
		components.LookOptToggleWalk:   "Walk  " + mode(cfg.Input.ToggleWalk),
		components.LookOptToggleSprint: "Sprint  " + mode(cfg.Input.ToggleSprint),
		components.LookOptToggleCrouch: "Crouch  " + mode(cfg.Input.ToggleCrouch),
		components.LookOptToggleZoom:   "Zoom  " + mode(cfg.Input.ToggleZoom),
	}
}

// WithPauseCheck wraps a system to skip execution while the menu is open.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// IsPaused reports whether the look menu is open.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.LookMenu.First(e.World)
	return ok && components.LookMenu.Get(entry).IsOpen
}

// GetOrCreateLookMenu returns the singleton LookMenu component, creating if needed.
func GetOrCreateLookMenu(e *ecs.ECS) *components.LookMenuData {
	entry, ok := components.LookMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.LookMenu))
	}
	return components.LookMenu.Get(entry)
}
