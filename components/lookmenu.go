package components

import "github.com/yohamta/donburi"

// LookMenuOption represents menu items in the pause menu
type LookMenuOption int

const (
	LookOptResume LookMenuOption = iota
	LookOptSensitivity
	LookOptInvertY
	LookOptToggleWalk
	LookOptToggleSprint
	LookOptToggleCrouch
	LookOptToggleZoom
	LookOptCount // Must be last
)

// LookMenuData stores the pause state and menu selection (singleton component)
type LookMenuData struct {
	IsOpen         bool
	SelectedOption LookMenuOption
}

var LookMenu = donburi.NewComponentType[LookMenuData]()
