package config

// ActionID represents a logical boolean action. Movement and look are vectors
// and are not part of this table. Menu actions are read by the look menu only.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionWalk
	ActionSprint
	ActionCrouch
	ActionJump
	ActionInteract
	ActionZoom
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionWalk:       "walk",
	ActionSprint:     "sprint",
	ActionCrouch:     "crouch",
	ActionJump:       "jump",
	ActionInteract:   "interact",
	ActionZoom:       "zoom",
	ActionPause:      "pause",
	ActionMenuUp:     "menuUp",
	ActionMenuDown:   "menuDown",
	ActionMenuLeft:   "menuLeft",
	ActionMenuRight:  "menuRight",
	ActionMenuSelect: "menuSelect",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputMode describes how a raw control maps to the snapshot boolean.
type InputMode int

const (
	// ModeHold mirrors the control state.
	ModeHold InputMode = iota
	// ModeToggle flips on the rising edge of the control.
	ModeToggle
	// ModePress is true only on the tick the control goes down.
	ModePress
)

// InputConfig holds input semantics. Device bindings live with the device layer.
type InputConfig struct {
	DashWindow float64 `yaml:"dashWindow"` // Seconds allowed between the two presses of a dash

	ToggleWalk   bool `yaml:"toggleWalk"`
	ToggleSprint bool `yaml:"toggleSprint"`
	ToggleCrouch bool `yaml:"toggleCrouch"`
	ToggleZoom   bool `yaml:"toggleZoom"`
}

// Input is the global input configuration
var Input InputConfig

// Mode returns the configured mode for an action. Jump is edge-driven and
// interact mirrors the control; the rest are hold unless toggled.
func (c InputConfig) Mode(action ActionID) InputMode {
	switch action {
	case ActionJump:
		return ModePress
	case ActionWalk:
		return toggleOrHold(c.ToggleWalk)
	case ActionSprint:
		return toggleOrHold(c.ToggleSprint)
	case ActionCrouch:
		return toggleOrHold(c.ToggleCrouch)
	case ActionZoom:
		return toggleOrHold(c.ToggleZoom)
	}
	return ModeHold
}

func toggleOrHold(toggle bool) InputMode {
	if toggle {
		return ModeToggle
	}
	return ModeHold
}
