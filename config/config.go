package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every entity is created on.
const Default = ecs.LayerDefault

// SimConfig controls the fixed simulation step and the window.
type SimConfig struct {
	TickRate int `yaml:"tickRate"` // Fixed ticks per second
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// FixedDelta returns the duration of one simulation tick in seconds.
func (s SimConfig) FixedDelta() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(s.TickRate)
}

// PlayerConfig contains all movement tuning for the first-person body.
// Heights are vertical scale values; the body's half-extent equals its Y scale.
type PlayerConfig struct {
	// Speeds (m/s)
	RunSpeed     float64 `yaml:"runSpeed"`
	WalkSpeed    float64 `yaml:"walkSpeed"`
	SprintSpeed  float64 `yaml:"sprintSpeed"`
	CrouchSpeed  float64 `yaml:"crouchSpeed"`
	DashSpeed    float64 `yaml:"dashSpeed"`
	Acceleration float64 `yaml:"acceleration"` // Speed change per second toward the target

	// Dash
	DashDistance float64 `yaml:"dashDistance"`

	// Jump
	JumpHeight            float64 `yaml:"jumpHeight"`
	Gravity               float64 `yaml:"gravity"`
	Mass                  float64 `yaml:"mass"`
	JumpCooldown          float64 `yaml:"jumpCooldown"`          // Declared, not read
	LandingGrace          float64 `yaml:"landingGrace"`          // Declared, not read
	AllowJumpWhileSliding bool    `yaml:"allowJumpWhileSliding"` // Declared, not read

	// Ground probes
	GroundTolerance float64 `yaml:"groundTolerance"` // Extra length of the straight-down probe
	ProbeAngle      float64 `yaml:"probeAngle"`      // Degrees of the four angled probes

	// Air
	AirDrag float64 `yaml:"airDrag"` // Horizontal decay rate per second while airborne

	// Dimensions
	StandHeight  float64 `yaml:"standHeight"`
	CrouchHeight float64 `yaml:"crouchHeight"`
	Radius       float64 `yaml:"radius"`
	CrouchTime   float64 `yaml:"crouchTime"` // Seconds for the quadratic crouch ease

	// Vault
	VaultHeight   float64 `yaml:"vaultHeight"`   // Fraction of stand height above the ledge hit
	VaultReach    float64 `yaml:"vaultReach"`    // Forward probe length from the camera
	VaultDuration float64 `yaml:"vaultDuration"` // Seconds per vault phase
}

// FeatureConfig gates each handler. A disabled feature is a silent no-op.
type FeatureConfig struct {
	Move          bool `yaml:"move"`
	Jump          bool `yaml:"jump"`
	Crouch        bool `yaml:"crouch"`
	Dash          bool `yaml:"dash"`
	VaultToLedges bool `yaml:"vaultToLedges"`
	Zoom          bool `yaml:"zoom"`
	Gravity       bool `yaml:"gravity"`
	MouseLook     bool `yaml:"mouseLook"`
}

// CameraConfig contains mouse-look and field of view settings.
type CameraConfig struct {
	Sensitivity   float64    `yaml:"sensitivity"`
	InvertY       bool       `yaml:"invertY"`
	LookDownLimit float64    `yaml:"lookDownLimit"` // Lower pitch clamp in degrees, pitch grows downward
	LookUpLimit   float64    `yaml:"lookUpLimit"`   // Upper pitch clamp in degrees
	DefaultFOV    float64    `yaml:"defaultFov"`
	ZoomFOV       float64    `yaml:"zoomFov"`
	SprintFOV     float64    `yaml:"sprintFov"` // Declared, not read
	TimeToZoom    float64    `yaml:"timeToZoom"`
	RootOffset    mgl64.Vec3 `yaml:"rootOffset"` // Camera root in body space, Y scales with height
}

// HealthConfig contains health, effect and bar animation tuning.
type HealthConfig struct {
	Max   float64 `yaml:"max"`
	Min   float64 `yaml:"min"`
	Start float64 `yaml:"start"`

	HurtThreshold         float64 `yaml:"hurtThreshold"`
	SeverelyHurtThreshold float64 `yaml:"severelyHurtThreshold"`

	CanDie                 bool    `yaml:"canDie"`
	CanReceiveHealOverTime bool    `yaml:"canReceiveHealOverTime"`
	OverTimeTickInterval   float64 `yaml:"overTimeTickInterval"` // Seconds between over-time ticks

	RegenerationEnabled bool    `yaml:"regenerationEnabled"`
	RegenerationDelay   float64 `yaml:"regenerationDelay"` // Seconds without damage before regen
	RegenerationRate    float64 `yaml:"regenerationRate"`  // Health per second

	AnimationSpeed float64 `yaml:"animationSpeed"`
	HurtFlashCount int     `yaml:"hurtFlashCount"`
	ChaserDelay    float64 `yaml:"chaserDelay"`    // Seconds before the chaser starts descending
	BarLerpTime    float64 `yaml:"barLerpTime"`    // Seconds for bar or chaser to converge
	TriggerAmount  float64 `yaml:"triggerAmount"`  // Default amount for map trigger volumes
	TriggerTicks   int     `yaml:"triggerTicks"`   // Default tick count for over-time triggers
}

// FlashDuration returns the length of a single hurt flash phase.
func (h HealthConfig) FlashDuration() float64 {
	if h.HurtFlashCount <= 0 {
		return 0
	}
	return h.AnimationSpeed / float64(h.HurtFlashCount*2) * 2
}

// HUDConfig contains HUD layout and colors.
type HUDConfig struct {
	BarX      float64 `yaml:"barX"`
	BarY      float64 `yaml:"barY"`
	BarWidth  float64 `yaml:"barWidth"`
	BarHeight float64 `yaml:"barHeight"`

	BarColor        color.RGBA `yaml:"barColor"`
	BackgroundColor color.RGBA `yaml:"backgroundColor"`
	ChaserColor     color.RGBA `yaml:"chaserColor"`
	HurtChaserColor color.RGBA `yaml:"hurtChaserColor"`
	HealChaserColor color.RGBA `yaml:"healChaserColor"`
	HurtFlashColor  color.RGBA `yaml:"hurtFlashColor"`
	OverlayColor    color.RGBA `yaml:"overlayColor"`
	SevereColor     color.RGBA `yaml:"severeColor"`
	TextColor       color.RGBA `yaml:"textColor"`

	CrosshairSize float64 `yaml:"crosshairSize"`
	MapScale      float64 `yaml:"mapScale"` // Pixels per metre in the top-down view
	ShowDebug     bool    `yaml:"showDebug"`
}

// MenuConfig contains the look settings menu layout and value steps.
type MenuConfig struct {
	SensitivityStep float64 `yaml:"sensitivityStep"`
	MinSensitivity  float64 `yaml:"minSensitivity"`
	MaxSensitivity  float64 `yaml:"maxSensitivity"`

	ItemHeight float64 `yaml:"itemHeight"`
	ItemGap    float64 `yaml:"itemGap"`

	OverlayColor      color.RGBA `yaml:"overlayColor"`
	TextColorNormal   color.RGBA `yaml:"textColorNormal"`
	TextColorSelected color.RGBA `yaml:"textColorSelected"`
}

// DebugConfig contains command-line debug options
type DebugConfig struct {
	ConfigPath  string
	WatchConfig bool
}

// Global configuration instances
var Sim SimConfig
var Player PlayerConfig
var Features FeatureConfig
var Camera CameraConfig
var Health HealthConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 220}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	HurtOverlay  = color.RGBA{R: 160, G: 0, B: 0, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its default tuning.
func Reset() {
	Sim = SimConfig{
		TickRate: 50,
		Width:    640,
		Height:   360,
	}

	Player = PlayerConfig{
		RunSpeed:     5,
		WalkSpeed:    2,
		SprintSpeed:  9,
		CrouchSpeed:  1,
		DashSpeed:    12,
		Acceleration: 9,

		DashDistance: 5,

		JumpHeight:            3,
		Gravity:               -9.81,
		Mass:                  54,
		JumpCooldown:          0.25,
		LandingGrace:          0.1,
		AllowJumpWhileSliding: false,

		GroundTolerance: 0.1,
		ProbeAngle:      20,

		AirDrag: 0.8,

		StandHeight:  1,
		CrouchHeight: 0.5,
		Radius:       0.5,
		CrouchTime:   1,

		VaultHeight:   0.6,
		VaultReach:    3,
		VaultDuration: 0.5,
	}

	Features = FeatureConfig{
		Move:          true,
		Jump:          true,
		Crouch:        true,
		Dash:          true,
		VaultToLedges: true,
		Zoom:          true,
		Gravity:       true,
		MouseLook:     true,
	}

	Camera = CameraConfig{
		Sensitivity:   30,
		InvertY:       false,
		LookDownLimit: -40,
		LookUpLimit:   70,
		DefaultFOV:    60,
		ZoomFOV:       20,
		SprintFOV:     80,
		TimeToZoom:    0.15,
		RootOffset:    mgl64.Vec3{0, 0.6, 0},
	}

	Health = HealthConfig{
		Max:   100,
		Min:   0,
		Start: 100,

		HurtThreshold:         60,
		SeverelyHurtThreshold: 40,

		CanDie:                 true,
		CanReceiveHealOverTime: true,
		OverTimeTickInterval:   1,

		RegenerationEnabled: false,
		RegenerationDelay:   5,
		RegenerationRate:    0.5,

		AnimationSpeed: 0.5,
		HurtFlashCount: 3,
		ChaserDelay:    0.25,
		BarLerpTime:    1,
		TriggerAmount:  30,
		TriggerTicks:   3,
	}

	HUD = HUDConfig{
		BarX:      16,
		BarY:      16,
		BarWidth:  160,
		BarHeight: 10,

		BarColor:        BrightGreen,
		BackgroundColor: DarkGray,
		ChaserColor:     White,
		HurtChaserColor: LightRed,
		HealChaserColor: Green,
		HurtFlashColor:  White,
		OverlayColor:    HurtOverlay,
		SevereColor:     Red,
		TextColor:       White,

		CrosshairSize: 4,
		MapScale:      8,
		ShowDebug:     true,
	}

	Menu = MenuConfig{
		SensitivityStep: 5,
		MinSensitivity:  5,
		MaxSensitivity:  100,

		ItemHeight: 14,
		ItemGap:    4,

		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
	}

	Input = InputConfig{
		DashWindow:   0.2,
		ToggleWalk:   false,
		ToggleSprint: false,
		ToggleCrouch: false,
		ToggleZoom:   false,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  1.0,
	}
}
