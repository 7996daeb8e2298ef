package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MotionData is the movement state of a first-person actor.
type MotionData struct {
	CurrentSpeed    float64
	TargetSpeed     float64
	CurrentVelocity mgl64.Vec3 // Body velocity observed after grounding

	IsGrounded        bool
	WasGrounded       bool
	GroundPoint       mgl64.Vec3
	IsCrouching       bool
	IsDashing         bool
	IsJumping         bool
	IsVaultingToLedge bool

	// CanAcceptInput is the input lock. Exclusive tasks clear it while they
	// own the body and must restore it on every exit.
	CanAcceptInput bool

	CrouchTimer float64
	CrouchHeld  bool

	// Vault probe results from the last dispatcher pass
	VaultTarget    mgl64.Vec3
	VaultAvailable bool
}

var Motion = donburi.NewComponentType[MotionData]()
