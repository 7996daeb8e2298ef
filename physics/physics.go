// Package physics holds the rigid-body and cast collaborators consumed by the
// character controller, together with a small reference world used by the
// arena scene and by tests.
//
// Conventions: Y is up, forward is +Z and right is +X. A body's vertical
// half-extent equals its Y scale.
package physics

import "github.com/go-gl/mathgl/mgl64"

// ForceMode selects how AddForce changes a body's velocity.
type ForceMode int

const (
	// Force is integrated over the next step and divided by mass.
	Force ForceMode = iota
	// Acceleration is integrated over the next step, ignoring mass.
	Acceleration
	// Impulse changes velocity immediately, divided by mass.
	Impulse
	// VelocityChange changes velocity immediately, ignoring mass.
	VelocityChange
)

func (m ForceMode) String() string {
	switch m {
	case Force:
		return "force"
	case Acceleration:
		return "acceleration"
	case Impulse:
		return "impulse"
	case VelocityChange:
		return "velocityChange"
	}
	return "unknown"
}

// Layer is a collision layer bit. Casts take a mask of layers.
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerLedge
	LayerTrigger

	LayerNone  Layer = 0
	LayerSolid Layer = LayerGround | LayerLedge
)

var layerTags = map[Layer]string{
	LayerGround:  "ground",
	LayerLedge:   "ledge",
	LayerTrigger: "trigger",
}

// Tags returns the resolv tags for every layer set in the mask.
func (l Layer) Tags() []string {
	var tags []string
	for bit, tag := range layerTags {
		if l&bit != 0 {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Hit describes the first surface a cast touched.
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
	Collider *Box
}

// Caster answers ground and obstruction queries.
type Caster interface {
	// Raycast returns the nearest hit along dir within maxDist.
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask Layer) (Hit, bool)
	// SphereCast sweeps a sphere of the given radius along dir.
	SphereCast(origin, dir mgl64.Vec3, radius, maxDist float64, mask Layer) (Hit, bool)
}

// RigidBody is the physical body driven by the controller.
type RigidBody interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	// MoveRotation composes delta onto the current rotation.
	MoveRotation(delta mgl64.Quat)
	Scale() mgl64.Vec3
	SetScale(s mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	AddForce(f mgl64.Vec3, mode ForceMode)
	Mass() float64
	CenterOfMass() mgl64.Vec3
}
