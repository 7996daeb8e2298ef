package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is a kinematic rigid body. It has no collision response of its own;
// the controller keeps it on the ground with probes and snapping.
type Body struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	rotation mgl64.Quat
	scale    mgl64.Vec3
	mass     float64

	// Accumulated Force/Acceleration contributions, applied on Step
	pending mgl64.Vec3
}

var _ RigidBody = (*Body)(nil)

// NewBody creates an upright body with unit scale.
func NewBody(position mgl64.Vec3, mass float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		position: position,
		rotation: mgl64.QuatIdent(),
		scale:    mgl64.Vec3{1, 1, 1},
		mass:     mass,
	}
}

func (b *Body) Position() mgl64.Vec3     { return b.position }
func (b *Body) SetPosition(p mgl64.Vec3) { b.position = p }
func (b *Body) Rotation() mgl64.Quat     { return b.rotation }
func (b *Body) SetRotation(q mgl64.Quat) { b.rotation = q.Normalize() }
func (b *Body) Scale() mgl64.Vec3        { return b.scale }
func (b *Body) SetScale(s mgl64.Vec3)    { b.scale = s }
func (b *Body) Velocity() mgl64.Vec3     { return b.velocity }
func (b *Body) SetVelocity(v mgl64.Vec3) { b.velocity = v }
func (b *Body) Mass() float64            { return b.mass }

// CenterOfMass is the body origin; bodies are symmetric.
func (b *Body) CenterOfMass() mgl64.Vec3 { return b.position }

func (b *Body) MoveRotation(delta mgl64.Quat) {
	b.rotation = b.rotation.Mul(delta).Normalize()
}

func (b *Body) AddForce(f mgl64.Vec3, mode ForceMode) {
	switch mode {
	case Force:
		b.pending = b.pending.Add(f.Mul(1 / b.mass))
	case Acceleration:
		b.pending = b.pending.Add(f)
	case Impulse:
		b.velocity = b.velocity.Add(f.Mul(1 / b.mass))
	case VelocityChange:
		b.velocity = b.velocity.Add(f)
	}
}

// Step integrates pending accelerations and moves the body.
func (b *Body) Step(dt float64) {
	b.velocity = b.velocity.Add(b.pending.Mul(dt))
	b.pending = mgl64.Vec3{}
	b.position = b.position.Add(b.velocity.Mul(dt))
}
