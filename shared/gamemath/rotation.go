package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body-space axes.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// Yaw returns a rotation of deg degrees around the up axis. Positive yaw
// turns forward toward right.
func Yaw(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Up)
}

// Pitch returns a rotation of deg degrees around the right axis. Positive
// pitch tilts forward downward.
func Pitch(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Right)
}

// LookRotation returns the rotation that maps Forward onto dir while keeping
// Up as close to world up as possible. It reports false for a zero direction.
func LookRotation(dir mgl64.Vec3) (mgl64.Quat, bool) {
	if dir.Len() < 1e-9 {
		return mgl64.QuatIdent(), false
	}
	z := dir.Normalize()

	up := Up
	if math.Abs(z.Dot(up)) > 1-1e-9 {
		// Looking straight up or down, any perpendicular up will do
		up = Forward
	}
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	m := mgl64.Mat3FromCols(x, y, z).Mat4()
	return mgl64.Mat4ToQuat(m).Normalize(), true
}

// LerpRotation interpolates along the shorter arc and normalizes the result.
func LerpRotation(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if t >= 1 {
		return b
	}
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatNlerp(a, b, t)
}
