package gamemath

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ApproachSpeed moves current toward target by at most rate. It clamps
// against the target so neither direction overshoots.
func ApproachSpeed(current, target, rate float64) float64 {
	if current < target {
		return math.Min(current+rate, target)
	}
	if current > target {
		return math.Max(current-rate, target)
	}
	return current
}

// JumpImpulse returns the vertical impulse for a jump of the given height.
// Mass is folded in on purpose; tuning is calibrated against this exact form.
func JumpImpulse(jumpHeight, gravity, mass float64) float64 {
	return math.Sqrt(jumpHeight * -3 * (gravity * mass * 2))
}

// QuadraticProgress returns (elapsed/duration)^2, the ease-in curve shared by
// crouch, vault and the bar animations. A non-positive duration is complete.
func QuadraticProgress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	t := elapsed / duration
	return t * t
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}

// Lerp interpolates from a to b with t clamped to [0, 1]. It returns b exactly
// once t reaches 1.
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpVec3 is Lerp for vectors.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	if t >= 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

// LerpColor interpolates each channel of two colors.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}
