package gamemath

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// vecNear compares by distance so components that should be zero tolerate rounding.
func vecNear(got, want mgl64.Vec3, tol float64) bool {
	return got.Sub(want).Len() <= tol
}

func TestApproachSpeed(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, rate float64
		want                  float64
	}{
		{"accelerate", 0, 5, 0.18, 0.18},
		{"clamp up", 4.9, 5, 0.18, 5},
		{"decelerate", 5, 0, 0.18, 4.82},
		{"clamp down", 0.1, 0, 0.18, 0},
		{"down to lower target", 9, 5, 1, 8},
		{"at target", 5, 5, 0.18, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApproachSpeed(tt.current, tt.target, tt.rate)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ApproachSpeed(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.rate, got, tt.want)
			}
		})
	}
}

func TestApproachSpeedNeverOvershoots(t *testing.T) {
	for _, target := range []float64{0, 1, 2, 5, 9, 12} {
		speed := 0.0
		for i := 0; i < 200; i++ {
			speed = ApproachSpeed(speed, target, 9*0.02)
			if speed > target {
				t.Fatalf("target %v: overshoot to %v at tick %d", target, speed, i)
			}
		}
		if speed != target {
			t.Errorf("target %v: settled at %v", target, speed)
		}
	}
}

func TestJumpImpulse(t *testing.T) {
	got := JumpImpulse(3, -9.81, 54)
	want := math.Sqrt(3 * 3 * 9.81 * 54 * 2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("JumpImpulse = %v, want %v", got, want)
	}
}

func TestQuadraticProgress(t *testing.T) {
	if got := QuadraticProgress(0.5, 1); got != 0.25 {
		t.Errorf("QuadraticProgress(0.5, 1) = %v, want 0.25", got)
	}
	if got := QuadraticProgress(2, 1); got != 4 {
		t.Errorf("QuadraticProgress(2, 1) = %v, want 4 (not clamped)", got)
	}
	if got := QuadraticProgress(0.1, 0); got != 1 {
		t.Errorf("zero duration = %v, want 1", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(0.7, 0.5, 1); got != 0.5 {
		t.Errorf("Lerp at 1 = %v, want exactly 0.5", got)
	}
	if got := Lerp(0.7, 0.5, 3); got != 0.5 {
		t.Errorf("Lerp past 1 = %v, want exactly 0.5", got)
	}
	if got := Lerp(2, 4, -1); got != 2 {
		t.Errorf("Lerp below 0 = %v, want 2", got)
	}
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp mid = %v, want 3", got)
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 255, G: 100, B: 0, A: 255}

	if got := LerpColor(a, b, 1); got != b {
		t.Errorf("LerpColor at 1 = %v, want %v", got, b)
	}
	got := LerpColor(a, b, 0.5)
	want := color.RGBA{R: 128, G: 100, B: 100, A: 255}
	if got != want {
		t.Errorf("LerpColor mid = %v, want %v", got, want)
	}
}

func TestYawTurnsForwardTowardRight(t *testing.T) {
	got := Yaw(90).Rotate(Forward)
	if !vecNear(got, Right, 1e-9) {
		t.Errorf("Yaw(90) forward = %v, want %v", got, Right)
	}
}

func TestPitchTiltsForwardDown(t *testing.T) {
	got := Pitch(30).Rotate(Forward)
	if got.Y() >= 0 {
		t.Errorf("Pitch(30) forward = %v, want a downward component", got)
	}
	if math.Abs(got.Y()+0.5) > 1e-9 {
		t.Errorf("Pitch(30) forward.Y = %v, want -0.5", got.Y())
	}
}

func TestLookRotation(t *testing.T) {
	dirs := []mgl64.Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{0, 0, -1},
		{-1, 0, 0},
		{1, 0.5, 1},
		{0, -1, 0},
	}

	for _, dir := range dirs {
		q, ok := LookRotation(dir)
		if !ok {
			t.Fatalf("LookRotation(%v) reported zero direction", dir)
		}
		got := q.Rotate(Forward)
		if !vecNear(got, dir.Normalize(), 1e-9) {
			t.Errorf("LookRotation(%v) forward = %v", dir, got)
		}
	}

	if _, ok := LookRotation(mgl64.Vec3{}); ok {
		t.Error("zero direction should report false")
	}
}

func TestLerpRotationShortestArc(t *testing.T) {
	a := Yaw(10)
	b := Yaw(30).Scale(-1) // same orientation, opposite sign

	mid := LerpRotation(a, b, 0.5)
	got := mid.Rotate(Forward)
	want := Yaw(20).Rotate(Forward)
	if !vecNear(got, want, 1e-6) {
		t.Errorf("LerpRotation mid = %v, want %v", got, want)
	}

	if end := LerpRotation(a, b, 1); end != b {
		t.Errorf("LerpRotation at 1 = %v, want exactly b", end)
	}
}
