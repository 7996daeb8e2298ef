package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", field, got, want, tol)
	}
}

// vecNear compares by distance so components that should be zero tolerate rounding.
func vecNear(got, want mgl64.Vec3, tol float64) bool {
	return got.Sub(want).Len() <= tol
}

func newTestWorld() *World {
	w := NewWorld(-20, -20, 20, 20)
	w.AddBox("floor", mgl64.Vec3{-10, -1, -10}, mgl64.Vec3{10, 0, 10}, LayerGround)
	w.AddBox("crate", mgl64.Vec3{2, 0, 2}, mgl64.Vec3{3, 1, 3}, LayerLedge)
	return w
}

func TestRaycastDown(t *testing.T) {
	w := newTestWorld()

	hit, ok := w.Raycast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}, 1.1, LayerGround)
	if !ok {
		t.Fatal("expected a hit on the floor")
	}
	approxEqual(t, hit.Point.Y(), 0, 1e-9, "hit.Y")
	approxEqual(t, hit.Distance, 1, 1e-9, "distance")
	if hit.Collider.Name != "floor" {
		t.Errorf("collider = %q, want floor", hit.Collider.Name)
	}
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	w := newTestWorld()

	if _, ok := w.Raycast(mgl64.Vec3{0, 1.5, 0}, mgl64.Vec3{0, -1, 0}, 1.1, LayerGround); ok {
		t.Fatal("floor is 1.5 away, probe is 1.1 long")
	}
}

func TestRaycastRespectsMask(t *testing.T) {
	w := newTestWorld()

	origin := mgl64.Vec3{2.5, 3, 2.5}
	down := mgl64.Vec3{0, -1, 0}

	hit, ok := w.Raycast(origin, down, 5, LayerSolid)
	if !ok || hit.Collider.Name != "crate" {
		t.Fatalf("solid mask should hit the crate first, got %+v ok=%v", hit, ok)
	}

	hit, ok = w.Raycast(origin, down, 5, LayerGround)
	if !ok || hit.Collider.Name != "floor" {
		t.Fatalf("ground mask should skip the crate, got %+v ok=%v", hit, ok)
	}

	if _, ok := w.Raycast(origin, down, 5, LayerNone); ok {
		t.Fatal("empty mask must never hit")
	}
}

func TestRaycastFromFaceHits(t *testing.T) {
	w := newTestWorld()

	hit, ok := w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -1, 0}, 1, LayerGround)
	if !ok {
		t.Fatal("a ray starting on the top face should hit it")
	}
	approxEqual(t, hit.Distance, 0, 1e-12, "distance")
}

func TestRaycastFromInsideMisses(t *testing.T) {
	w := newTestWorld()

	if _, ok := w.Raycast(mgl64.Vec3{2.5, 0.5, 2.5}, mgl64.Vec3{1, 0, 0}, 5, LayerLedge); ok {
		t.Fatal("a ray starting inside a box must not hit it")
	}
}

func TestRaycastHorizontal(t *testing.T) {
	w := newTestWorld()

	hit, ok := w.Raycast(mgl64.Vec3{0, 0.5, 2.5}, mgl64.Vec3{1, 0, 0}, 3, LayerLedge)
	if !ok {
		t.Fatal("expected to hit the crate side")
	}
	approxEqual(t, hit.Point.X(), 2, 1e-9, "hit.X")
}

func TestRaycastOutsideBroadPhase(t *testing.T) {
	w := NewWorld(0, 0, 10, 10)
	w.AddBox("far", mgl64.Vec3{30, -1, 30}, mgl64.Vec3{31, 0, 31}, LayerGround)

	if _, ok := w.Raycast(mgl64.Vec3{30.5, 1, 30.5}, mgl64.Vec3{0, -1, 0}, 2, LayerGround); ok {
		t.Fatal("colliders outside the world footprint are not queried")
	}
}

func TestSphereCastUp(t *testing.T) {
	w := newTestWorld()
	w.AddBox("ceiling", mgl64.Vec3{-1, 1.6, -1}, mgl64.Vec3{1, 2, 1}, LayerGround)

	if _, ok := w.SphereCast(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 1, 0}, 0.5, 1.25, LayerGround); !ok {
		t.Fatal("sphere should reach the ceiling")
	}
	if _, ok := w.SphereCast(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 1, 0}, 0.5, 0.5, LayerGround); ok {
		t.Fatal("sphere should stop short of the ceiling")
	}

	// Grazing past the ceiling edge only counts with the radius
	origin := mgl64.Vec3{1.3, 0.5, 0}
	if _, ok := w.Raycast(origin, mgl64.Vec3{0, 1, 0}, 2, LayerGround); ok {
		t.Fatal("a thin ray should miss the ceiling edge")
	}
	hit, ok := w.SphereCast(origin, mgl64.Vec3{0, 1, 0}, 0.5, 2, LayerGround)
	if !ok {
		t.Fatal("a fat sphere should clip the ceiling edge")
	}
	approxEqual(t, hit.Point.X(), 1, 1e-9, "contact.X")
}

func TestOverlapping(t *testing.T) {
	w := newTestWorld()
	zone := w.AddBox("zone", mgl64.Vec3{-3, 0, -3}, mgl64.Vec3{-1, 2, -1}, LayerTrigger)
	zone.Data = "payload"

	got := w.Overlapping(mgl64.Vec3{-2.5, 0, -2.5}, mgl64.Vec3{-1.5, 2, -1.5}, LayerTrigger)
	if len(got) != 1 || got[0].Data != "payload" {
		t.Fatalf("Overlapping = %v, want the zone", got)
	}

	if got := w.Overlapping(mgl64.Vec3{4, 0, 4}, mgl64.Vec3{5, 2, 5}, LayerTrigger); len(got) != 0 {
		t.Fatalf("Overlapping far away = %v, want none", got)
	}

	// Footprint overlaps but vertical range does not
	if got := w.Overlapping(mgl64.Vec3{-2.5, 3, -2.5}, mgl64.Vec3{-1.5, 4, -1.5}, LayerTrigger); len(got) != 0 {
		t.Fatalf("Overlapping above = %v, want none", got)
	}
}

func TestBodyForceModes(t *testing.T) {
	tests := []struct {
		name    string
		mode    ForceMode
		force   mgl64.Vec3
		instant mgl64.Vec3 // velocity right after AddForce
		stepped mgl64.Vec3 // velocity after one Step
	}{
		{"velocity change", VelocityChange, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{2, 0, 0}},
		{"impulse", Impulse, mgl64.Vec3{0, 4, 0}, mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 2, 0}},
		{"acceleration", Acceleration, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}},
		{"force", Force, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(mgl64.Vec3{}, 2)
			b.AddForce(tt.force, tt.mode)
			if !vecNear(b.Velocity(), tt.instant, 1e-9) {
				t.Errorf("instant velocity = %v, want %v", b.Velocity(), tt.instant)
			}
			b.Step(0.1)
			if !vecNear(b.Velocity(), tt.stepped, 1e-9) {
				t.Errorf("stepped velocity = %v, want %v", b.Velocity(), tt.stepped)
			}
			want := tt.stepped.Mul(0.1)
			if !vecNear(b.Position(), want, 1e-9) {
				t.Errorf("position = %v, want %v", b.Position(), want)
			}
		})
	}
}

func TestBodyMoveRotationComposes(t *testing.T) {
	b := NewBody(mgl64.Vec3{}, 1)
	quarter := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})

	b.MoveRotation(quarter)
	b.MoveRotation(quarter)

	forward := b.Rotation().Rotate(mgl64.Vec3{0, 0, 1})
	if !vecNear(forward, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("forward after two eighth turns = %v, want +X", forward)
	}
}

func TestWorldStepMovesBodies(t *testing.T) {
	w := newTestWorld()
	b := NewBody(mgl64.Vec3{0, 1, 0}, 1)
	b.SetVelocity(mgl64.Vec3{1, 0, 0})
	w.AddBody(b)

	w.Step(0.5)

	approxEqual(t, b.Position().X(), 0.5, 1e-12, "x")
}
