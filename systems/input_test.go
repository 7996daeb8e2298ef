package systems

import (
	"testing"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestUpdateInputSnapshot(t *testing.T) {
	r := newTestRig(t)
	input := components.Input.Get(r.player)

	r.raw.Move = mgl64.Vec2{0, 1}
	r.press(cfg.ActionSprint, true)
	r.press(cfg.ActionJump, true)
	r.tick()

	snap := input.Snapshot
	if !snap.Sprint || !snap.Jump {
		t.Fatalf("first tick: sprint=%v jump=%v, want both", snap.Sprint, snap.Jump)
	}
	if snap.Move != (mgl64.Vec2{0, 1}) {
		t.Errorf("move = %v", snap.Move)
	}

	// Jump is edge-driven, sprint mirrors the key
	r.tick()
	snap = input.Snapshot
	if snap.Jump {
		t.Error("jump should only be true on the tick it was pressed")
	}
	if !snap.Sprint {
		t.Error("held sprint should stay true")
	}
}

func TestToggleMode(t *testing.T) {
	conf := cfg.InputConfig{ToggleCrouch: true}
	input := &components.InputData{}

	steps := []struct {
		down bool
		want bool
	}{
		{true, true},  // press toggles on
		{true, true},  // holding changes nothing
		{false, true}, // release keeps the latch
		{true, false}, // second press toggles off
		{false, false},
	}

	for i, step := range steps {
		input.Previous = input.Current
		input.Current[cfg.ActionCrouch] = step.down
		got := BuildSnapshot(input, conf).Crouch
		if got != step.want {
			t.Errorf("step %d: crouch = %v, want %v", i, got, step.want)
		}
	}
}

func TestDetectDash(t *testing.T) {
	const dt, window = 0.02, 0.2
	fwd := mgl64.Vec2{0, 1}
	right := mgl64.Vec2{1, 0}
	idle := mgl64.Vec2{}

	// repeat holds v for n ticks
	repeat := func(v mgl64.Vec2, n int) []mgl64.Vec2 {
		out := make([]mgl64.Vec2, n)
		for i := range out {
			out[i] = v
		}
		return out
	}
	seq := func(parts ...[]mgl64.Vec2) []mgl64.Vec2 {
		var out []mgl64.Vec2
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}

	tests := []struct {
		name  string
		moves []mgl64.Vec2
		want  int
	}{
		{"double tap", seq(repeat(fwd, 2), repeat(idle, 2), repeat(fwd, 2)), 1},
		{"third tap does not arm again", seq(repeat(fwd, 1), repeat(idle, 1), repeat(fwd, 1), repeat(idle, 1), repeat(fwd, 1)), 1},
		{"single hold", repeat(fwd, 30), 0},
		{"too slow", seq(repeat(fwd, 1), repeat(idle, 15), repeat(fwd, 1)), 0},
		{"direction change resets", seq(repeat(fwd, 1), repeat(idle, 1), repeat(right, 1)), 0},
		{"direct switch counts as press", seq(repeat(fwd, 1), repeat(right, 1), repeat(fwd, 1), repeat(right, 1)), 0},
		{"re-armed after the window", seq(repeat(fwd, 1), repeat(idle, 1), repeat(fwd, 1), repeat(idle, 15), repeat(fwd, 1), repeat(idle, 1), repeat(fwd, 1)), 2},
		{"analog deflection quantized", seq(repeat(mgl64.Vec2{0.1, 0.8}, 1), repeat(idle, 1), repeat(mgl64.Vec2{0.2, 0.6}, 1)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &components.DashGestureData{}
			armed := 0
			for _, move := range tt.moves {
				dir, ok := DetectDash(g, move, dt, window)
				if !ok {
					continue
				}
				armed++
				if dir.Len() < 0.999 || dir.Len() > 1.001 {
					t.Errorf("dash direction %v is not unit length", dir)
				}
			}
			if armed != tt.want {
				t.Errorf("armed %d dashes, want %d", armed, tt.want)
			}
		})
	}
}

func TestDashGestureStartsDash(t *testing.T) {
	r := newTestRig(t)

	for _, move := range []mgl64.Vec2{{0, 1}, {}, {0, 1}} {
		r.raw.Move = move
		r.tick()
	}

	if !r.motion().IsDashing || r.motion().CanAcceptInput {
		t.Fatalf("dashing=%v canAcceptInput=%v, want a running dash", r.motion().IsDashing, r.motion().CanAcceptInput)
	}
	if r.sounds.count(cfg.SoundDash) != 1 {
		t.Errorf("dash sound played %d times, want 1", r.sounds.count(cfg.SoundDash))
	}
}
