package systems

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingPlayer struct {
	played []cfg.SoundID
}

func (p *recordingPlayer) Play(id cfg.SoundID) {
	p.played = append(p.played, id)
}

func (p *recordingPlayer) count(id cfg.SoundID) int {
	n := 0
	for _, s := range p.played {
		if s == id {
			n++
		}
	}
	return n
}

// testRig is a headless arena: a floor, one player standing at the origin and
// the full per-tick system order.
type testRig struct {
	ecs    *ecs.ECS
	world  *physics.World
	player *donburi.Entry
	raw    components.RawInput
	sounds *recordingPlayer

	systems []ecs.System
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	r := &testRig{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		world:  physics.NewWorld(-20, -20, 40, 40),
		sounds: &recordingPlayer{},
	}
	r.world.AddBox("floor", mgl64.Vec3{-20, -1, -20}, mgl64.Vec3{40, 0, 40}, physics.LayerGround)

	factory.CreateAudio(r.ecs)
	factory.CreateSpace(r.ecs, r.world)
	r.player = factory.CreatePlayer(r.ecs, r.world, mgl64.Vec3{}, 0)

	r.systems = []ecs.System{
		UpdateInput(InputSourceFunc(func() components.RawInput { return r.raw })),
		UpdateGround,
		UpdateGravity,
		UpdateTasks,
		UpdateMotion,
		UpdatePhysics,
		UpdateTriggers,
		UpdateHealth,
		UpdateHealthBar,
		UpdateLook,
		UpdateAudio(r.sounds),
	}
	return r
}

func (r *testRig) tick() {
	for _, system := range r.systems {
		system(r.ecs)
	}
}

func (r *testRig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.tick()
	}
}

func (r *testRig) press(action cfg.ActionID, down bool) {
	r.raw.Actions[action] = down
}

func (r *testRig) body() physics.RigidBody        { return components.Body.Get(r.player).Body }
func (r *testRig) motion() *components.MotionData { return components.Motion.Get(r.player) }
func (r *testRig) health() *components.HealthData { return components.Health.Get(r.player) }

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
