package systems

import (
	"testing"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
)

func TestInstantDamage(t *testing.T) {
	r := newTestRig(t)

	RegisterDamage(r.player, components.NewDamage(30))
	if got := r.health().Current; got != 100 {
		t.Fatalf("registering must not apply, current = %v", got)
	}
	r.tick()

	h := r.health()
	if h.Current != 70 || h.Previous != 100 {
		t.Errorf("current=%v previous=%v, want 70 and 100", h.Current, h.Previous)
	}
	if len(h.Damage) != 0 {
		t.Errorf("%d damage effects left, want 0", len(h.Damage))
	}
	if r.sounds.count(cfg.SoundHurt) != 1 {
		t.Errorf("hurt sound played %d times, want 1", r.sounds.count(cfg.SoundHurt))
	}
}

func TestHurtSoundSelection(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   cfg.SoundID
	}{
		{"light", 10, cfg.SoundHurt},
		{"at the severe threshold", 60, cfg.SoundSevereHurt},
		{"severe", 80, cfg.SoundSevereHurt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			RegisterDamage(r.player, components.NewDamage(tt.amount))
			r.tick()
			if len(r.sounds.played) != 1 || r.sounds.played[0] != tt.want {
				t.Errorf("played %v, want [%v]", r.sounds.played, tt.want)
			}
		})
	}
}

func TestDamageOverTime(t *testing.T) {
	r := newTestRig(t)
	RegisterDamage(r.player, components.NewDamageOverTime(30, 3))

	// One tick per interval, starting on the first health tick
	checkpoints := []struct {
		afterTicks int
		want       float64
		queued     int
	}{
		{1, 90, 1},
		{30, 90, 1},
		{80, 80, 1},
		{130, 70, 0},
		{250, 70, 0},
	}

	done := 0
	for _, cp := range checkpoints {
		r.ticks(cp.afterTicks - done)
		done = cp.afterTicks

		h := r.health()
		approxEqual(t, h.Current, cp.want, 1e-9, "health")
		if len(h.Damage) != cp.queued {
			t.Errorf("after %d ticks: %d effects queued, want %d", done, len(h.Damage), cp.queued)
		}
	}

	if r.sounds.count(cfg.SoundHurt)+r.sounds.count(cfg.SoundSevereHurt) != 0 {
		t.Error("damage over time is silent")
	}
}

func TestTickOverTimeGuardsZeroTicks(t *testing.T) {
	amount, ticks, timer := 10.0, 0, 0.0
	share, keep := tickOverTime(&amount, &ticks, &timer, 0.02)
	if share != 0 || keep {
		t.Errorf("exhausted effect: share=%v keep=%v, want 0 and dropped", share, keep)
	}
}

func TestDamageClampsAtMin(t *testing.T) {
	r := newTestRig(t)
	RegisterDamage(r.player, components.NewDamage(250))
	r.tick()

	if got := r.health().Current; got != cfg.Health.Min {
		t.Errorf("current = %v, want clamped to %v", got, cfg.Health.Min)
	}
}

func TestDeathFiresOnce(t *testing.T) {
	r := newTestRig(t)
	RegisterDamage(r.player, components.NewDamage(100))
	r.ticks(5)

	if !r.health().Dead {
		t.Fatal("expected dead")
	}
	if r.sounds.count(cfg.SoundDeath) != 1 {
		t.Errorf("death sound played %d times, want 1", r.sounds.count(cfg.SoundDeath))
	}
}

func TestDeathDisabled(t *testing.T) {
	r := newTestRig(t)
	cfg.Health.CanDie = false
	RegisterDamage(r.player, components.NewDamage(100))
	r.ticks(3)

	if r.health().Dead {
		t.Error("CanDie=false must not kill")
	}
}

func TestHealClampsAndPlays(t *testing.T) {
	r := newTestRig(t)
	RegisterDamage(r.player, components.NewDamage(20))
	r.tick()
	RegisterHeal(r.player, components.NewHeal(50))
	r.tick()

	if got := r.health().Current; got != cfg.Health.Max {
		t.Errorf("current = %v, want clamped to %v", got, cfg.Health.Max)
	}
	if r.sounds.count(cfg.SoundHeal) != 1 {
		t.Errorf("heal sound played %d times, want 1", r.sounds.count(cfg.SoundHeal))
	}
}

func TestHealOverTime(t *testing.T) {
	r := newTestRig(t)
	RegisterDamage(r.player, components.NewDamage(50))
	r.tick()

	RegisterHeal(r.player, components.NewHealOverTime(20, 2))
	r.tick()
	approxEqual(t, r.health().Current, 60, 1e-9, "after first heal tick")
	r.ticks(60)
	approxEqual(t, r.health().Current, 70, 1e-9, "after second heal tick")
	if len(r.health().Heals) != 0 {
		t.Error("heal over time should be removed once spent")
	}
}

func TestHealOverTimeGated(t *testing.T) {
	r := newTestRig(t)
	cfg.Health.CanReceiveHealOverTime = false
	RegisterDamage(r.player, components.NewDamage(50))
	r.tick()

	RegisterHeal(r.player, components.NewHealOverTime(20, 2))
	r.ticks(100)
	if got := r.health().Current; got != 50 {
		t.Errorf("current = %v, want heal over time ignored", got)
	}
}

func TestRegeneration(t *testing.T) {
	r := newTestRig(t)
	cfg.Health.RegenerationEnabled = true
	cfg.Health.RegenerationDelay = 1
	cfg.Health.RegenerationRate = 10

	RegisterDamage(r.player, components.NewDamage(50))
	r.tick()
	r.ticks(40)
	if got := r.health().Current; got != 50 {
		t.Fatalf("regenerated before the delay: %v", got)
	}

	r.ticks(60)
	h := r.health()
	if h.Current <= 50 || !h.Regenerating {
		t.Errorf("current=%v regenerating=%v, want regeneration after the delay", h.Current, h.Regenerating)
	}
}
