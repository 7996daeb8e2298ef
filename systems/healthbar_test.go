package systems

import (
	"testing"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
)

func TestBarDamageLeadsChaser(t *testing.T) {
	r := newTestRig(t)
	bar := components.HealthBar.Get(r.player)

	RegisterDamage(r.player, components.NewDamage(30))
	r.tick()

	approxEqual(t, bar.Bar, 0.7, 1e-9, "bar")
	approxEqual(t, bar.Chaser, 1, 1e-9, "chaser during delay")
	if !bar.GoingDown.Active || !bar.Flash.Active {
		t.Fatalf("goingDown=%v flash=%v, want both running", bar.GoingDown.Active, bar.Flash.Active)
	}
	if bar.GoingUp.Active {
		t.Error("going up must not run during a descent")
	}
	if bar.OverlayAlpha != 1 {
		t.Errorf("overlay alpha = %v, want 1", bar.OverlayAlpha)
	}
	if bar.ChaserColor != cfg.HUD.HurtChaserColor {
		t.Errorf("chaser color = %v, want hurt color", bar.ChaserColor)
	}

	// Still inside the chaser delay
	r.ticks(5)
	approxEqual(t, bar.Chaser, 1, 1e-9, "chaser during delay")
}

func TestBarConvergesAfterDamage(t *testing.T) {
	r := newTestRig(t)
	bar := components.HealthBar.Get(r.player)

	RegisterDamage(r.player, components.NewDamage(30))
	r.tick()

	prev := bar.Chaser
	for i := 0; i < 200; i++ {
		r.tick()
		if bar.Chaser > prev+1e-12 {
			t.Fatalf("tick %d: chaser rose from %v to %v", i, prev, bar.Chaser)
		}
		prev = bar.Chaser
	}

	if bar.Bar != 0.7 || bar.Chaser != 0.7 {
		t.Errorf("bar=%v chaser=%v, want both at 0.7", bar.Bar, bar.Chaser)
	}
	if bar.ChaserColor != cfg.HUD.ChaserColor || bar.LerpTimer != 0 {
		t.Errorf("chaser color=%v lerp timer=%v, want reset", bar.ChaserColor, bar.LerpTimer)
	}
	if bar.Flash.Active || bar.GoingDown.Active {
		t.Error("no animation should remain")
	}
	if bar.BarColor != cfg.HUD.BarColor {
		t.Errorf("bar color = %v, want restored", bar.BarColor)
	}
	if bar.OverlayAlpha != 0 {
		t.Errorf("overlay alpha = %v, want faded", bar.OverlayAlpha)
	}
}

func TestHealCancelsDescent(t *testing.T) {
	r := newTestRig(t)
	bar := components.HealthBar.Get(r.player)

	RegisterDamage(r.player, components.NewDamage(50))
	r.ticks(3)
	RegisterHeal(r.player, components.NewHeal(20))
	r.tick()

	if bar.Flash.Active || bar.GoingDown.Active {
		t.Fatalf("flash=%v goingDown=%v, want both cancelled", bar.Flash.Active, bar.GoingDown.Active)
	}
	if !bar.GoingUp.Active {
		t.Fatal("heal should ease the bar up")
	}
	approxEqual(t, bar.Chaser, 0.7, 1e-9, "chaser jumps to the heal target")
	if bar.OverlayAlpha != 0 || bar.BarColor != cfg.HUD.BarColor {
		t.Errorf("overlay=%v color=%v, want the hurt animation cleared", bar.OverlayAlpha, bar.BarColor)
	}

	r.ticks(100)
	if bar.Bar != 0.7 || bar.Chaser != 0.7 {
		t.Errorf("bar=%v chaser=%v, want both at 0.7", bar.Bar, bar.Chaser)
	}
	if bar.GoingUp.Active || bar.ChaserColor != cfg.HUD.ChaserColor {
		t.Error("bar should settle after healing")
	}
}

func TestDamageCancelsAscent(t *testing.T) {
	r := newTestRig(t)
	bar := components.HealthBar.Get(r.player)

	RegisterDamage(r.player, components.NewDamage(60))
	r.ticks(150)
	RegisterHeal(r.player, components.NewHeal(50))
	r.ticks(5)
	if !bar.GoingUp.Active {
		t.Fatal("expected the bar going up")
	}

	RegisterDamage(r.player, components.NewDamage(40))
	r.tick()
	if bar.GoingUp.Active {
		t.Error("damage must cancel the ascent")
	}
	if !bar.GoingDown.Active {
		t.Error("damage should start a descent")
	}
	approxEqual(t, bar.Bar, 0.5, 1e-9, "bar")

	r.ticks(200)
	if bar.Bar != 0.5 || bar.Chaser != 0.5 {
		t.Errorf("bar=%v chaser=%v, want both at 0.5", bar.Bar, bar.Chaser)
	}
}

func TestFlashRestoresBarColor(t *testing.T) {
	r := newTestRig(t)
	bar := components.HealthBar.Get(r.player)

	RegisterDamage(r.player, components.NewDamage(10))
	r.ticks(4)
	if bar.BarColor == cfg.HUD.BarColor {
		t.Error("bar color should be flashing")
	}

	r.ticks(100)
	if bar.Flash.Active || bar.BarColor != cfg.HUD.BarColor {
		t.Errorf("flash=%v color=%v, want finished and restored", bar.Flash.Active, bar.BarColor)
	}
}

func TestSevereFlag(t *testing.T) {
	r := newTestRig(t)
	bar := components.HealthBar.Get(r.player)

	RegisterDamage(r.player, components.NewDamage(59))
	r.tick()
	if bar.Severe {
		t.Error("41 health is not severe")
	}

	RegisterDamage(r.player, components.NewDamage(1))
	r.tick()
	if !bar.Severe {
		t.Error("40 health is severe")
	}
}
