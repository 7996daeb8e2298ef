package systems

import (
	"math"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealthBar reconciles the bar and chaser with health. Damage drops the
// bar at once and lets the chaser trail down after a delay; healing sets the
// chaser at once and eases the bar up. Starting one direction cancels the
// other, so at most one of them runs.
func UpdateHealthBar(ecs *ecs.ECS) {
	dt := cfg.Sim.FixedDelta()

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		bar := components.HealthBar.Get(e)
		target := health.Fraction()

		updateOverlay(bar, health, dt)

		switch {
		case health.Current < health.Previous:
			beginDescent(bar, target)
		case health.Current > health.Previous:
			beginAscent(bar, target)
		}

		switch {
		case bar.GoingUp.Active:
			advanceBarUp(bar, dt)
		case bar.GoingDown.Active:
			advanceBarDown(bar, dt)
		default:
			bar.Bar = target
			bar.Chaser = target
			bar.ChaserColor = cfg.HUD.ChaserColor
			bar.LerpTimer = 0
		}

		advanceFlash(bar, dt)
	})
}

func beginDescent(bar *components.HealthBarData, target float64) {
	bar.GoingUp = components.BarTask{}
	bar.Bar = target
	bar.Chaser = math.Max(bar.Chaser, target)

	task := &bar.GoingDown
	if !task.Active {
		startFlash(bar)
		bar.ChaserColor = cfg.HUD.HurtChaserColor
		*task = components.BarTask{Active: true, Delay: cfg.Health.ChaserDelay, Target: target}
		return
	}
	if task.Target != target {
		// Restart the ease from wherever the chaser is
		task.Tween = nil
		task.Target = target
	}
}

func beginAscent(bar *components.HealthBarData, target float64) {
	bar.Flash = components.FlashTask{}
	bar.GoingDown = components.BarTask{}
	bar.BarColor = cfg.HUD.BarColor
	bar.Chaser = target
	bar.Bar = math.Min(bar.Bar, target)

	task := &bar.GoingUp
	if !task.Active {
		bar.ChaserColor = cfg.HUD.HealChaserColor
		*task = components.BarTask{Active: true, Target: target}
		return
	}
	if task.Target != target {
		task.Tween = nil
		task.Target = target
	}
}

func updateOverlay(bar *components.HealthBarData, health *components.HealthData, dt float64) {
	if health.Previous > health.Current {
		bar.OverlayAlpha = 1
	} else {
		bar.OverlayAlpha = math.Max(0, bar.OverlayAlpha-cfg.Health.AnimationSpeed*dt)
	}
	bar.Severe = health.Current <= cfg.Health.SeverelyHurtThreshold
}

// cancelHurtAnimation stops the flash and clears the overlay. Heals call it.
func cancelHurtAnimation(bar *components.HealthBarData) {
	bar.Flash = components.FlashTask{}
	bar.OverlayAlpha = 0
	bar.BarColor = cfg.HUD.BarColor
}

// advanceBarDown waits out the chaser delay, then eases the chaser down.
func advanceBarDown(bar *components.HealthBarData, dt float64) {
	task := &bar.GoingDown
	if task.Delay > 0 {
		task.Delay -= dt
		return
	}

	if task.Tween == nil {
		task.Tween = gween.New(float32(bar.Chaser), float32(task.Target), float32(cfg.Health.BarLerpTime), ease.InQuad)
		bar.LerpTimer = 0
	}

	bar.LerpTimer += dt
	value, finished := task.Tween.Update(float32(dt))
	bar.Chaser = float64(value)
	if finished {
		bar.Chaser = task.Target
		*task = components.BarTask{}
		bar.LerpTimer = 0
	}
}

// advanceBarUp eases the bar up toward the chaser.
func advanceBarUp(bar *components.HealthBarData, dt float64) {
	task := &bar.GoingUp
	if task.Tween == nil {
		task.Tween = gween.New(float32(bar.Bar), float32(task.Target), float32(cfg.Health.BarLerpTime), ease.InQuad)
		bar.LerpTimer = 0
	}

	bar.LerpTimer += dt
	value, finished := task.Tween.Update(float32(dt))
	bar.Bar = float64(value)
	if finished {
		bar.Bar = task.Target
		*task = components.BarTask{}
		bar.LerpTimer = 0
	}
}

func startFlash(bar *components.HealthBarData) {
	if cfg.Health.HurtFlashCount <= 0 {
		return
	}
	bar.Flash = components.FlashTask{
		Active:    true,
		Remaining: cfg.Health.HurtFlashCount * 2,
	}
}

// advanceFlash alternates the bar color between the flash color and the bar
// color, one phase per FlashDuration, then restores the bar color.
func advanceFlash(bar *components.HealthBarData, dt float64) {
	flash := &bar.Flash
	if !flash.Active {
		return
	}
	if !flash.Started {
		flash.Started = true
		return
	}

	to := cfg.HUD.HurtFlashColor
	if flash.ToBarColor {
		to = cfg.HUD.BarColor
	}

	duration := cfg.Health.FlashDuration()
	flash.Elapsed += dt
	bar.BarColor = gamemath.LerpColor(bar.BarColor, to, flash.Elapsed/duration)
	if flash.Elapsed < duration {
		return
	}

	flash.Elapsed = 0
	flash.ToBarColor = !flash.ToBarColor
	flash.Remaining--
	if flash.Remaining <= 0 {
		*flash = components.FlashTask{}
		bar.BarColor = cfg.HUD.BarColor
	}
}
