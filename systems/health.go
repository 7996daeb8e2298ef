package systems

import (
	"log"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterDamage queues a damage effect. It is applied on the next health tick.
func RegisterDamage(e *donburi.Entry, effect components.DamageEffect) {
	health := components.Health.Get(e)
	health.Damage = append(health.Damage, effect)
}

// RegisterHeal queues a heal effect. It is applied on the next health tick.
func RegisterHeal(e *donburi.Entry, effect components.HealEffect) {
	health := components.Health.Get(e)
	health.Heals = append(health.Heals, effect)
}

// UpdateHealth drains queued effects in a fixed order: death check, instant
// damage, damage over time, instant heals, heals over time, regeneration.
func UpdateHealth(ecs *ecs.ECS) {
	dt := cfg.Sim.FixedDelta()

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		health.Previous = health.Current

		checkDeath(ecs, health)

		damaged := applyDamage(ecs, health)
		if applyDamageOverTime(health, dt) {
			damaged = true
		}
		if damaged {
			health.SinceDamage = 0
		} else {
			health.SinceDamage += dt
		}

		if applyHeals(ecs, health) && e.HasComponent(components.HealthBar) {
			cancelHurtAnimation(components.HealthBar.Get(e))
		}
		if cfg.Health.CanReceiveHealOverTime {
			applyHealOverTime(health, dt)
		}
		regenerate(health, dt)
	})
}

func checkDeath(ecs *ecs.ECS, health *components.HealthData) {
	if health.Dead || !cfg.Health.CanDie || health.Current > health.Min {
		return
	}
	health.Dead = true
	PlaySFX(ecs, cfg.SoundDeath)
	log.Printf("[health] died at %.1f", health.Current)
}

// applyDamage applies and removes every instant damage effect. Over-time
// effects stay queued.
func applyDamage(ecs *ecs.ECS, health *components.HealthData) bool {
	applied := false
	kept := health.Damage[:0]
	for _, effect := range health.Damage {
		if effect.OverTime {
			kept = append(kept, effect)
			continue
		}
		result := health.Current - effect.Amount
		if result <= cfg.Health.SeverelyHurtThreshold {
			PlaySFX(ecs, cfg.SoundSevereHurt)
		} else {
			PlaySFX(ecs, cfg.SoundHurt)
		}
		health.Current = clampHealth(health, result)
		applied = true
	}
	health.Damage = kept
	return applied
}

func applyDamageOverTime(health *components.HealthData, dt float64) bool {
	applied := false
	kept := health.Damage[:0]
	for _, effect := range health.Damage {
		amount, ok := tickOverTime(&effect.Amount, &effect.TicksRemaining, &effect.TickTimer, dt)
		if amount != 0 {
			health.Current = clampHealth(health, health.Current-amount)
			applied = true
		}
		if ok {
			kept = append(kept, effect)
		}
	}
	health.Damage = kept
	return applied
}

// applyHeals applies and removes every instant heal.
func applyHeals(ecs *ecs.ECS, health *components.HealthData) bool {
	applied := false
	kept := health.Heals[:0]
	for _, effect := range health.Heals {
		if effect.OverTime {
			kept = append(kept, effect)
			continue
		}
		PlaySFX(ecs, cfg.SoundHeal)
		health.Current = clampHealth(health, health.Current+effect.Amount)
		applied = true
	}
	health.Heals = kept
	return applied
}

func applyHealOverTime(health *components.HealthData, dt float64) {
	kept := health.Heals[:0]
	for _, effect := range health.Heals {
		if !effect.OverTime {
			kept = append(kept, effect)
			continue
		}
		amount, ok := tickOverTime(&effect.Amount, &effect.TicksRemaining, &effect.TickTimer, dt)
		if amount != 0 {
			health.Current = clampHealth(health, health.Current+amount)
		}
		if ok {
			kept = append(kept, effect)
		}
	}
	health.Heals = kept
}

// tickOverTime advances one over-time effect. It returns the share to apply
// this tick and whether the effect stays queued. The tick count is checked
// before it divides.
func tickOverTime(amount *float64, ticks *int, timer *float64, dt float64) (float64, bool) {
	*timer -= dt
	if *timer > 0 {
		return 0, true
	}
	if *ticks <= 0 {
		return 0, false
	}

	share := *amount / float64(*ticks)
	*amount -= share
	*ticks--
	if *ticks == 0 {
		return share, false
	}
	*timer = cfg.Health.OverTimeTickInterval
	return share, true
}

func regenerate(health *components.HealthData, dt float64) {
	health.Regenerating = false
	if !cfg.Health.RegenerationEnabled || health.Dead {
		return
	}
	if health.SinceDamage < cfg.Health.RegenerationDelay || health.Current >= health.Max {
		return
	}
	health.Current = clampHealth(health, health.Current+cfg.Health.RegenerationRate*dt)
	health.Regenerating = true
}

func clampHealth(health *components.HealthData, value float64) float64 {
	if value < health.Min {
		return health.Min
	}
	if value > health.Max {
		return health.Max
	}
	return value
}
