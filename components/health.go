package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DamageEffect is a queued change that lowers health. Over-time effects spend
// Amount across TicksRemaining ticks.
type DamageEffect struct {
	Amount         float64
	OverTime       bool
	TicksRemaining int
	TickTimer      float64 // Seconds until the next over-time tick
}

// NewDamage returns an instant damage effect.
func NewDamage(amount float64) DamageEffect {
	return DamageEffect{Amount: amount}
}

// NewDamageOverTime spreads amount across ticks.
func NewDamageOverTime(amount float64, ticks int) DamageEffect {
	return DamageEffect{Amount: amount, OverTime: true, TicksRemaining: ticks}
}

// HealEffect is a queued change that raises health.
type HealEffect struct {
	Amount         float64
	OverTime       bool
	TicksRemaining int
	TickTimer      float64
}

// NewHeal returns an instant heal effect.
func NewHeal(amount float64) HealEffect {
	return HealEffect{Amount: amount}
}

// NewHealOverTime spreads amount across ticks.
func NewHealOverTime(amount float64, ticks int) HealEffect {
	return HealEffect{Amount: amount, OverTime: true, TicksRemaining: ticks}
}

// HealthData holds health and its pending effects. Effects are processed in
// the order they were registered.
type HealthData struct {
	Current  float64
	Previous float64 // Health at the start of the last health tick
	Min      float64
	Max      float64

	Damage []DamageEffect
	Heals  []HealEffect

	Dead         bool
	SinceDamage  float64 // Seconds since damage was last applied
	Regenerating bool
}

// Fraction returns current health as a fraction of max.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()

// BarTask is one direction of the bar animation.
type BarTask struct {
	Active bool
	Delay  float64 // Seconds left before the tween starts
	Tween  *gween.Tween
	Target float64
}

// FlashTask pulses the bar color after damage.
type FlashTask struct {
	Active     bool
	Started    bool // The first tick only arms the loop
	Remaining  int  // Phases left
	Elapsed    float64
	ToBarColor bool
}

// HealthBarData is the HUD state derived from health. Bar and Chaser are fill
// fractions in [0, 1].
type HealthBarData struct {
	Bar    float64
	Chaser float64

	BarColor    color.RGBA
	ChaserColor color.RGBA

	LerpTimer float64 // Seconds into the running bar tween

	GoingUp   BarTask
	GoingDown BarTask
	Flash     FlashTask

	OverlayAlpha float64
	Severe       bool
}

var HealthBar = donburi.NewComponentType[HealthBarData]()
