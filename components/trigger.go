package components

import (
	"github.com/automoto/doomerang-fps/physics"
	"github.com/yohamta/donburi"
)

// TriggerKind is the effect a trigger volume registers.
type TriggerKind int

const (
	TriggerDamage TriggerKind = iota
	TriggerHeal
)

func (k TriggerKind) String() string {
	if k == TriggerHeal {
		return "heal"
	}
	return "damage"
}

// TriggerData is a volume that registers an effect when an actor enters it.
type TriggerData struct {
	Kind     TriggerKind
	Amount   float64
	OverTime bool
	Ticks    int
	Box      *physics.Box
	Inside   map[donburi.Entity]bool // Actors currently overlapping
}

var Trigger = donburi.NewComponentType[TriggerData]()
