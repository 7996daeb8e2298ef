package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers registers a trigger's effect on every actor that entered its
// volume this tick. An actor has to leave and re-enter to be affected again.
func UpdateTriggers(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}

	components.Health.Each(ecs.World, func(actor *donburi.Entry) {
		if !actor.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(actor).Body

		touching := make(map[donburi.Entity]bool)
		for _, box := range space.Overlapping(footprint(body)) {
			if trigger, ok := box.Data.(*donburi.Entry); ok && trigger.Valid() {
				touching[trigger.Entity()] = true
			}
		}

		components.Trigger.Each(ecs.World, func(te *donburi.Entry) {
			trigger := components.Trigger.Get(te)
			if trigger.Inside == nil {
				trigger.Inside = make(map[donburi.Entity]bool)
			}

			inside := touching[te.Entity()]
			if inside && !trigger.Inside[actor.Entity()] {
				fireTrigger(actor, trigger)
			}
			if inside {
				trigger.Inside[actor.Entity()] = true
			} else {
				delete(trigger.Inside, actor.Entity())
			}
		})
	})
}

// footprint returns the bounds a body occupies, with the trigger layer mask.
func footprint(body physics.RigidBody) (mgl64.Vec3, mgl64.Vec3, physics.Layer) {
	pos := body.Position()
	extent := mgl64.Vec3{cfg.Player.Radius, body.Scale().Y(), cfg.Player.Radius}
	return pos.Sub(extent), pos.Add(extent), physics.LayerTrigger
}

func fireTrigger(actor *donburi.Entry, trigger *components.TriggerData) {
	switch trigger.Kind {
	case components.TriggerDamage:
		if trigger.OverTime {
			RegisterDamage(actor, components.NewDamageOverTime(trigger.Amount, trigger.Ticks))
		} else {
			RegisterDamage(actor, components.NewDamage(trigger.Amount))
		}
	case components.TriggerHeal:
		if trigger.OverTime {
			RegisterHeal(actor, components.NewHealOverTime(trigger.Amount, trigger.Ticks))
		} else {
			RegisterHeal(actor, components.NewHeal(trigger.Amount))
		}
	}
}
