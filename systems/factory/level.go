package factory

import (
	"fmt"
	"log"

	"github.com/automoto/doomerang-fps/archetypes"
	"github.com/automoto/doomerang-fps/components"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/automoto/doomerang-fps/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision world for arena and spawns the level,
// space and trigger entities. The player is not created.
func CreateLevel(ecs *ecs.ECS, arena *leveldata.Arena) (*physics.World, error) {
	if arena == nil {
		return nil, fmt.Errorf("create level: no arena")
	}

	world := physics.NewWorld(arena.Min.X(), arena.Min.Z(), arena.Max.X(), arena.Max.Z())
	for _, def := range arena.Boxes {
		layer, err := boxLayer(def.Class)
		if err != nil {
			return nil, fmt.Errorf("create level %s: box %s: %w", arena.Name, def.Name, err)
		}
		world.AddBox(def.Name, def.Min, def.Max, layer)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Arena: arena})
	CreateSpace(ecs, world)

	for _, def := range arena.Triggers {
		if _, err := CreateTrigger(ecs, world, def); err != nil {
			return nil, fmt.Errorf("create level %s: %w", arena.Name, err)
		}
	}

	log.Printf("[level] %s: %d colliders, %d triggers", arena.Name, len(arena.Boxes), len(arena.Triggers))
	return world, nil
}

// CreateTrigger spawns a trigger volume and registers its box on the trigger
// layer. The box carries the trigger entry as its data.
func CreateTrigger(ecs *ecs.ECS, world *physics.World, def leveldata.TriggerDef) (*donburi.Entry, error) {
	var kind components.TriggerKind
	switch def.Class {
	case leveldata.ClassDamage:
		kind = components.TriggerDamage
	case leveldata.ClassHeal:
		kind = components.TriggerHeal
	default:
		return nil, fmt.Errorf("trigger %s: unknown class %q", def.Name, def.Class)
	}

	trigger := archetypes.Trigger.Spawn(ecs)
	box := world.AddBox(def.Name, def.Min, def.Max, physics.LayerTrigger)
	box.Data = trigger

	components.Trigger.SetValue(trigger, components.TriggerData{
		Kind:     kind,
		Amount:   def.Amount,
		OverTime: def.OverTime,
		Ticks:    def.Ticks,
		Box:      box,
		Inside:   make(map[donburi.Entity]bool),
	})
	return trigger, nil
}

func boxLayer(class string) (physics.Layer, error) {
	switch class {
	case leveldata.ClassGround:
		return physics.LayerGround, nil
	case leveldata.ClassLedge:
		return physics.LayerLedge, nil
	}
	return physics.LayerNone, fmt.Errorf("unknown class %q", class)
}
