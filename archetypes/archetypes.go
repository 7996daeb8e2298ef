package archetypes

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Input,
		components.DashGesture,
		components.Motion,
		components.Body,
		components.Camera,
		components.Exclusive,
		components.Zoom,
		components.Health,
		components.HealthBar,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
