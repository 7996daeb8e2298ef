package factory

import (
	"github.com/automoto/doomerang-fps/archetypes"
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision world singleton.
func CreateSpace(ecs *ecs.ECS, world *physics.World) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{World: world})
	return space
}

// CreateAudio spawns the pending sound queue. It must exist before any system
// queues a sound.
func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return audio
}
