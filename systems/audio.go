package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer plays a sound effect. Playback is fire-and-forget.
type SoundPlayer interface {
	Play(id cfg.SoundID)
}

// UpdateAudio drains the sounds queued this tick into player. A nil player
// discards them.
func UpdateAudio(player SoundPlayer) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Audio.First(e.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)
		if player != nil {
			for _, soundID := range audioData.PendingSFX {
				player.Play(soundID)
			}
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
