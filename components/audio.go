package components

import (
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the sound events queued this tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
