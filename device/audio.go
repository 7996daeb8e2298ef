package device

import (
	"log"
	"sync"

	"github.com/automoto/doomerang-fps/assets"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// sharedContext returns the process-wide audio context. ebiten allows only one.
func sharedContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// Speaker plays sound effects through ebiten. It implements systems.SoundPlayer.
type Speaker struct {
	loader *assets.AudioLoader
	muted  bool
}

// NewSpeaker creates the audio context and preloads every configured effect.
func NewSpeaker() *Speaker {
	s := &Speaker{loader: assets.NewAudioLoader(sharedContext())}
	for soundID, path := range cfg.Sound.SFXPaths {
		if err := s.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: failed to preload %s: %v", soundID, err)
		}
	}
	return s
}

// SetMuted silences playback without touching the queue.
func (s *Speaker) SetMuted(muted bool) {
	s.muted = muted
}

// Play starts a new player for the effect.
func (s *Speaker) Play(soundID cfg.SoundID) {
	if s.muted {
		return
	}
	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := s.loader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: failed to load %s: %v", soundID, err)
		return
	}

	volume := cfg.Audio.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}
