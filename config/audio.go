package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundDash
	SoundCrouch
	SoundVault
	// Health sounds
	SoundHurt
	SoundSevereHurt
	SoundHeal
	SoundDeath
	SoundCount
)

var soundNames = [SoundCount]string{
	SoundNone:       "none",
	SoundJump:       "jump",
	SoundLand:       "land",
	SoundDash:       "dash",
	SoundCrouch:     "crouch",
	SoundVault:      "vault",
	SoundHurt:       "hurt",
	SoundSevereHurt: "severeHurt",
	SoundHeal:       "heal",
	SoundDeath:      "death",
}

// String returns the event name used by the sound dispatch.
func (s SoundID) String() string {
	if s < 0 || s >= SoundCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:       "audio/sfx/jump.wav",
			SoundLand:       "audio/sfx/land.wav",
			SoundDash:       "audio/sfx/dash.wav",
			SoundCrouch:     "audio/sfx/crouch.wav",
			SoundVault:      "audio/sfx/vault.wav",
			SoundHurt:       "audio/sfx/hurt.wav",
			SoundSevereHurt: "audio/sfx/severe_hurt.wav",
			SoundHeal:       "audio/sfx/heal.wav",
			SoundDeath:      "audio/sfx/death.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLand:   0.6,
			SoundCrouch: 0.5,
		},
	}
}
