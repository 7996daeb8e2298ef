package systems

import (
	"testing"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
)

func TestUpdateAudioDrainsQueue(t *testing.T) {
	r := newTestRig(t)

	PlaySFX(r.ecs, cfg.SoundJump)
	PlaySFX(r.ecs, cfg.SoundHeal)
	UpdateAudio(r.sounds)(r.ecs)

	if len(r.sounds.played) != 2 || r.sounds.played[0] != cfg.SoundJump || r.sounds.played[1] != cfg.SoundHeal {
		t.Fatalf("played %v, want [jump heal]", r.sounds.played)
	}

	UpdateAudio(r.sounds)(r.ecs)
	if len(r.sounds.played) != 2 {
		t.Errorf("queue should be empty after a drain, played %v", r.sounds.played)
	}
}

func TestUpdateAudioWithoutPlayer(t *testing.T) {
	r := newTestRig(t)

	PlaySFX(r.ecs, cfg.SoundLand)
	UpdateAudio(nil)(r.ecs)

	entry, ok := components.Audio.First(r.ecs.World)
	if !ok {
		t.Fatal("audio queue missing")
	}
	if n := len(components.Audio.Get(entry).PendingSFX); n != 0 {
		t.Errorf("%d sounds pending, want the queue discarded", n)
	}
}

func TestSoundNames(t *testing.T) {
	tests := []struct {
		id   cfg.SoundID
		want string
	}{
		{cfg.SoundSevereHurt, "severeHurt"},
		{cfg.SoundDeath, "death"},
		{cfg.SoundCount, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("SoundID(%d).String() = %q, want %q", int(tt.id), got, tt.want)
		}
	}
}
