package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TaskKind identifies the exclusive task that owns the body.
type TaskKind int

const (
	TaskNone TaskKind = iota
	TaskDash
	TaskVault
)

func (k TaskKind) String() string {
	switch k {
	case TaskDash:
		return "dash"
	case TaskVault:
		return "vault"
	}
	return "none"
}

// DashTask is the progress of a running dash.
type DashTask struct {
	Direction       mgl64.Vec3
	DistanceCovered float64
}

// VaultPhase is the stage of a running vault.
type VaultPhase int

const (
	VaultMove VaultPhase = iota
	VaultRestore
)

// VaultTask is the progress of a running vault.
type VaultTask struct {
	Phase          VaultPhase
	Elapsed        float64
	StartPosition  mgl64.Vec3
	Target         mgl64.Vec3
	StartRotation  mgl64.Quat
	TargetRotation mgl64.Quat
}

// ExclusiveData holds the single task slot shared by dash and vault. Only one
// task runs at a time and it owns the input lock while it does.
type ExclusiveData struct {
	Kind  TaskKind
	Dash  DashTask
	Vault VaultTask
}

// Running reports whether a task owns the slot.
func (d *ExclusiveData) Running() bool {
	return d.Kind != TaskNone
}

var Exclusive = donburi.NewComponentType[ExclusiveData]()

// ZoomData tweens the camera field of view.
type ZoomData struct {
	Zoomed bool
	Tween  *gween.Tween // nil when idle
	Target float64
}

var Zoom = donburi.NewComponentType[ZoomData]()
