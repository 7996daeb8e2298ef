package systems

import (
	"log"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// actor groups the per-entity state every motion handler works on.
type actor struct {
	entry  *donburi.Entry
	input  components.InputSnapshot
	motion *components.MotionData
	body   physics.RigidBody
	camera *components.CameraData
	space  *physics.World
	dt     float64
}

func newActor(e *donburi.Entry, space *physics.World, dt float64) *actor {
	return &actor{
		entry:  e,
		input:  components.Input.Get(e).Snapshot,
		motion: components.Motion.Get(e),
		body:   components.Body.Get(e).Body,
		camera: components.Camera.Get(e),
		space:  space,
		dt:     dt,
	}
}

// UpdateMotion runs the movement-class handlers. While an exclusive task owns
// the input lock the whole set is skipped.
func UpdateMotion(ecs *ecs.ECS) {
	space := getSpace(ecs)
	if space == nil {
		return
	}
	dt := cfg.Sim.FixedDelta()

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		a := newActor(e, space, dt)
		if !a.motion.CanAcceptInput {
			return
		}

		handleMovement(a)
		handleJump(ecs, a)
		handleVaultToLedge(ecs, a)
		handleDash(ecs, a)
		handleCrouch(ecs, a)
		handleZoom(a)
	})
}

// acquireLock hands the body to an exclusive task, cancelling any task that
// already holds it.
func acquireLock(e *donburi.Entry, kind components.TaskKind) *components.ExclusiveData {
	task := components.Exclusive.Get(e)
	if task.Running() {
		CancelTask(e)
	}
	task.Kind = kind

	motion := components.Motion.Get(e)
	motion.CanAcceptInput = false
	switch kind {
	case components.TaskDash:
		motion.IsDashing = true
	case components.TaskVault:
		motion.IsVaultingToLedge = true
	}
	log.Printf("[motion] %s started, input locked", kind)
	return task
}

// releaseLock ends the running task and restores input.
func releaseLock(e *donburi.Entry, reason string) {
	task := components.Exclusive.Get(e)
	kind := task.Kind
	*task = components.ExclusiveData{}

	motion := components.Motion.Get(e)
	motion.CanAcceptInput = true
	motion.IsDashing = false
	motion.IsVaultingToLedge = false
	log.Printf("[motion] %s %s, input restored", kind, reason)
}

// CancelTask stops the running exclusive task, if any, and releases the lock.
func CancelTask(e *donburi.Entry) {
	if !components.Exclusive.Get(e).Running() {
		return
	}
	releaseLock(e, "cancelled")
}
