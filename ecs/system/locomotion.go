package system

import (
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// LocomotionSystem handles landing, jumping and move input for characters.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.LandedComponent.Kind(), func(e ecs.Entity, _ *component.Landed) {
		OnLanded(w, e)
		_ = ecs.Remove(w, e, component.LandedComponent.Kind())
	})

	ecs.ForEach3(w, component.InputComponent.Kind(), component.MovementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, input *component.Input, move *component.Movement, transform *component.Transform) {
		if input.JumpPressed {
			Jump(w, e)
		}
		// releasing jump has no effect; the counter alone limits jumps

		if input.MoveForward != 0 {
			move.PendingInput = move.PendingInput.Add(common.Forward(transform.Yaw, 0).Mul(input.MoveForward))
		}
		if input.MoveRight != 0 {
			move.PendingInput = move.PendingInput.Add(common.Right(transform.Yaw).Mul(input.MoveRight))
		}
	})
}

// OnLanded refills the jump counter.
func OnLanded(w *ecs.World, e ecs.Entity) {
	jumps, ok := ecs.Get(w, e, component.JumpsComponent.Kind())
	if !ok {
		return
	}
	jumps.Current = jumps.Default
}

// Jump launches e upward when it has a jump charge left. It reports whether a
// charge was consumed.
func Jump(w *ecs.World, e ecs.Entity) bool {
	jumps, okJ := ecs.Get(w, e, component.JumpsComponent.Kind())
	move, okM := ecs.Get(w, e, component.MovementComponent.Kind())
	if !okJ || !okM || jumps.Current <= 0 {
		return false
	}
	move.Velocity[2] = move.JumpZVelocity
	move.Grounded = false
	jumps.Current--
	return true
}
