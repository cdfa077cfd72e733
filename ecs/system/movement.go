package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// MovementSystem turns pending move input into horizontal velocity:
// acceleration toward the input direction, braking without input and reduced
// control in the air. Speed above the walk limit (after a dash) bleeds off at
// the braking rate instead of being cut.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.MovementComponent.Kind(), func(e ecs.Entity, move *component.Movement) {
		input := move.PendingInput
		move.PendingInput = mgl64.Vec3{}

		if dash, ok := ecs.Get(w, e, component.DashComponent.Kind()); ok && dash.Dashing {
			return
		}

		dt := ecs.DeltaFor(w, e)
		if dt <= 0 {
			return
		}
		move.Velocity = stepWalk(move, input, dt)
	})
}

func stepWalk(move *component.Movement, input mgl64.Vec3, dt float64) mgl64.Vec3 {
	input[2] = 0
	if l := input.Len(); l > 1 {
		input = input.Mul(1 / l)
	}

	v := mgl64.Vec3{move.Velocity.X(), move.Velocity.Y(), 0}
	speed := v.Len()

	control := 1.0
	if !move.Grounded {
		control = move.AirControl
	}

	if input.Len() > 0 {
		v = v.Add(input.Mul(move.MaxAcceleration * control * dt))
	} else if move.Grounded && speed > 0 {
		v = v.Mul(math.Max(0, speed-move.BrakingDeceleration*dt) / speed)
	}

	limit := move.MaxWalkSpeed
	if speed > limit {
		limit = math.Max(move.MaxWalkSpeed, speed-move.BrakingDeceleration*dt)
	}
	if l := v.Len(); l > limit && l > 0 {
		v = v.Mul(limit / l)
	}

	return mgl64.Vec3{v.X(), v.Y(), move.Velocity.Z()}
}
