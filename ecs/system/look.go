package system

import (
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

const maxPitch = 89.0

// LookSystem applies control rotation. Turn and LookUp are absolute deltas
// (mouse); the rate axes are scaled by the base rate and the entity's delta.
// The actor's yaw follows the control yaw.
type LookSystem struct{}

func NewLookSystem() *LookSystem {
	return &LookSystem{}
}

func (s *LookSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, input *component.Input, cam *component.Camera, transform *component.Transform) {
		dt := ecs.DeltaFor(w, e)

		yaw := input.Turn + input.TurnRate*cam.BaseTurnRate*dt
		pitch := input.LookUp + input.LookUpRate*cam.BaseLookUpRate*dt
		if cam.YawInputScale > 0 {
			yaw *= cam.YawInputScale
		}
		if cam.PitchInputScale > 0 {
			pitch *= cam.PitchInputScale
		}

		transform.Yaw = common.NormalizeYaw(transform.Yaw + yaw)
		cam.Pitch = common.Clamp(cam.Pitch+pitch, -maxPitch, maxPitch)

		if input.ResetVRPressed {
			cam.Pitch = 0
			common.Log().Infow("view recentered", "entity", e)
		}
	})
}
