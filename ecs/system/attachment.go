package system

import (
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// AttachmentSystem snaps attached entities to their parent. Children of a
// destroyed parent are destroyed with it.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem {
	return &AttachmentSystem{}
}

func (s *AttachmentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	// parents are resolved before children: a flash rides a weapon that rides
	// the camera
	for pass := 0; pass < 2; pass++ {
		ecs.ForEach2(w, component.AttachmentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, att *component.Attachment, transform *component.Transform) {
			parent := ecs.Entity(att.Parent)
			if !w.IsAlive(parent) {
				ecs.DestroyEntity(w, e)
				return
			}
			snapToParent(w, parent, att, transform)
		})
	}
}

func snapToParent(w *ecs.World, parent ecs.Entity, att *component.Attachment, transform *component.Transform) {
	if att.ToCamera {
		origin, _, ok := viewPoint(w, parent)
		if !ok {
			return
		}
		pitch := 0.0
		if cam, ok := ecs.Get(w, parent, component.CameraComponent.Kind()); ok {
			pitch = cam.Pitch
		}
		pt, _ := ecs.Get(w, parent, component.TransformComponent.Kind())
		transform.Yaw = pt.Yaw
		transform.Position = origin.Add(common.RotateYaw(common.RotatePitch(att.Offset, pitch), pt.Yaw))
		return
	}

	pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
	if !ok {
		return
	}
	transform.Yaw = pt.Yaw
	transform.Position = pt.Position.Add(common.RotateYaw(att.Offset, pt.Yaw))
}
