package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// viewPoint returns the world-space camera location and forward vector of e.
func viewPoint(w *ecs.World, e ecs.Entity) (origin, forward mgl64.Vec3, ok bool) {
	transform, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	if !okT {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	pitch := 0.0
	var offset mgl64.Vec3
	if cam, okC := ecs.Get(w, e, component.CameraComponent.Kind()); okC {
		pitch = cam.Pitch
		offset = cam.Offset
	}
	origin = transform.Position.Add(common.RotateYaw(offset, transform.Yaw))
	return origin, common.Forward(transform.Yaw, pitch), true
}

// ViewPoint is the exported form used by the renderer and HUD.
func ViewPoint(w *ecs.World, e ecs.Entity) (origin, forward mgl64.Vec3, ok bool) {
	return viewPoint(w, e)
}

// actorForward is the horizontal facing of e.
func actorForward(w *ecs.World, e ecs.Entity) mgl64.Vec3 {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{1, 0, 0}
	}
	return common.Forward(transform.Yaw, 0)
}

func hasTag(w *ecs.World, e ecs.Entity, tag string) bool {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	return ok && actor.HasTag(tag)
}

// FindByTag returns the first live entity carrying tag.
func FindByTag(w *ecs.World, tag string) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		if ok || !actor.HasTag(tag) {
			return
		}
		found = e
		ok = true
	})
	return found, ok
}
