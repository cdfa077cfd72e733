package system

import (
	"image/color"

	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

const pickupMessageSeconds = 2.5

var pickupMessageColor = color.RGBA{R: 255, A: 255}

// InteractSystem picks up and drops interactable objects and drags the held
// one toward the view ray every frame.
type InteractSystem struct {
	tracer Tracer
}

func NewInteractSystem(tracer Tracer) *InteractSystem {
	return &InteractSystem{tracer: tracer}
}

func (s *InteractSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HolderComponent.Kind(), func(e ecs.Entity, holder *component.Holder) {
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && input.InteractPressed {
			s.Interact(w, e)
		}
		s.dragHeld(w, e, holder)
	})
}

// Interact toggles between holding and releasing. It reports whether the hold
// state changed.
func (s *InteractSystem) Interact(w *ecs.World, e ecs.Entity) bool {
	holder, ok := ecs.Get(w, e, component.HolderComponent.Kind())
	if !ok {
		return false
	}

	if holder.Holding {
		release(w, e, holder)
		return true
	}

	origin, forward, ok := viewPoint(w, e)
	if !ok || s.tracer == nil {
		return false
	}
	hit, ok := s.tracer.Trace(w, origin, traceEnd(origin, forward, holder.Range), e)
	if !ok || !hit.Entity.Valid() || !hasTag(w, hit.Entity, component.TagInteractable) {
		return false
	}

	if body, ok := ecs.Get(w, hit.Entity, component.PhysicsBodyComponent.Kind()); ok {
		body.SimulatePhysics = false
		body.EnableGravity = false
		body.CollisionEnabled = false
		body.VelocityZ = 0
	}
	holder.Held = uint64(hit.Entity)
	holder.Holding = true

	name := actorName(w, hit.Entity)
	showDebugMessage(w, -1, pickupMessageSeconds, pickupMessageColor, "picked up "+name)
	w.Events().Push(ecs.Event{Kind: ecs.EventPickedUp, Entity: e, Other: hit.Entity, Note: name})
	return true
}

func release(w *ecs.World, e ecs.Entity, holder *component.Holder) {
	held := ecs.Entity(holder.Held)
	if body, ok := ecs.Get(w, held, component.PhysicsBodyComponent.Kind()); ok {
		body.SimulatePhysics = true
		body.EnableGravity = true
		body.CollisionEnabled = true
		body.Grounded = false
	}
	holder.Held = 0
	holder.Holding = false
	w.Events().Push(ecs.Event{Kind: ecs.EventReleased, Entity: e, Other: held})
}

func (s *InteractSystem) dragHeld(w *ecs.World, e ecs.Entity, holder *component.Holder) {
	if !holder.Holding {
		return
	}
	held := ecs.Entity(holder.Held)
	transform, ok := ecs.Get(w, held, component.TransformComponent.Kind())
	if !ok {
		// the held object was destroyed
		holder.Held = 0
		holder.Holding = false
		return
	}

	origin, forward, ok := viewPoint(w, e)
	if !ok {
		return
	}
	target := traceEnd(origin, forward, holder.Range*0.5)
	if s.tracer != nil {
		if hit, ok := s.tracer.Trace(w, origin, target, e); ok {
			target = hit.Location
		}
	}
	transform.Position = common.LerpVec3(transform.Position, target, holder.HoldLerp)
}
