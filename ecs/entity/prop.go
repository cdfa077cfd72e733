package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

// NewProp builds a loose physics object the player can pick up.
func NewProp(w *ecs.World, specFile string, x, y, yaw float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PropSpec](specFile)
	if err != nil {
		return 0, fmt.Errorf("prop: load spec: %w", err)
	}
	return NewPropFromSpec(w, spec, x, y, yaw)
}

func NewPropFromSpec(w *ecs.World, spec prefabs.PropSpec, x, y, yaw float64) (ecs.Entity, error) {
	setDefaultF(&spec.Capsule.Radius, 25)
	setDefaultF(&spec.Capsule.HalfHeight, 25)
	setDefaultF(&spec.Capsule.Mass, 10)
	name := spec.Name
	if name == "" {
		name = "prop"
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{Name: name, Tags: []string{component.TagInteractable}}); err != nil {
		return 0, fmt.Errorf("prop: add actor: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{x, y, spec.Capsule.HalfHeight},
		Yaw:      yaw,
	}); err != nil {
		return 0, fmt.Errorf("prop: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:           spec.Capsule.Radius,
		HalfHeight:       spec.Capsule.HalfHeight,
		Mass:             spec.Capsule.Mass,
		Friction:         spec.Capsule.Friction,
		SimulatePhysics:  true,
		EnableGravity:    true,
		CollisionEnabled: true,
		Grounded:         true,
	}); err != nil {
		return 0, fmt.Errorf("prop: add physics body: %w", err)
	}
	return entity, nil
}
