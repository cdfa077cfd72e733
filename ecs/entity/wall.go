package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

// NewWall builds a static box whose lower-left corner is (x, y). Walls block
// traces at any height.
func NewWall(w *ecs.World, spec prefabs.WallSpec) (ecs.Entity, error) {
	if spec.W <= 0 || spec.H <= 0 {
		return 0, fmt.Errorf("wall: invalid size %vx%v", spec.W, spec.H)
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{Name: "wall"}); err != nil {
		return 0, fmt.Errorf("wall: add actor: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: mgl64.Vec3{spec.X, spec.Y, 0}}); err != nil {
		return 0, fmt.Errorf("wall: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Length:           spec.W,
		Width:            spec.H,
		Static:           true,
		CollisionEnabled: true,
		Friction:         1,
	}); err != nil {
		return 0, fmt.Errorf("wall: add physics body: %w", err)
	}
	return entity, nil
}
