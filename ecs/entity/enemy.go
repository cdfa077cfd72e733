package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

func NewEnemy(w *ecs.World, specFile string, x, y, yaw float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.EnemySpec](specFile)
	if err != nil {
		return 0, fmt.Errorf("enemy: load spec: %w", err)
	}
	return NewEnemyFromSpec(w, spec, x, y, yaw)
}

func NewEnemyFromSpec(w *ecs.World, spec prefabs.EnemySpec, x, y, yaw float64) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	setOptional(&spec.Health, 100)
	setDefaultF(&spec.Capsule.Radius, 45)
	setDefaultF(&spec.Capsule.HalfHeight, 90)
	setDefaultF(&spec.Capsule.Mass, 60)
	setDefaultF(&spec.Speed, 400)
	setDefaultF(&spec.AttackRange, 120)
	setDefaultF(&spec.AttackCooldown, 1)
	if spec.Script == "" {
		spec.Script = "chaser.tengo"
	}
	name := spec.Name
	if name == "" {
		name = "enemy"
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{Name: name, Tags: []string{component.TagEnemy}}); err != nil {
		return 0, fmt.Errorf("enemy: add actor: %w", err)
	}
	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Speed:          spec.Speed,
		AttackDamage:   spec.AttackDamage,
		AttackRange:    spec.AttackRange,
		AttackCooldown: spec.AttackCooldown,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := ecs.Add(w, entity, component.ScriptComponent.Kind(), &component.Script{Path: spec.Script}); err != nil {
		return 0, fmt.Errorf("enemy: add script: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: *spec.Health, Default: *spec.Health}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{x, y, spec.Capsule.HalfHeight},
		Yaw:      common.NormalizeYaw(yaw),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.MovementComponent.Kind(), &component.Movement{
		MaxWalkSpeed:        spec.Speed,
		MaxAcceleration:     4096,
		BrakingDeceleration: 4096,
		AirControl:          0.05,
		GravityScale:        1,
		Grounded:            true,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add movement: %w", err)
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
		return 0, fmt.Errorf("enemy: add physics body: %w", err)
	}

	return entity, nil
}
