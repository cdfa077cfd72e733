package entity

import (
	"fmt"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

// NewWeapon spawns the weapon described by specFile and attaches it to the
// owner's gun location.
func NewWeapon(w *ecs.World, specFile string, owner ecs.Entity) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.WeaponSpec](specFile)
	if err != nil {
		return 0, fmt.Errorf("weapon: load spec: %w", err)
	}
	return NewWeaponFromSpec(w, spec, owner)
}

func NewWeaponFromSpec(w *ecs.World, spec prefabs.WeaponSpec, owner ecs.Entity) (ecs.Entity, error) {
	armed, ok := ecs.Get(w, owner, component.ArmedComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("weapon: owner %v is not armed", owner)
	}

	entity := ecs.CreateEntity(w)
	name := spec.Name
	if name == "" {
		name = "weapon"
	}
	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{Name: name}); err != nil {
		return 0, fmt.Errorf("weapon: add actor: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("weapon: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &component.Weapon{}); err != nil {
		return 0, fmt.Errorf("weapon: add weapon: %w", err)
	}
	if err := ecs.Add(w, entity, component.AttachmentComponent.Kind(), &component.Attachment{
		Parent:   uint64(owner),
		Offset:   armed.GunOffset,
		ToCamera: true,
	}); err != nil {
		return 0, fmt.Errorf("weapon: add attachment: %w", err)
	}

	ApplyWeaponSpec(w, entity, spec)
	armed.Weapon = uint64(entity)
	return entity, nil
}

// ApplyWeaponSpec writes the tunables of spec onto an existing weapon.
func ApplyWeaponSpec(w *ecs.World, e ecs.Entity, spec prefabs.WeaponSpec) {
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return
	}
	weapon.Damage = spec.Damage
	weapon.Range = spec.Range
	weapon.MuzzleOffset = spec.MuzzleOffset.Vec3()
	weapon.MuzzleFlashLifetime = spec.MuzzleFlashLifetime
	weapon.FlashRadius = spec.FlashRadius
	weapon.ManaRefund = spec.ManaRefund
	if weapon.Range <= 0 {
		weapon.Range = 5000
	}
	if weapon.MuzzleFlashLifetime <= 0 {
		weapon.MuzzleFlashLifetime = 0.2
	}
	if weapon.ManaRefund <= 0 {
		weapon.ManaRefund = 1
	}
}
