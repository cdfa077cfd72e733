package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

const (
	timerMuzzleFlash = "muzzle_flash"

	impactMarkerSeconds = 0.5

	defaultMuzzleFlashLifetime = 0.2
)

// FireSystem shoots the armed character's weapon along the view ray.
type FireSystem struct {
	tracer Tracer
}

func NewFireSystem(tracer Tracer) *FireSystem {
	return &FireSystem{tracer: tracer}
}

func (s *FireSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.ArmedComponent.Kind(), func(e ecs.Entity, input *component.Input, _ *component.Armed) {
		if input.FirePressed {
			s.Fire(w, e)
		}
	})
}

// Fire traces half the weapon range from the camera. A shot only lands while
// no muzzle flash is alive; the flash lifetime doubles as the fire rate. It
// reports whether a shot was taken.
func (s *FireSystem) Fire(w *ecs.World, e ecs.Entity) bool {
	armed, ok := ecs.Get(w, e, component.ArmedComponent.Kind())
	if !ok {
		return false
	}
	weaponEntity := ecs.Entity(armed.Weapon)
	weapon, ok := ecs.Get(w, weaponEntity, component.WeaponComponent.Kind())
	if !ok {
		return false
	}
	origin, forward, ok := viewPoint(w, e)
	if !ok {
		return false
	}

	end := traceEnd(origin, forward, weapon.Range*0.5)
	var hit TraceHit
	hitOK := false
	if s.tracer != nil {
		hit, hitOK = s.tracer.Trace(w, origin, end, e)
	}

	key := ecs.TimerKey{Owner: e, Name: timerMuzzleFlash}
	if w.Timers().Remaining(key) > 0 {
		return false
	}

	flash := spawnMuzzleFlash(w, weaponEntity, weapon)
	lifetime := weapon.MuzzleFlashLifetime
	if lifetime <= 0 {
		lifetime = defaultMuzzleFlashLifetime
	}
	m := ecs.CustomDilation(w, e)
	w.Timers().Schedule(key, lifetime/m, func(w *ecs.World) {
		ecs.DestroyEntity(w, flash)
	})

	w.Events().Push(ecs.Event{Kind: ecs.EventFired, Entity: e, Other: hit.Entity})

	if !hitOK {
		spawnImpactMarker(w, end, false)
		return true
	}
	spawnImpactMarker(w, hit.Location, true)

	if hit.Entity.Valid() && hasTag(w, hit.Entity, component.TagEnemy) {
		ApplyDamage(w, hit.Entity, weapon.Damage)
		if st, ok := ecs.Get(w, e, component.SlowTimeComponent.Kind()); ok && st.Percent == 1 {
			st.Mana = common.Clamp(st.Mana+weapon.ManaRefund, 0, st.DefaultMana)
		}
	}
	return true
}

func spawnMuzzleFlash(w *ecs.World, weaponEntity ecs.Entity, weapon *component.Weapon) ecs.Entity {
	flash := ecs.CreateEntity(w)
	pos := mgl64.Vec3{}
	yaw := 0.0
	if t, ok := ecs.Get(w, weaponEntity, component.TransformComponent.Kind()); ok {
		pos = t.Position.Add(common.RotateYaw(weapon.MuzzleOffset, t.Yaw))
		yaw = t.Yaw
	}
	_ = ecs.Add(w, flash, component.TransformComponent.Kind(), &component.Transform{Position: pos, Yaw: yaw})
	_ = ecs.Add(w, flash, component.AttachmentComponent.Kind(), &component.Attachment{Parent: uint64(weaponEntity), Offset: weapon.MuzzleOffset})
	_ = ecs.Add(w, flash, component.MuzzleFlashComponent.Kind(), &component.MuzzleFlash{Radius: weapon.FlashRadius})
	return flash
}

func spawnImpactMarker(w *ecs.World, at mgl64.Vec3, hit bool) {
	marker := ecs.CreateEntity(w)
	_ = ecs.Add(w, marker, component.TransformComponent.Kind(), &component.Transform{Position: at})
	_ = ecs.Add(w, marker, component.ImpactMarkerComponent.Kind(), &component.ImpactMarker{Hit: hit})
	_ = ecs.Add(w, marker, component.TTLComponent.Kind(), &component.TTL{Seconds: impactMarkerSeconds})
}
