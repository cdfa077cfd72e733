package system

import (
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// ApplyDamage subtracts amount from e's health and destroys e once it reaches
// zero. It reports whether e was destroyed.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount int) bool {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	health.Current -= amount
	w.Events().Push(ecs.Event{Kind: ecs.EventDamaged, Entity: e, Value: float64(amount)})
	if health.Current > 0 {
		return false
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventDestroyed, Entity: e, Note: actorName(w, e)})
	return ecs.DestroyEntity(w, e)
}

func actorName(w *ecs.World, e ecs.Entity) string {
	if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		return actor.Name
	}
	return ""
}
