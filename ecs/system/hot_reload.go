package system

import (
	"strings"

	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
	"github.com/milk9111/myboss/prefabs"
)

// ChangeSource reports prefab files edited since the last poll.
type ChangeSource interface {
	Poll() (changed []string, errs []error)
}

// HotReloadSystem re-applies edited player and weapon specs to live entities
// and drops compiled enemy scripts when a script changes.
type HotReloadSystem struct {
	source  ChangeSource
	enemies *EnemySystem
}

func NewHotReloadSystem(source ChangeSource, enemies *EnemySystem) *HotReloadSystem {
	return &HotReloadSystem{source: source, enemies: enemies}
}

func (s *HotReloadSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	changed, errs := s.source.Poll()
	for _, err := range errs {
		common.Log().Warnw("prefab watcher", "error", err)
	}
	for _, name := range changed {
		s.apply(w, name)
	}
}

func (s *HotReloadSystem) apply(w *ecs.World, name string) {
	log := common.Log()

	if strings.HasPrefix(name, "scripts/") {
		s.enemies.Reload()
		log.Infow("reloaded enemy scripts", "file", name)
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		switch name {
		case player.Spec:
			spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](name)
			if err != nil {
				log.Warnw("reload player spec", "file", name, "error", err)
				return
			}
			if err := spec.Validate(); err != nil {
				log.Warnw("rejected player spec", "file", name, "error", err)
				return
			}
			entity.ApplyPlayerSpec(w, e, spec)
			log.Infow("reloaded player spec", "file", name, "entity", e)
		case player.WeaponSpec:
			armed, ok := ecs.Get(w, e, component.ArmedComponent.Kind())
			if !ok {
				return
			}
			spec, err := prefabs.LoadSpec[prefabs.WeaponSpec](name)
			if err != nil {
				log.Warnw("reload weapon spec", "file", name, "error", err)
				return
			}
			entity.ApplyWeaponSpec(w, ecs.Entity(armed.Weapon), spec)
			log.Infow("reloaded weapon spec", "file", name, "entity", e)
		}
	})
}
