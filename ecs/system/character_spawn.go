package system

import (
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
)

// CharacterSpawnSystem finishes setting up freshly built players: it spawns
// their weapon onto the gun location and binds the tagged post-process
// volume for the slow-time parameter.
type CharacterSpawnSystem struct {
	spawned map[ecs.Entity]bool
}

func NewCharacterSpawnSystem() *CharacterSpawnSystem {
	return &CharacterSpawnSystem{spawned: make(map[ecs.Entity]bool)}
}

func (s *CharacterSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for e := range s.spawned {
		if !w.IsAlive(e) {
			delete(s.spawned, e)
		}
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if s.spawned[e] {
			return
		}
		s.spawned[e] = true
		BeginPlay(w, e)
	})
}

// BeginPlay runs the one-time spawn setup for a player.
func BeginPlay(w *ecs.World, e ecs.Entity) {
	log := common.Log()

	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}

	if armed, ok := ecs.Get(w, e, component.ArmedComponent.Kind()); ok && armed.Weapon == 0 && player.WeaponSpec != "" {
		if weapon, err := entity.NewWeapon(w, player.WeaponSpec, e); err != nil {
			log.Errorw("spawn weapon", "entity", e, "spec", player.WeaponSpec, "error", err)
		} else {
			snapAttached(w, weapon)
		}
	}

	st, ok := ecs.Get(w, e, component.SlowTimeComponent.Kind())
	if !ok {
		return
	}
	volume, ok := FindByTag(w, component.TagPostProcess)
	if !ok {
		log.Warnw("no post process volume tagged", "tag", component.TagPostProcess)
		st.PostProcess = 0
		return
	}
	st.PostProcess = uint64(volume)
	setPostProcessParam(w, st)
}

func snapAttached(w *ecs.World, e ecs.Entity) {
	att, okA := ecs.Get(w, e, component.AttachmentComponent.Kind())
	transform, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	if !okA || !okT {
		return
	}
	parent := ecs.Entity(att.Parent)
	if !w.IsAlive(parent) {
		return
	}
	snapToParent(w, parent, att, transform)
}
