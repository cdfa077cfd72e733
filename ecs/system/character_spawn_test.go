package system

import (
	"testing"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
	"github.com/milk9111/myboss/prefabs"
)

func TestCharacterSpawnArmsPlayerAndBindsVolume(t *testing.T) {
	w := ecs.NewWorld()
	volume, err := entity.NewPostProcessVolume(w, prefabs.PostProcessSpec{
		Shader: "slowtime.kage",
		Params: map[string]float64{"Color Change Bool": 7},
	})
	if err != nil {
		t.Fatal(err)
	}
	player := newTestPlayer(t, w)
	spawn := NewCharacterSpawnSystem()

	spawn.Update(w)
	spawn.Update(w)

	if n := countKind(w, component.WeaponComponent.Kind()); n != 1 {
		t.Fatalf("expected exactly one weapon, got %d", n)
	}
	armed := mustGet(t, w, player, component.ArmedComponent.Kind())
	wp := mustGet(t, w, ecs.Entity(armed.Weapon), component.WeaponComponent.Kind())
	if wp.Damage != 25 {
		t.Fatalf("expected rifle damage 25, got %d", wp.Damage)
	}

	st := mustGet(t, w, player, component.SlowTimeComponent.Kind())
	if ecs.Entity(st.PostProcess) != volume {
		t.Fatalf("expected volume %v bound, got %v", volume, ecs.Entity(st.PostProcess))
	}
	pp := mustGet(t, w, volume, component.PostProcessComponent.Kind())
	if pp.Params["Color Change Bool"] != st.Percent {
		t.Fatalf("expected param to match blend %v, got %v", st.Percent, pp.Params["Color Change Bool"])
	}
}

func TestCharacterSpawnWithoutVolume(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)

	NewCharacterSpawnSystem().Update(w)

	if st := mustGet(t, w, player, component.SlowTimeComponent.Kind()); st.PostProcess != 0 {
		t.Fatalf("expected no volume bound, got %v", st.PostProcess)
	}
}
