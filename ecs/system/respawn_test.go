package system

import (
	"errors"
	"testing"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
	"github.com/milk9111/myboss/prefabs"
)

func TestRespawnAfterDelay(t *testing.T) {
	w := ecs.NewWorld()
	rebuilds := 0
	respawn := NewRespawnSystem(0.5, func(w *ecs.World) error {
		rebuilds++
		entity.ClearWorld(w)
		_, err := entity.NewPlayerFromSpec(w, prefabs.PlayerSpec{}, 0, 0, 0)
		return err
	})
	w.AddSystem(respawn)

	w.Update(ecs.Frame{Real: tick, Scale: 1})
	if rebuilds != 0 {
		t.Fatalf("no rebuild before a player existed")
	}

	player := newTestPlayer(t, w)
	w.Update(ecs.Frame{Real: tick, Scale: 1})
	ecs.DestroyEntity(w, player)

	// the countdown runs in real time even when the world is slowed
	for i := 0; i < 25; i++ {
		w.Update(ecs.Frame{Real: tick, Scale: 0.1})
	}
	if rebuilds != 0 || !respawn.Pending() {
		t.Fatalf("respawn should still be pending, rebuilds=%d", rebuilds)
	}
	for i := 0; i < 10; i++ {
		w.Update(ecs.Frame{Real: tick, Scale: 0.1})
	}
	if rebuilds != 1 {
		t.Fatalf("expected one rebuild, got %d", rebuilds)
	}
	if respawn.Pending() {
		t.Fatalf("respawn should be done")
	}
}

func TestRespawnFailureIsRetried(t *testing.T) {
	w := ecs.NewWorld()
	attempts := 0
	respawn := NewRespawnSystem(0.5, func(w *ecs.World) error {
		attempts++
		entity.ClearWorld(w)
		if attempts == 1 {
			return errors.New("arena missing")
		}
		_, err := entity.NewPlayerFromSpec(w, prefabs.PlayerSpec{}, 0, 0, 0)
		return err
	})
	w.AddSystem(respawn)
	player := newTestPlayer(t, w)
	w.Update(ecs.Frame{Real: tick, Scale: 1})
	ecs.DestroyEntity(w, player)

	// first attempt after 0.5s fails, the second one 0.5s later succeeds
	for i := 0; i < 35; i++ {
		w.Update(ecs.Frame{Real: tick, Scale: 1})
	}
	if attempts != 1 {
		t.Fatalf("expected one attempt after the first delay, got %d", attempts)
	}
	if !respawn.Pending() {
		t.Fatalf("a failed rebuild should restart the countdown")
	}
	for i := 0; i < 35; i++ {
		w.Update(ecs.Frame{Real: tick, Scale: 1})
	}
	if attempts != 2 {
		t.Fatalf("expected a retry, got %d attempts", attempts)
	}
	if _, ok := ecs.First(w, component.PlayerComponent.Kind()); !ok {
		t.Fatalf("player should be back after the retry")
	}

	for i := 0; i < 120; i++ {
		w.Update(ecs.Frame{Real: tick, Scale: 1})
	}
	if attempts != 2 || respawn.Pending() {
		t.Fatalf("no more rebuilds once the player is back, attempts=%d", attempts)
	}
}
