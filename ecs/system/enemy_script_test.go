package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
	"github.com/milk9111/myboss/prefabs"
)

func newTestEnemy(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemyFromSpec(w, prefabs.EnemySpec{
		Speed:          500,
		AttackDamage:   10,
		AttackRange:    140,
		AttackCooldown: 1,
	}, x, y, 0)
	if err != nil {
		t.Fatalf("NewEnemyFromSpec: %v", err)
	}
	return e
}

func TestChaserMovesTowardPlayer(t *testing.T) {
	w := ecs.NewWorld()
	newTestPlayer(t, w)
	enemy := newTestEnemy(t, w, 1000, 0)

	NewEnemySystem().Update(w)

	move := mustGet(t, w, enemy, component.MovementComponent.Kind())
	if !nearVec(move.PendingInput, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Fatalf("expected input toward the player, got %v", move.PendingInput)
	}
	if yaw := mustGet(t, w, enemy, component.TransformComponent.Kind()).Yaw; yaw != 180 {
		t.Fatalf("expected enemy to face the player, got yaw %v", yaw)
	}
}

func TestChaserAttacksOnCooldown(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	enemy := newTestEnemy(t, w, 100, 0)
	enemies := NewEnemySystem()
	health := mustGet(t, w, player, component.HealthComponent.Kind())

	enemies.Update(w)
	if health.Current != 90 {
		t.Fatalf("expected first attack to land, health %d", health.Current)
	}
	if move := mustGet(t, w, enemy, component.MovementComponent.Kind()); move.PendingInput != (mgl64.Vec3{}) {
		t.Fatalf("enemy in range should stand still, got %v", move.PendingInput)
	}

	enemies.Update(w)
	if health.Current != 90 {
		t.Fatalf("attack should be on cooldown, health %d", health.Current)
	}

	w.Timers().Advance(w, 1.1)
	enemies.Update(w)
	if health.Current != 80 {
		t.Fatalf("expected second attack after cooldown, health %d", health.Current)
	}
}

func TestEnemyWithoutTargetIdles(t *testing.T) {
	w := ecs.NewWorld()
	enemy := newTestEnemy(t, w, 100, 0)

	NewEnemySystem().Update(w)

	if move := mustGet(t, w, enemy, component.MovementComponent.Kind()); move.PendingInput != (mgl64.Vec3{}) {
		t.Fatalf("expected no input without a player, got %v", move.PendingInput)
	}
}

func TestBrokenScriptIsSkipped(t *testing.T) {
	w := ecs.NewWorld()
	newTestPlayer(t, w)
	enemy := newTestEnemy(t, w, 1000, 0)
	mustGet(t, w, enemy, component.ScriptComponent.Kind()).Path = "missing.tengo"

	enemies := NewEnemySystem()
	enemies.Update(w)
	enemies.Update(w)

	rt := enemies.scriptCache[enemy]
	if rt == nil || !rt.failed {
		t.Fatalf("expected the failed script to be cached")
	}
	if move := mustGet(t, w, enemy, component.MovementComponent.Kind()); move.PendingInput != (mgl64.Vec3{}) {
		t.Fatalf("broken script should not move the enemy, got %v", move.PendingInput)
	}
}
