package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
	"github.com/milk9111/myboss/prefabs"
)

func TestInteractTwiceRestoresTarget(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := entity.NewDebugOverlay(w); err != nil {
		t.Fatal(err)
	}
	player := newTestPlayer(t, w)
	crate, err := entity.NewPropFromSpec(w, prefabs.PropSpec{Name: "crate"}, 40, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	body := mustGet(t, w, crate, component.PhysicsBodyComponent.Kind())
	holder := mustGet(t, w, player, component.HolderComponent.Kind())
	interact := NewInteractSystem(&scriptedTracer{hit: TraceHit{Entity: crate, Location: mgl64.Vec3{40, 0, 25}}, ok: true})

	if !interact.Interact(w, player) {
		t.Fatalf("first interact should pick up the crate")
	}
	if !holder.Holding || ecs.Entity(holder.Held) != crate {
		t.Fatalf("expected crate held, got holding=%v held=%v", holder.Holding, holder.Held)
	}
	if body.SimulatePhysics || body.EnableGravity || body.CollisionEnabled {
		t.Fatalf("held crate should have physics disabled: %+v", body)
	}
	if countEvents(w, ecs.EventPickedUp) != 1 {
		t.Fatalf("expected a picked up event")
	}
	overlay := mustGet(t, w, mustFirst(t, w, component.DebugOverlayComponent.Kind()), component.DebugOverlayComponent.Kind())
	if len(overlay.Messages) != 1 || overlay.Messages[0].Text != "picked up crate" {
		t.Fatalf("expected pickup message, got %+v", overlay.Messages)
	}

	if !interact.Interact(w, player) {
		t.Fatalf("second interact should release")
	}
	if holder.Holding || holder.Held != 0 {
		t.Fatalf("hold state should be cleared, got holding=%v held=%v", holder.Holding, holder.Held)
	}
	if !body.SimulatePhysics || !body.EnableGravity || !body.CollisionEnabled {
		t.Fatalf("released crate should have physics restored: %+v", body)
	}
}

func TestInteractRejectsNonInteractable(t *testing.T) {
	tests := []struct {
		name   string
		target func(t *testing.T, w *ecs.World) ecs.Entity
		ok     bool
	}{
		{
			name: "enemy",
			target: func(t *testing.T, w *ecs.World) ecs.Entity {
				e, err := entity.NewEnemyFromSpec(w, prefabs.EnemySpec{}, 40, 0, 0)
				if err != nil {
					t.Fatal(err)
				}
				return e
			},
			ok: true,
		},
		{
			name:   "floor",
			target: func(*testing.T, *ecs.World) ecs.Entity { return 0 },
			ok:     true,
		},
		{
			name:   "nothing",
			target: func(*testing.T, *ecs.World) ecs.Entity { return 0 },
			ok:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := newTestPlayer(t, w)
			target := tc.target(t, w)
			interact := NewInteractSystem(&scriptedTracer{hit: TraceHit{Entity: target, Floor: !target.Valid()}, ok: tc.ok})

			if interact.Interact(w, player) {
				t.Fatalf("interact should not pick anything up")
			}
			if mustGet(t, w, player, component.HolderComponent.Kind()).Holding {
				t.Fatalf("holder should stay empty")
			}
		})
	}
}

func TestHeldObjectFollowsView(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	crate, err := entity.NewPropFromSpec(w, prefabs.PropSpec{}, 40, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tracer := &scriptedTracer{hit: TraceHit{Entity: crate}, ok: true}
	interact := NewInteractSystem(tracer)
	interact.Interact(w, player)

	// nothing blocks the drag ray
	tracer.ok = false
	holder := mustGet(t, w, player, component.HolderComponent.Kind())
	transform := mustGet(t, w, crate, component.TransformComponent.Kind())
	origin, forward, _ := ViewPoint(w, player)
	target := origin.Add(forward.Mul(holder.Range * 0.5))

	start := transform.Position
	interact.dragHeld(w, player, holder)
	want := start.Add(target.Sub(start).Mul(holder.HoldLerp))
	if !nearVec(transform.Position, want, 1e-9) {
		t.Fatalf("expected held object at %v, got %v", want, transform.Position)
	}

	for i := 0; i < 60; i++ {
		interact.dragHeld(w, player, holder)
	}
	if !nearVec(transform.Position, target, 1e-3) {
		t.Fatalf("held object should converge on %v, got %v", target, transform.Position)
	}
}

func TestDestroyedHeldObjectClearsHolder(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	crate, err := entity.NewPropFromSpec(w, prefabs.PropSpec{}, 40, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	interact := NewInteractSystem(&scriptedTracer{hit: TraceHit{Entity: crate}, ok: true})
	interact.Interact(w, player)

	ecs.DestroyEntity(w, crate)
	holder := mustGet(t, w, player, component.HolderComponent.Kind())
	interact.dragHeld(w, player, holder)
	if holder.Holding || holder.Held != 0 {
		t.Fatalf("holder should drop a destroyed object")
	}
}

func mustFirst[T any](t *testing.T, w *ecs.World, kind component.ComponentKind[T]) ecs.Entity {
	t.Helper()
	e, ok := ecs.First(w, kind)
	if !ok {
		t.Fatalf("no entity found")
	}
	return e
}
