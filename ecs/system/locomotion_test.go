package system

import (
	"testing"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

func TestJumpConsumesCharges(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w)
	jumps := mustGet(t, w, player, component.JumpsComponent.Kind())
	move := mustGet(t, w, player, component.MovementComponent.Kind())

	for i := 0; i < jumps.Default; i++ {
		move.Velocity[2] = 0
		if !Jump(w, player) {
			t.Fatalf("jump %d should succeed", i+1)
		}
		if move.Velocity.Z() != move.JumpZVelocity {
			t.Fatalf("jump %d: expected vz %v, got %v", i+1, move.JumpZVelocity, move.Velocity.Z())
		}
	}
	if jumps.Current != 0 {
		t.Fatalf("expected 0 jumps left, got %d", jumps.Current)
	}

	move.Velocity[2] = -12
	if Jump(w, player) {
		t.Fatalf("jump with no charges should fail")
	}
	if move.Velocity.Z() != -12 {
		t.Fatalf("failed jump changed velocity to %v", move.Velocity.Z())
	}
	if jumps.Current != 0 {
		t.Fatalf("failed jump changed counter to %d", jumps.Current)
	}
}

func TestLandingResetsJumps(t *testing.T) {
	tests := []struct {
		name    string
		current int
	}{
		{"empty", 0},
		{"partial", 1},
		{"full", 2},
		{"over_default", 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.AddSystem(NewLocomotionSystem())
			player := newTestPlayer(t, w)
			jumps := mustGet(t, w, player, component.JumpsComponent.Kind())
			jumps.Current = tc.current

			if err := ecs.Add(w, player, component.LandedComponent.Kind(), &component.Landed{ImpactSpeed: 300}); err != nil {
				t.Fatal(err)
			}
			w.Update(ecs.Frame{Real: tick, Scale: 1})

			if jumps.Current != jumps.Default {
				t.Fatalf("expected %d jumps after landing, got %d", jumps.Default, jumps.Current)
			}
			if ecs.Has(w, player, component.LandedComponent.Kind()) {
				t.Fatalf("landed marker should be consumed")
			}
		})
	}
}

func TestJumpInputThroughSystem(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewLocomotionSystem())
	player := newTestPlayer(t, w)
	input := mustGet(t, w, player, component.InputComponent.Kind())
	jumps := mustGet(t, w, player, component.JumpsComponent.Kind())

	input.JumpPressed = true
	w.Update(ecs.Frame{Real: tick, Scale: 1})
	if jumps.Current != jumps.Default-1 {
		t.Fatalf("expected one charge used, have %d", jumps.Current)
	}

	input.JumpPressed = false
	input.JumpReleased = true
	w.Update(ecs.Frame{Real: tick, Scale: 1})
	if jumps.Current != jumps.Default-1 {
		t.Fatalf("releasing jump should not change the counter, have %d", jumps.Current)
	}
}

func TestMoveInputFollowsYaw(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewLocomotionSystem())
	player := newTestPlayer(t, w)
	mustGet(t, w, player, component.TransformComponent.Kind()).Yaw = 90
	input := mustGet(t, w, player, component.InputComponent.Kind())
	input.MoveForward = 1

	w.Update(ecs.Frame{Real: tick, Scale: 1})

	move := mustGet(t, w, player, component.MovementComponent.Kind())
	if move.PendingInput.Y() < 0.999 || move.PendingInput.X() > 1e-9 || move.PendingInput.X() < -1e-9 {
		t.Fatalf("expected forward input along +Y at yaw 90, got %v", move.PendingInput)
	}
}
