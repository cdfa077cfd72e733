package entity

import (
	"strings"
	"testing"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

func count[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(ecs.Entity, *T) { n++ })
	return n
}

func countTag(w *ecs.World, tag string) int {
	n := 0
	ecs.ForEach(w, component.ActorComponent.Kind(), func(_ ecs.Entity, a *component.Actor) {
		for _, t := range a.Tags {
			if t == tag {
				n++
			}
		}
	})
	return n
}

func TestLoadArena(t *testing.T) {
	w := ecs.NewWorld()
	player, err := LoadArena(w, "arena.yaml")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if !w.IsAlive(player) {
		t.Fatalf("expected a live player")
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{name: "players", got: count(w, component.PlayerComponent.Kind()), want: 1},
		{name: "enemies", got: countTag(w, component.TagEnemy), want: 3},
		{name: "props", got: countTag(w, component.TagInteractable), want: 2},
		{name: "post process", got: countTag(w, component.TagPostProcess), want: 1},
		{name: "overlays", got: count(w, component.DebugOverlayComponent.Kind()), want: 1},
		{name: "scripts", got: count(w, component.ScriptComponent.Kind()), want: 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}

	body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok || body.Radius != 55 || body.HalfHeight != 96 {
		t.Fatalf("unexpected player capsule %+v", body)
	}
	transform, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if transform.Position.Z() != 96 {
		t.Fatalf("player should stand on the floor, z=%v", transform.Position.Z())
	}

	ClearWorld(w)
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("expected an empty world, got %d entities", n)
	}
}

func TestBuildPlacement(t *testing.T) {
	tests := []struct {
		name    string
		p       prefabs.PlacementSpec
		wantErr string
	}{
		{name: "enemy", p: prefabs.PlacementSpec{Kind: "enemy", Prefab: "enemy.yaml"}},
		{name: "kind is case insensitive", p: prefabs.PlacementSpec{Kind: " Prop ", Prefab: "crate.yaml"}},
		{name: "unknown kind", p: prefabs.PlacementSpec{Kind: "turret"}, wantErr: "unknown kind"},
		{name: "missing prefab", p: prefabs.PlacementSpec{Kind: "prop", Prefab: "nope.yaml"}, wantErr: "nope.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildPlacement(w, tt.p)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildPlacement: %v", err)
			}
			if !w.IsAlive(e) {
				t.Fatalf("expected a live entity")
			}
		})
	}
}

func TestNewWallRejectsEmptyBox(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewWall(w, prefabs.WallSpec{W: 0, H: 10}); err == nil {
		t.Fatalf("expected error for zero width")
	}
	e, err := NewWall(w, prefabs.WallSpec{X: 1, Y: 2, W: 3, H: 4})
	if err != nil {
		t.Fatalf("NewWall: %v", err)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !body.Static || body.Length != 3 || body.Width != 4 {
		t.Fatalf("unexpected wall body %+v", body)
	}
}

func TestApplyPlayerSpecClampsPools(t *testing.T) {
	w := ecs.NewWorld()
	player, err := NewPlayerFromSpec(w, prefabs.PlayerSpec{Health: prefabs.Int(100), Jumps: prefabs.Int(3)}, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	ApplyPlayerSpec(w, player, prefabs.PlayerSpec{Health: prefabs.Int(40), Jumps: prefabs.Int(1), SlowTime: prefabs.SlowTimeSpec{ManaTime: 2}})

	health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	jumps, _ := ecs.Get(w, player, component.JumpsComponent.Kind())
	st, _ := ecs.Get(w, player, component.SlowTimeComponent.Kind())
	if health.Current != 40 || health.Default != 40 {
		t.Fatalf("unexpected health %+v", health)
	}
	if jumps.Current != 1 || jumps.Default != 1 {
		t.Fatalf("unexpected jumps %+v", jumps)
	}
	if st.Mana != 2 || st.DefaultMana != 2 {
		t.Fatalf("unexpected mana %v/%v", st.Mana, st.DefaultMana)
	}
}

func TestNewPlayerMultiplier(t *testing.T) {
	tests := []struct {
		blend float64
		want  float64
	}{
		{blend: 0, want: 6},
		{blend: 1, want: 1},
		{blend: 3, want: 1},
	}

	for _, tt := range tests {
		w := ecs.NewWorld()
		player, err := NewPlayerFromSpec(w, prefabs.PlayerSpec{SlowTime: prefabs.SlowTimeSpec{InitialBlend: tt.blend}}, 0, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		td, _ := ecs.Get(w, player, component.TimeDilationComponent.Kind())
		if d := td.Custom - tt.want; d > 1e-9 || d < -1e-9 {
			t.Fatalf("blend %v: expected custom %v, got %v", tt.blend, tt.want, td.Custom)
		}
	}
}

func TestPlayerSpecZeroIsNotUnset(t *testing.T) {
	tests := []struct {
		name           string
		spec           prefabs.PlayerSpec
		wantErr        string
		wantJumps      int
		wantHealth     int
		wantAirControl float64
	}{
		{"unset_uses_defaults", prefabs.PlayerSpec{}, "", 2, 100, 0.05},
		{"zero_jumps_kept", prefabs.PlayerSpec{Jumps: prefabs.Int(0)}, "", 0, 100, 0.05},
		{"zero_air_control_kept", prefabs.PlayerSpec{Movement: prefabs.MovementSpec{AirControl: prefabs.Float(0)}}, "", 2, 100, 0},
		{"zero_health_rejected", prefabs.PlayerSpec{Health: prefabs.Int(0)}, "health must be positive", 0, 0, 0},
		{"negative_jumps_rejected", prefabs.PlayerSpec{Jumps: prefabs.Int(-1)}, "jumps must not be negative", 0, 0, 0},
		{"air_control_out_of_range", prefabs.PlayerSpec{Movement: prefabs.MovementSpec{AirControl: prefabs.Float(1.5)}}, "air_control", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player, err := NewPlayerFromSpec(w, tc.spec, 0, 0, 0)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				if len(ecs.Entities(w)) != 0 {
					t.Fatalf("a rejected spec should not leave entities behind")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPlayerFromSpec: %v", err)
			}
			jumps, _ := ecs.Get(w, player, component.JumpsComponent.Kind())
			health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
			move, _ := ecs.Get(w, player, component.MovementComponent.Kind())
			if jumps.Current != tc.wantJumps || jumps.Default != tc.wantJumps {
				t.Fatalf("expected %d jumps, got %+v", tc.wantJumps, jumps)
			}
			if health.Current != tc.wantHealth {
				t.Fatalf("expected health %d, got %+v", tc.wantHealth, health)
			}
			if move.AirControl != tc.wantAirControl {
				t.Fatalf("expected air control %v, got %v", tc.wantAirControl, move.AirControl)
			}
		})
	}
}

func TestEnemySpecRejectsZeroHealth(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewEnemyFromSpec(w, prefabs.EnemySpec{Health: prefabs.Int(0)}, 0, 0, 0); err == nil {
		t.Fatalf("expected an error for zero health")
	}
}
