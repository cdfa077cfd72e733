package prefabs

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	arena, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		t.Fatalf("LoadSpec arena: %v", err)
	}
	if len(arena.Walls) != 5 || len(arena.Spawns) != 5 {
		t.Fatalf("expected 5 walls and 5 spawns, got %d and %d", len(arena.Walls), len(arena.Spawns))
	}
	if arena.PostProcess.Shader != "slowtime.kage" {
		t.Fatalf("unexpected shader %q", arena.PostProcess.Shader)
	}
	if _, ok := arena.PostProcess.Params["Color Change Bool"]; !ok {
		t.Fatalf("expected the slow time param in the volume")
	}

	player, err := LoadSpec[PlayerSpec]("prefabs/player.yaml")
	if err != nil {
		t.Fatalf("LoadSpec player: %v", err)
	}
	if player.SlowTime.ManaTime != 5 || player.SlowTime.TransitionTime != 0.5 {
		t.Fatalf("unexpected slow time tuning %+v", player.SlowTime)
	}
	if player.GunOffset.Vec3().X() != 30 {
		t.Fatalf("unexpected gun offset %+v", player.GunOffset)
	}

	input, err := LoadSpec[InputSpec]("input.yaml")
	if err != nil {
		t.Fatalf("LoadSpec input: %v", err)
	}
	if got := input.Actions["Slow Time"]; len(got) != 1 || got[0] != "Q" {
		t.Fatalf("unexpected slow time binding %v", got)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected error for a missing spec")
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected error for a missing script")
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"chaser.tengo", "scripts/chaser.tengo"},
		{"scripts/chaser.tengo", "scripts/chaser.tengo"},
		{"prefabs/scripts/chaser.tengo", "scripts/chaser.tengo"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanScriptPath(tt.in); got != tt.want {
			t.Fatalf("cleanScriptPath(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}

	if _, err := LoadScript("chaser.tengo"); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
}

func TestRelativeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/home/dev/game/prefabs/player.yaml", "player.yaml"},
		{"prefabs/scripts/chaser.tengo", "scripts/chaser.tengo"},
		{"elsewhere/rifle.yaml", "rifle.yaml"},
	}

	for _, tt := range tests {
		if got := relativeName(tt.in); got != tt.want {
			t.Fatalf("relativeName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestWatchedFileKinds(t *testing.T) {
	if !isSpecFile("player.YAML") || !isSpecFile("a.yml") || isSpecFile("a.json") {
		t.Fatalf("unexpected spec file classification")
	}
	if !isScriptFile("chaser.tengo") || isScriptFile("chaser.go") {
		t.Fatalf("unexpected script file classification")
	}
}

func TestOptionalFieldsKeepExplicitZero(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantJumps *int
		wantErr   bool
	}{
		{"absent", "name: p\n", nil, false},
		{"explicit_zero", "jumps: 0\n", Int(0), false},
		{"explicit_three", "jumps: 3\n", Int(3), false},
		{"negative", "jumps: -2\n", Int(-2), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var spec PlayerSpec
			if err := yaml.Unmarshal([]byte(tc.src), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if (spec.Jumps == nil) != (tc.wantJumps == nil) {
				t.Fatalf("jumps set = %v, want %v", spec.Jumps != nil, tc.wantJumps != nil)
			}
			if spec.Jumps != nil && *spec.Jumps != *tc.wantJumps {
				t.Fatalf("jumps = %d, want %d", *spec.Jumps, *tc.wantJumps)
			}
			if err := spec.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("Validate error = %v, want error %v", err, tc.wantErr)
			}
		})
	}
}
