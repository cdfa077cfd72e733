package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/prefabs"
)

type placementBuildFn func(w *ecs.World, p prefabs.PlacementSpec) (ecs.Entity, error)

var placementRegistry = map[string]placementBuildFn{
	"enemy": func(w *ecs.World, p prefabs.PlacementSpec) (ecs.Entity, error) {
		return NewEnemy(w, p.Prefab, p.At.X, p.At.Y, p.Yaw)
	},
	"prop": func(w *ecs.World, p prefabs.PlacementSpec) (ecs.Entity, error) {
		return NewProp(w, p.Prefab, p.At.X, p.At.Y, p.Yaw)
	},
}

// BuildPlacement spawns one arena placement through the builder registered
// for its kind.
func BuildPlacement(w *ecs.World, p prefabs.PlacementSpec) (ecs.Entity, error) {
	kind := strings.ToLower(strings.TrimSpace(p.Kind))
	build, ok := placementRegistry[kind]
	if !ok {
		return 0, fmt.Errorf("placement: unknown kind %q (known: %s)", p.Kind, strings.Join(placementKinds(), ", "))
	}
	return build(w, p)
}

func placementKinds() []string {
	kinds := make([]string, 0, len(placementRegistry))
	for k := range placementRegistry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// LoadArena reads an arena spec and builds it into w.
func LoadArena(w *ecs.World, specFile string) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.ArenaSpec](specFile)
	if err != nil {
		return 0, fmt.Errorf("arena: load spec: %w", err)
	}
	return BuildArena(w, spec)
}

// BuildArena creates the post-process volume, the debug overlay, the walls,
// the player and every placement. It returns the player.
func BuildArena(w *ecs.World, spec prefabs.ArenaSpec) (ecs.Entity, error) {
	if _, err := NewPostProcessVolume(w, spec.PostProcess); err != nil {
		return 0, fmt.Errorf("arena %s: %w", spec.Name, err)
	}
	if _, err := NewDebugOverlay(w); err != nil {
		return 0, fmt.Errorf("arena %s: %w", spec.Name, err)
	}
	for i, wall := range spec.Walls {
		if _, err := NewWall(w, wall); err != nil {
			return 0, fmt.Errorf("arena %s: wall %d: %w", spec.Name, i, err)
		}
	}

	player, err := NewPlayer(w, spec.Player.At.X, spec.Player.At.Y, spec.Player.Yaw)
	if err != nil {
		return 0, fmt.Errorf("arena %s: %w", spec.Name, err)
	}

	for i, p := range spec.Spawns {
		if _, err := BuildPlacement(w, p); err != nil {
			return 0, fmt.Errorf("arena %s: spawn %d: %w", spec.Name, i, err)
		}
	}
	return player, nil
}

// ClearWorld destroys every entity in w.
func ClearWorld(w *ecs.World) {
	for _, e := range ecs.Entities(w) {
		ecs.DestroyEntity(w, e)
	}
}
