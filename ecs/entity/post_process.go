package entity

import (
	"fmt"
	"maps"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

// NewPostProcessVolume builds the full-screen volume the slow-time ability
// binds to by tag.
func NewPostProcessVolume(w *ecs.World, spec prefabs.PostProcessSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{
		Name: "post_process",
		Tags: []string{component.TagPostProcess},
	}); err != nil {
		return 0, fmt.Errorf("post process: add actor: %w", err)
	}

	params := make(map[string]float64, len(spec.Params))
	maps.Copy(params, spec.Params)
	if err := ecs.Add(w, entity, component.PostProcessComponent.Kind(), &component.PostProcess{Shader: spec.Shader, Params: params}); err != nil {
		return 0, fmt.Errorf("post process: add volume: %w", err)
	}
	return entity, nil
}

func NewDebugOverlay(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.DebugOverlayComponent.Kind(), &component.DebugOverlay{}); err != nil {
		return 0, fmt.Errorf("debug overlay: add overlay: %w", err)
	}
	return entity, nil
}
