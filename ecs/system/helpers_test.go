package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
	"github.com/milk9111/myboss/prefabs"
)

const tick = 1.0 / 60

func newTestPlayer(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayerFromSpec(w, prefabs.PlayerSpec{}, 0, 0, 0)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}
	return e
}

func newArmedTestPlayer(t *testing.T, w *ecs.World, spec prefabs.WeaponSpec) (ecs.Entity, ecs.Entity) {
	t.Helper()
	player := newTestPlayer(t, w)
	weapon, err := entity.NewWeaponFromSpec(w, spec, player)
	if err != nil {
		t.Fatalf("build weapon: %v", err)
	}
	snapAttached(w, weapon)
	return player, weapon
}

func setDilation(t *testing.T, w *ecs.World, e ecs.Entity, custom float64) {
	t.Helper()
	td, ok := ecs.Get(w, e, component.TimeDilationComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no time dilation", e)
	}
	td.Custom = custom
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v is missing a component", e)
	}
	return v
}

func countEvents(w *ecs.World, kind ecs.EventKind) int {
	n := 0
	for _, evt := range w.Events().Items() {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

func nearVec(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a.X()-b.X()) <= eps && math.Abs(a.Y()-b.Y()) <= eps && math.Abs(a.Z()-b.Z()) <= eps
}

// scriptedTracer answers every trace with a fixed result and records calls.
type scriptedTracer struct {
	hit   TraceHit
	ok    bool
	calls int
	last  [2]mgl64.Vec3
}

func (s *scriptedTracer) Trace(_ *ecs.World, start, end mgl64.Vec3, _ ecs.Entity) (TraceHit, bool) {
	s.calls++
	s.last = [2]mgl64.Vec3{start, end}
	return s.hit, s.ok
}

type systemFunc func(w *ecs.World)

func (f systemFunc) Update(w *ecs.World) { f(w) }
