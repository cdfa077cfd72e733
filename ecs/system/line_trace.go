package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// TraceHit is the closest blocking hit along a line trace. Entity is zero when
// the floor was hit.
type TraceHit struct {
	Entity   ecs.Entity
	Location mgl64.Vec3
	Normal   mgl64.Vec3
	Alpha    float64
	Floor    bool
}

// Tracer answers visibility line traces.
type Tracer interface {
	Trace(w *ecs.World, start, end mgl64.Vec3, ignore ecs.Entity) (TraceHit, bool)
}

// Trace casts a segment from start to end and returns the closest blocking
// hit. Shapes are found on the XY plane; a candidate counts only when the
// segment's height at that point lies inside the body's vertical extent.
// ignore and everything sharing its trace group are skipped.
func (ps *PhysicsSystem) Trace(w *ecs.World, start, end mgl64.Vec3, ignore ecs.Entity) (TraceHit, bool) {
	if ps == nil || w == nil {
		return TraceHit{}, false
	}

	best, found := floorHit(start, end)
	if !found {
		best.Alpha = math.Inf(1)
	}

	a := cp.Vector{X: start.X(), Y: start.Y()}
	b := cp.Vector{X: end.X(), Y: end.Y()}
	if a.Equal(b) {
		return best, found
	}

	filter := filterAll
	if ignore.Valid() {
		if ti, ok := ecs.Get(w, ignore, component.TraceIgnoreComponent.Kind()); ok {
			filter.Group = ti.Group
		}
	}

	ps.space.SegmentQuery(a, b, 0, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		e, ok := ps.shapeOwners[shape]
		if !ok || e == ignore || alpha >= best.Alpha {
			return
		}
		if body, okB := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); okB && !body.CollisionEnabled && !body.Static {
			return
		}
		z := start.Z() + (end.Z()-start.Z())*alpha
		lo, hi, ok := verticalExtent(w, e)
		if !ok || z < lo || z > hi {
			return
		}
		best = TraceHit{
			Entity:   e,
			Location: mgl64.Vec3{point.X, point.Y, z},
			Normal:   mgl64.Vec3{normal.X, normal.Y, 0},
			Alpha:    alpha,
		}
		found = true
	}, nil)

	return best, found
}

func floorHit(start, end mgl64.Vec3) (TraceHit, bool) {
	if start.Z() < floorZ || end.Z() >= floorZ {
		return TraceHit{}, false
	}
	alpha := (start.Z() - floorZ) / (start.Z() - end.Z())
	loc := start.Add(end.Sub(start).Mul(alpha))
	loc[2] = floorZ
	return TraceHit{
		Location: loc,
		Normal:   mgl64.Vec3{0, 0, 1},
		Alpha:    alpha,
		Floor:    true,
	}, true
}

// traceEnd returns the point a trace of length from origin along dir reaches
// when it hits nothing.
func traceEnd(origin, dir mgl64.Vec3, length float64) mgl64.Vec3 {
	return origin.Add(dir.Mul(length))
}
