package ecs

import "github.com/milk9111/myboss/ecs/component"

// Frame is the clock for one update. Real is the wall-clock delta in seconds;
// Scale is the global time dilation chosen by the frame driver.
type Frame struct {
	Real  float64
	Scale float64
}

// World returns the dilated delta that world-time systems (physics, timers,
// AI) advance by.
func (f Frame) World() float64 {
	return f.Real * f.Scale
}

// DeltaFor returns the delta seconds e experiences this frame: the world delta
// multiplied by the entity's custom dilation, when it has one.
func DeltaFor(w *World, e Entity) float64 {
	dt := w.Frame().World()
	if td, ok := Get(w, e, component.TimeDilationComponent.Kind()); ok && td.Custom > 0 {
		dt *= td.Custom
	}
	return dt
}

// CustomDilation returns e's custom dilation, 1 when unset.
func CustomDilation(w *World, e Entity) float64 {
	if td, ok := Get(w, e, component.TimeDilationComponent.Kind()); ok && td.Custom > 0 {
		return td.Custom
	}
	return 1
}
