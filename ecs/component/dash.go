package component

import "github.com/go-gl/mathgl/mgl64"

type Dash struct {
	Force    float64
	Cooldown float64
	Duration float64

	// IdleThreshold is the per-axis horizontal speed at or below which the
	// character counts as stationary; IdleSpeed replaces the captured velocity
	// along the forward vector in that case.
	IdleThreshold float64
	IdleSpeed     float64

	Available      bool
	Dashing        bool
	VelocityBefore mgl64.Vec3
}

var DashComponent = NewComponent[Dash]()
