package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data for the horizontal plane plus the
// vertical extent and state integrated outside the space.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	// Radius > 0 makes a vertical cylinder; otherwise Width x Length is an
	// axis-aligned box on the XY plane.
	Radius     float64
	Width      float64
	Length     float64
	HalfHeight float64
	Mass       float64
	Friction   float64
	Static     bool

	SimulatePhysics  bool
	EnableGravity    bool
	CollisionEnabled bool

	// VelocityZ is used by bodies without a Movement component.
	VelocityZ float64
	Grounded  bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// TraceIgnore excludes its entity from line traces issued by itself.
type TraceIgnore struct {
	Group uint
}

var TraceIgnoreComponent = NewComponent[TraceIgnore]()
