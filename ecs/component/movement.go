package component

import "github.com/go-gl/mathgl/mgl64"

// Movement is a walking character's locomotion state. Velocity is expressed
// in the character's own time, so custom dilation does not change it.
type Movement struct {
	Velocity     mgl64.Vec3
	PendingInput mgl64.Vec3

	MaxWalkSpeed        float64
	MaxAcceleration     float64
	BrakingDeceleration float64
	AirControl          float64
	JumpZVelocity       float64
	GravityScale        float64

	Grounded bool
}

var MovementComponent = NewComponent[Movement]()

// Landed is added by physics on the frame a falling character touches the
// floor and consumed by locomotion.
type Landed struct {
	ImpactSpeed float64
}

var LandedComponent = NewComponent[Landed]()
