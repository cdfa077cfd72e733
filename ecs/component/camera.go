package component

import "github.com/go-gl/mathgl/mgl64"

// Camera is a first-person view attached to its entity. The view yaw is the
// owner's Transform.Yaw; Pitch is the control pitch in degrees.
type Camera struct {
	Offset          mgl64.Vec3
	Pitch           float64
	BaseTurnRate    float64
	BaseLookUpRate  float64
	YawInputScale   float64
	PitchInputScale float64
}

var CameraComponent = NewComponent[Camera]()
