package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is an actor's world placement. X is forward, Y right, Z up; Yaw
// rotates about Z in degrees.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[Transform]()
