package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec3 moves a toward b by fraction t.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Forward returns the unit view vector for yaw and pitch in degrees, X forward
// and Z up.
func Forward(yaw, pitch float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	p := mgl64.DegToRad(pitch)
	return mgl64.Vec3{math.Cos(p) * math.Cos(y), math.Cos(p) * math.Sin(y), math.Sin(p)}
}

// Right returns the horizontal unit vector to the right of yaw.
func Right(yaw float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	return mgl64.Vec3{-math.Sin(y), math.Cos(y), 0}
}

// RotateYaw rotates v about Z by yaw degrees.
func RotateYaw(v mgl64.Vec3, yaw float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	s, c := math.Sin(y), math.Cos(y)
	return mgl64.Vec3{v[0]*c - v[1]*s, v[0]*s + v[1]*c, v[2]}
}

// NormalizeYaw wraps degrees into (-180, 180].
func NormalizeYaw(yaw float64) float64 {
	yaw = math.Mod(yaw, 360)
	if yaw > 180 {
		yaw -= 360
	} else if yaw <= -180 {
		yaw += 360
	}
	return yaw
}

// RotatePitch tilts v about the Y axis so that +X follows a view pitched up by
// pitch degrees.
func RotatePitch(v mgl64.Vec3, pitch float64) mgl64.Vec3 {
	p := mgl64.DegToRad(pitch)
	s, c := math.Sin(p), math.Cos(p)
	return mgl64.Vec3{v[0]*c - v[2]*s, v[1], v[0]*s + v[2]*c}
}
