package component

import "github.com/go-gl/mathgl/mgl64"

type Weapon struct {
	Damage int
	Range  float64

	// MuzzleOffset is the muzzle socket relative to the weapon origin.
	MuzzleOffset        mgl64.Vec3
	MuzzleFlashLifetime float64
	FlashRadius         float64

	// ManaRefund is returned to the owner's pool per enemy hit while slow
	// time is fully engaged.
	ManaRefund float64
}

var WeaponComponent = NewComponent[Weapon]()

// Armed links a character to the weapon entity it spawned.
type Armed struct {
	Weapon uint64
	// GunOffset places the weapon relative to the camera.
	GunOffset mgl64.Vec3
}

var ArmedComponent = NewComponent[Armed]()

// MuzzleFlash marks a live muzzle flash effect.
type MuzzleFlash struct {
	Radius float64
}

var MuzzleFlashComponent = NewComponent[MuzzleFlash]()
