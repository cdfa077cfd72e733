package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TicksPerSecond is the fixed update rate of the frame driver.
	TicksPerSecond = 60

	// Gravity is world gravity along Z in units/s^2.
	Gravity = -980.0
)
