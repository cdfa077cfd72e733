package component

import "github.com/go-gl/mathgl/mgl64"

// Input stores per-frame action and axis state for an entity. Axis values are
// in [-1, 1] for the move axes; look axes are raw deltas or rates.
type Input struct {
	MoveForward float64
	MoveRight   float64
	Turn        float64
	TurnRate    float64
	LookUp      float64
	LookUpRate  float64

	JumpPressed     bool
	JumpReleased    bool
	FirePressed     bool
	InteractPressed bool
	SlowTimePressed bool
	DashPressed     bool
	ResetVRPressed  bool

	Touches []TouchEvent
}

var InputComponent = NewComponent[Input]()

type TouchPhase int

const (
	TouchBegin TouchPhase = iota
	TouchMove
	TouchEnd
)

// TouchEvent is one touch-screen edge reported this frame.
type TouchEvent struct {
	Phase    TouchPhase
	Finger   int
	Location mgl64.Vec2
}

// Touch remembers the last tracked finger.
type Touch struct {
	Pressed  bool
	Finger   int
	Location mgl64.Vec2
	Moved    bool
}

var TouchComponent = NewComponent[Touch]()
