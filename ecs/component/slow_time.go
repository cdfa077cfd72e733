package component

// ShaderState is the slow-time transition mode.
type ShaderState int

const (
	ShaderIdle ShaderState = iota
	ShaderRampingIn
	ShaderRampingOut
)

func (s ShaderState) String() string {
	switch s {
	case ShaderRampingIn:
		return "ramping_in"
	case ShaderRampingOut:
		return "ramping_out"
	default:
		return "idle"
	}
}

// MovementTuning is applied to the owner's Movement when slow time engages or
// disengages.
type MovementTuning struct {
	GravityScale float64
	MaxWalkSpeed float64
}

// SlowTime holds the mana-time pool and the shader blend that drives both the
// post-process parameter and the time-dilation multiplier.
type SlowTime struct {
	Mana        float64
	DefaultMana float64
	ManaEpsilon float64

	TransitionTime float64
	Percent        float64
	State          ShaderState
	Multiplier     float64

	// Requested is set by input and consumed by the slow-time system.
	Requested bool

	Engaged    MovementTuning
	Disengaged MovementTuning

	// PostProcess is the bound post-process volume (ecs.Entity), zero when
	// none was found at spawn.
	PostProcess uint64
	ParamName   string
}

var SlowTimeComponent = NewComponent[SlowTime]()
