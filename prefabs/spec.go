package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Int and Float build the optional fields of a spec, where nil means unset
// and zero is a real value.
func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }

// Validate rejects values a player cannot be built with.
func (s PlayerSpec) Validate() error {
	if s.Health != nil && *s.Health <= 0 {
		return fmt.Errorf("player %q: health must be positive, got %d", s.Name, *s.Health)
	}
	if s.Jumps != nil && *s.Jumps < 0 {
		return fmt.Errorf("player %q: jumps must not be negative, got %d", s.Name, *s.Jumps)
	}
	if s.Movement.AirControl != nil && (*s.Movement.AirControl < 0 || *s.Movement.AirControl > 1) {
		return fmt.Errorf("player %q: air_control must be within [0, 1], got %v", s.Name, *s.Movement.AirControl)
	}
	return nil
}

func (s EnemySpec) Validate() error {
	if s.Health != nil && *s.Health <= 0 {
		return fmt.Errorf("enemy %q: health must be positive, got %d", s.Name, *s.Health)
	}
	return nil
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v VecSpec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

type CapsuleSpec struct {
	Radius     float64 `yaml:"radius"`
	HalfHeight float64 `yaml:"half_height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
}

type CameraSpec struct {
	OffsetZ         float64 `yaml:"offset_z"`
	BaseTurnRate    float64 `yaml:"base_turn_rate"`
	BaseLookUpRate  float64 `yaml:"base_look_up_rate"`
	YawInputScale   float64 `yaml:"yaw_input_scale"`
	PitchInputScale float64 `yaml:"pitch_input_scale"`
}

type MovementSpec struct {
	MaxWalkSpeed        float64  `yaml:"max_walk_speed"`
	MaxAcceleration     float64  `yaml:"max_acceleration"`
	BrakingDeceleration float64  `yaml:"braking_deceleration"`
	AirControl          *float64 `yaml:"air_control"`
	JumpZVelocity       float64  `yaml:"jump_z_velocity"`
	GravityScale        float64  `yaml:"gravity_scale"`
}

type DashSpec struct {
	Force         float64 `yaml:"force"`
	Cooldown      float64 `yaml:"cooldown"`
	Duration      float64 `yaml:"duration"`
	IdleThreshold float64 `yaml:"idle_threshold"`
	IdleSpeed     float64 `yaml:"idle_speed"`
}

type MovementTuningSpec struct {
	GravityScale float64 `yaml:"gravity_scale"`
	MaxWalkSpeed float64 `yaml:"max_walk_speed"`
}

type SlowTimeSpec struct {
	ManaTime       float64            `yaml:"mana_time"`
	ManaEpsilon    float64            `yaml:"mana_epsilon"`
	TransitionTime float64            `yaml:"transition_time"`
	InitialBlend   float64            `yaml:"initial_blend"`
	ParamName      string             `yaml:"param_name"`
	Engaged        MovementTuningSpec `yaml:"engaged"`
	Disengaged     MovementTuningSpec `yaml:"disengaged"`
}

type InteractionSpec struct {
	Range    float64 `yaml:"range"`
	HoldLerp float64 `yaml:"hold_lerp"`
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Health      *int            `yaml:"health"`
	Jumps       *int            `yaml:"jumps"`
	Capsule     CapsuleSpec     `yaml:"capsule"`
	Camera      CameraSpec      `yaml:"camera"`
	Movement    MovementSpec    `yaml:"movement"`
	Dash        DashSpec        `yaml:"dash"`
	SlowTime    SlowTimeSpec    `yaml:"slow_time"`
	Interaction InteractionSpec `yaml:"interaction"`
	Weapon      string          `yaml:"weapon"`
	GunOffset   VecSpec         `yaml:"gun_offset"`
}

type WeaponSpec struct {
	Name                string  `yaml:"name"`
	Damage              int     `yaml:"damage"`
	Range               float64 `yaml:"range"`
	MuzzleOffset        VecSpec `yaml:"muzzle_offset"`
	MuzzleFlashLifetime float64 `yaml:"muzzle_flash_lifetime"`
	FlashRadius         float64 `yaml:"flash_radius"`
	ManaRefund          float64 `yaml:"mana_refund"`
}

type EnemySpec struct {
	Name           string      `yaml:"name"`
	Health         *int        `yaml:"health"`
	Capsule        CapsuleSpec `yaml:"capsule"`
	Speed          float64     `yaml:"speed"`
	AttackDamage   int         `yaml:"attack_damage"`
	AttackRange    float64     `yaml:"attack_range"`
	AttackCooldown float64     `yaml:"attack_cooldown"`
	Script         string      `yaml:"script"`
}

type PropSpec struct {
	Name    string      `yaml:"name"`
	Capsule CapsuleSpec `yaml:"capsule"`
}

type PlacementSpec struct {
	Prefab string  `yaml:"prefab"`
	Kind   string  `yaml:"kind"`
	At     VecSpec `yaml:"at"`
	Yaw    float64 `yaml:"yaw"`
}

type WallSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PostProcessSpec struct {
	Shader string             `yaml:"shader"`
	Params map[string]float64 `yaml:"params"`
}

type ArenaSpec struct {
	Name         string          `yaml:"name"`
	Player       PlacementSpec   `yaml:"player"`
	PostProcess  PostProcessSpec `yaml:"post_process"`
	Walls        []WallSpec      `yaml:"walls"`
	Spawns       []PlacementSpec `yaml:"spawns"`
	RespawnDelay float64         `yaml:"respawn_delay"`
}

// InputSpec maps action and axis names to device bindings. Key names are the
// ebiten key names ("W", "Space", "ShiftLeft"); "Mouse0".."Mouse2" name mouse
// buttons.
type InputSpec struct {
	Actions          map[string][]string         `yaml:"actions"`
	Axes             map[string][]AxisBindingSpec `yaml:"axes"`
	MouseSensitivity float64                      `yaml:"mouse_sensitivity"`
	StickDeadzone    float64                      `yaml:"stick_deadzone"`
}

type AxisBindingSpec struct {
	Key   string  `yaml:"key"`
	Scale float64 `yaml:"scale"`
}
