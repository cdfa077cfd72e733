package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

const PlayerSpecFile = "player.yaml"

// NewPlayer loads player.yaml and builds the player standing on the floor at
// (x, y) facing yaw.
func NewPlayer(w *ecs.World, x, y, yaw float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](PlayerSpecFile)
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, x, y, yaw)
}

func NewPlayerFromSpec(w *ecs.World, spec prefabs.PlayerSpec, x, y, yaw float64) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	spec = withPlayerDefaults(spec)
	entity := ecs.CreateEntity(w)

	name := spec.Name
	if name == "" {
		name = "player"
	}
	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{Name: name, Tags: []string{component.TagPlayer}}); err != nil {
		return 0, fmt.Errorf("player: add actor: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{Spec: PlayerSpecFile, WeaponSpec: spec.Weapon}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{x, y, spec.Capsule.HalfHeight},
		Yaw:      common.NormalizeYaw(yaw),
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, entity, component.TouchComponent.Kind(), &component.Touch{}); err != nil {
		return 0, fmt.Errorf("player: add touch: %w", err)
	}
	if err := ecs.Add(w, entity, component.CameraComponent.Kind(), &component.Camera{}); err != nil {
		return 0, fmt.Errorf("player: add camera: %w", err)
	}
	if err := ecs.Add(w, entity, component.MovementComponent.Kind(), &component.Movement{Grounded: true}); err != nil {
		return 0, fmt.Errorf("player: add movement: %w", err)
	}
	if err := ecs.Add(w, entity, component.JumpsComponent.Kind(), &component.Jumps{Current: *spec.Jumps}); err != nil {
		return 0, fmt.Errorf("player: add jumps: %w", err)
	}
	if err := ecs.Add(w, entity, component.DashComponent.Kind(), &component.Dash{Available: true}); err != nil {
		return 0, fmt.Errorf("player: add dash: %w", err)
	}

	blend := common.Clamp(spec.SlowTime.InitialBlend, 0, 1)
	if err := ecs.Add(w, entity, component.SlowTimeComponent.Kind(), &component.SlowTime{
		Mana:       spec.SlowTime.ManaTime,
		Percent:    blend,
		Multiplier: multiplier(blend),
	}); err != nil {
		return 0, fmt.Errorf("player: add slow time: %w", err)
	}
	if err := ecs.Add(w, entity, component.TimeDilationComponent.Kind(), &component.TimeDilation{Custom: multiplier(blend)}); err != nil {
		return 0, fmt.Errorf("player: add time dilation: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: *spec.Health}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, entity, component.HolderComponent.Kind(), &component.Holder{}); err != nil {
		return 0, fmt.Errorf("player: add holder: %w", err)
	}
	if err := ecs.Add(w, entity, component.ArmedComponent.Kind(), &component.Armed{}); err != nil {
		return 0, fmt.Errorf("player: add armed: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		SimulatePhysics:  true,
		EnableGravity:    true,
		CollisionEnabled: true,
		Grounded:         true,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, entity, component.TraceIgnoreComponent.Kind(), &component.TraceIgnore{Group: traceGroup(entity)}); err != nil {
		return 0, fmt.Errorf("player: add trace ignore: %w", err)
	}

	ApplyPlayerSpec(w, entity, spec)
	return entity, nil
}

// ApplyPlayerSpec writes the tunables of spec onto an existing player without
// resetting its runtime state (velocity, blend, held object). Pools are
// clamped to their new defaults. Callers validate spec first.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec prefabs.PlayerSpec) {
	spec = withPlayerDefaults(spec)

	if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
		cam.Offset = mgl64.Vec3{0, 0, spec.Camera.OffsetZ}
		cam.BaseTurnRate = spec.Camera.BaseTurnRate
		cam.BaseLookUpRate = spec.Camera.BaseLookUpRate
		cam.YawInputScale = spec.Camera.YawInputScale
		cam.PitchInputScale = spec.Camera.PitchInputScale
	}

	if move, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		move.MaxWalkSpeed = spec.Movement.MaxWalkSpeed
		move.MaxAcceleration = spec.Movement.MaxAcceleration
		move.BrakingDeceleration = spec.Movement.BrakingDeceleration
		move.AirControl = *spec.Movement.AirControl
		move.JumpZVelocity = spec.Movement.JumpZVelocity
		move.GravityScale = spec.Movement.GravityScale
	}

	if jumps, ok := ecs.Get(w, e, component.JumpsComponent.Kind()); ok {
		jumps.Default = *spec.Jumps
		if jumps.Current > jumps.Default {
			jumps.Current = jumps.Default
		}
	}

	if dash, ok := ecs.Get(w, e, component.DashComponent.Kind()); ok {
		dash.Force = spec.Dash.Force
		dash.Cooldown = spec.Dash.Cooldown
		dash.Duration = spec.Dash.Duration
		dash.IdleThreshold = spec.Dash.IdleThreshold
		dash.IdleSpeed = spec.Dash.IdleSpeed
	}

	if st, ok := ecs.Get(w, e, component.SlowTimeComponent.Kind()); ok {
		st.DefaultMana = spec.SlowTime.ManaTime
		st.Mana = common.Clamp(st.Mana, 0, st.DefaultMana)
		st.ManaEpsilon = spec.SlowTime.ManaEpsilon
		st.TransitionTime = spec.SlowTime.TransitionTime
		st.ParamName = spec.SlowTime.ParamName
		st.Engaged = component.MovementTuning{
			GravityScale: spec.SlowTime.Engaged.GravityScale,
			MaxWalkSpeed: spec.SlowTime.Engaged.MaxWalkSpeed,
		}
		st.Disengaged = component.MovementTuning{
			GravityScale: spec.SlowTime.Disengaged.GravityScale,
			MaxWalkSpeed: spec.SlowTime.Disengaged.MaxWalkSpeed,
		}
		engaged := st.State == component.ShaderRampingIn || (st.State == component.ShaderIdle && st.Percent == 1)
		if move, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok && engaged {
			move.GravityScale = st.Engaged.GravityScale
			move.MaxWalkSpeed = st.Engaged.MaxWalkSpeed
		}
	}

	if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		health.Default = *spec.Health
		if health.Current > health.Default {
			health.Current = health.Default
		}
	}

	if holder, ok := ecs.Get(w, e, component.HolderComponent.Kind()); ok {
		holder.Range = spec.Interaction.Range
		holder.HoldLerp = spec.Interaction.HoldLerp
	}

	if armed, ok := ecs.Get(w, e, component.ArmedComponent.Kind()); ok {
		armed.GunOffset = spec.GunOffset.Vec3()
		if att, ok := ecs.Get(w, ecs.Entity(armed.Weapon), component.AttachmentComponent.Kind()); ok {
			att.Offset = armed.GunOffset
		}
	}

	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Radius = spec.Capsule.Radius
		body.HalfHeight = spec.Capsule.HalfHeight
		body.Mass = spec.Capsule.Mass
		body.Friction = spec.Capsule.Friction
	}
}

func withPlayerDefaults(spec prefabs.PlayerSpec) prefabs.PlayerSpec {
	setOptional(&spec.Health, 100)
	setOptional(&spec.Jumps, 2)
	setDefaultF(&spec.Capsule.Radius, 55)
	setDefaultF(&spec.Capsule.HalfHeight, 96)
	setDefaultF(&spec.Capsule.Mass, 80)
	setDefaultF(&spec.Camera.OffsetZ, 64)
	setDefaultF(&spec.Camera.BaseTurnRate, 45)
	setDefaultF(&spec.Camera.BaseLookUpRate, 45)
	setDefaultF(&spec.Camera.YawInputScale, 1)
	setDefaultF(&spec.Camera.PitchInputScale, 1)
	setDefaultF(&spec.Movement.MaxWalkSpeed, 1800)
	setDefaultF(&spec.Movement.MaxAcceleration, 2048)
	setDefaultF(&spec.Movement.BrakingDeceleration, 2048)
	setOptional(&spec.Movement.AirControl, 0.05)
	setDefaultF(&spec.Movement.JumpZVelocity, 420)
	setDefaultF(&spec.Movement.GravityScale, 1)
	setDefaultF(&spec.Dash.Force, 2000)
	setDefaultF(&spec.Dash.Cooldown, 1)
	setDefaultF(&spec.Dash.Duration, 0.1)
	setDefaultF(&spec.Dash.IdleThreshold, 50)
	setDefaultF(&spec.Dash.IdleSpeed, 1250)
	setDefaultF(&spec.SlowTime.ManaTime, 5)
	setDefaultF(&spec.SlowTime.ManaEpsilon, 0.01)
	setDefaultF(&spec.SlowTime.TransitionTime, 0.5)
	setDefaultF(&spec.SlowTime.Engaged.GravityScale, 1.8)
	setDefaultF(&spec.SlowTime.Engaged.MaxWalkSpeed, 1200)
	setDefaultF(&spec.SlowTime.Disengaged.GravityScale, 1)
	setDefaultF(&spec.SlowTime.Disengaged.MaxWalkSpeed, 1800)
	setDefaultF(&spec.Interaction.Range, 50)
	setDefaultF(&spec.Interaction.HoldLerp, 0.65)
	if spec.SlowTime.ParamName == "" {
		spec.SlowTime.ParamName = "Color Change Bool"
	}
	if spec.Weapon == "" {
		spec.Weapon = "rifle.yaml"
	}
	return spec
}

// setOptional fills a field left out of the yaml. An explicit zero is kept.
func setOptional[T any](v **T, def T) {
	if *v == nil {
		*v = &def
	}
}

func setDefaultF(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

func multiplier(blend float64) float64 {
	return (1.2 - blend) * 5
}

// traceGroup gives each entity its own collision group so its traces skip
// its own shape.
func traceGroup(e ecs.Entity) uint {
	return uint(uint32(e))
}
