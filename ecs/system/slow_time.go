package system

import (
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// SlowTimeSystem runs the slow-time blend state machine, drains the mana pool
// and derives the time dilation from the blend. The global scale is handed to
// the frame driver through onScale and applied to the rest of the frame, so
// the owner's custom dilation and the global scale always change together.
type SlowTimeSystem struct {
	onScale func(scale float64)
}

func NewSlowTimeSystem(onScale func(scale float64)) *SlowTimeSystem {
	return &SlowTimeSystem{onScale: onScale}
}

func (s *SlowTimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.SlowTimeComponent.Kind(), func(e ecs.Entity, st *component.SlowTime) {
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && input.SlowTimePressed {
			st.Requested = true
		}
		if st.Requested {
			st.Requested = false
			TriggerSlowTime(w, e)
		}

		m := TickSlowTime(w, e, ecs.DeltaFor(w, e))
		if m <= 0 {
			return
		}
		w.Retime(1 / m)
		if s.onScale != nil {
			s.onScale(1 / m)
		}
	})
}

// WorldScale is the global dilation that keeps the slow-time owner at real
// speed, 1 when nothing in w runs slow time.
func WorldScale(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.SlowTimeComponent.Kind())
	if !ok {
		return 1
	}
	st, _ := ecs.Get(w, e, component.SlowTimeComponent.Kind())
	if st.Multiplier <= 0 {
		return 1
	}
	return 1 / st.Multiplier
}

// Multiplier is the time-dilation multiplier for a blend percent.
func Multiplier(blend float64) float64 {
	return (1.2 - blend) * 5
}

// TriggerSlowTime starts a ramp from idle: in from zero, out from anywhere
// else. Starting a ramp-in needs mana above the epsilon. It reports whether a
// ramp started.
func TriggerSlowTime(w *ecs.World, e ecs.Entity) bool {
	st, ok := ecs.Get(w, e, component.SlowTimeComponent.Kind())
	if !ok || st.State != component.ShaderIdle {
		return false
	}

	tuning := st.Disengaged
	if st.Percent == 0 {
		if st.Mana <= st.ManaEpsilon {
			return false
		}
		st.State = component.ShaderRampingIn
		tuning = st.Engaged
	} else {
		st.State = component.ShaderRampingOut
	}

	if move, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		if tuning.GravityScale > 0 {
			move.GravityScale = tuning.GravityScale
		}
		if tuning.MaxWalkSpeed > 0 {
			move.MaxWalkSpeed = tuning.MaxWalkSpeed
		}
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventSlowTimeChanged, Entity: e, Value: st.Percent, Note: st.State.String()})
	return true
}

// TickSlowTime advances the blend by dt, writes the post-process parameter,
// drains mana and updates e's custom dilation. It returns the multiplier.
func TickSlowTime(w *ecs.World, e ecs.Entity, dt float64) float64 {
	st, ok := ecs.Get(w, e, component.SlowTimeComponent.Kind())
	if !ok {
		return 0
	}

	if dt <= 0 {
		st.Multiplier = Multiplier(st.Percent)
		return st.Multiplier
	}

	transition := st.TransitionTime
	if transition <= 0 {
		transition = 0.5
	}

	switch st.State {
	case component.ShaderRampingIn:
		if st.Percent <= 1 {
			st.Percent += dt / transition / 3
		}
	case component.ShaderRampingOut:
		if st.Percent >= 0 {
			st.Percent -= dt / transition
		}
	}

	if st.Percent <= 0 || st.Percent >= 1 {
		settled := st.State != component.ShaderIdle
		st.State = component.ShaderIdle
		if st.Percent <= 0 {
			st.Percent = 0
		} else {
			st.Percent = 1
		}
		if settled {
			w.Events().Push(ecs.Event{Kind: ecs.EventSlowTimeChanged, Entity: e, Value: st.Percent, Note: st.State.String()})
		}
	}

	setPostProcessParam(w, st)

	if st.Percent > 0 && st.State != component.ShaderRampingIn {
		st.Mana -= dt
	}
	if st.Mana <= 0 {
		st.Mana = st.ManaEpsilon
		TriggerSlowTime(w, e)
	}
	st.Mana = common.Clamp(st.Mana, 0, st.DefaultMana)

	st.Multiplier = Multiplier(st.Percent)
	if td, ok := ecs.Get(w, e, component.TimeDilationComponent.Kind()); ok {
		td.Custom = st.Multiplier
	}
	return st.Multiplier
}

func setPostProcessParam(w *ecs.World, st *component.SlowTime) {
	if st.PostProcess == 0 {
		return
	}
	pp, ok := ecs.Get(w, ecs.Entity(st.PostProcess), component.PostProcessComponent.Kind())
	if !ok {
		return
	}
	pp.SetScalar(st.ParamName, st.Percent)
}
