package system

import (
	"math"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

const (
	timerEndDash   = "end_dash"
	timerResetDash = "reset_dash"
)

type DashSystem struct{}

func NewDashSystem() *DashSystem {
	return &DashSystem{}
}

func (s *DashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.DashComponent.Kind(), func(e ecs.Entity, input *component.Input, _ *component.Dash) {
		if input.DashPressed {
			Dash(w, e)
		}
	})
}

// Dash launches e forward and schedules the velocity restore and the cooldown
// reset. Both delays are divided by e's custom dilation so their real-world
// length does not change under slow motion. It reports whether a dash started.
func Dash(w *ecs.World, e ecs.Entity) bool {
	dash, okD := ecs.Get(w, e, component.DashComponent.Kind())
	move, okM := ecs.Get(w, e, component.MovementComponent.Kind())
	if !okD || !okM || !dash.Available {
		return false
	}
	dash.Available = false
	dash.Dashing = true

	forward := actorForward(w, e)
	before := move.Velocity
	if math.Abs(before.X()) <= dash.IdleThreshold && math.Abs(before.Y()) <= dash.IdleThreshold {
		before = forward.Mul(dash.IdleSpeed)
	}
	dash.VelocityBefore = before

	move.Velocity = forward.Mul(dash.Force)

	m := ecs.CustomDilation(w, e)
	resetDash := func(w *ecs.World) {
		if d, ok := ecs.Get(w, e, component.DashComponent.Kind()); ok {
			d.Available = true
		}
	}
	endDash := func(w *ecs.World) {
		EndDash(w, e)
	}
	if cooldown := dash.Cooldown / m; cooldown > 0 {
		w.Timers().Schedule(ecs.TimerKey{Owner: e, Name: timerResetDash}, cooldown, resetDash)
	} else {
		resetDash(w)
	}
	if duration := dash.Duration / m; duration > 0 {
		w.Timers().Schedule(ecs.TimerKey{Owner: e, Name: timerEndDash}, duration, endDash)
	} else {
		endDash(w)
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventDashed, Entity: e, Value: dash.Force})
	return true
}

// EndDash restores the velocity captured when the dash started.
func EndDash(w *ecs.World, e ecs.Entity) {
	dash, okD := ecs.Get(w, e, component.DashComponent.Kind())
	move, okM := ecs.Get(w, e, component.MovementComponent.Kind())
	if !okD || !okM {
		return
	}
	move.Velocity = dash.VelocityBefore
	dash.Dashing = false
}
