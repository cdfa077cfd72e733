package system

import "github.com/milk9111/myboss/ecs"

// TimerSystem advances the world's one-shot timers by the dilated delta.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Timers().Advance(w, w.Frame().World())
}
