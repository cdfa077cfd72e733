package system

import (
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// RespawnSystem rebuilds the arena once the player has been gone for delay
// seconds of real time. A failed rebuild restarts the countdown.
type RespawnSystem struct {
	delay   float64
	rebuild func(w *ecs.World) error

	seenPlayer bool
	remaining  float64
	pending    bool
}

func NewRespawnSystem(delay float64, rebuild func(w *ecs.World) error) *RespawnSystem {
	return &RespawnSystem{delay: delay, rebuild: rebuild}
}

// Pending reports whether a respawn countdown is running.
func (s *RespawnSystem) Pending() bool {
	return s != nil && s.pending
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil || s.rebuild == nil {
		return
	}

	if _, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		s.seenPlayer = true
		s.pending = false
		return
	}
	if !s.seenPlayer {
		return
	}

	if !s.pending {
		s.pending = true
		s.remaining = s.delay
		common.Log().Infow("player down, respawning", "delay", s.delay)
	}

	s.remaining -= w.Frame().Real
	if s.remaining > 0 {
		return
	}

	s.pending = false
	if err := s.rebuild(w); err != nil {
		common.Log().Errorw("respawn failed, retrying", "delay", s.delay, "error", err)
	}
}
