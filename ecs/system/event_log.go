package system

import (
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
)

// EventLogSystem writes the frame's gameplay events to the process logger.
// It runs last so it sees everything emitted during the frame.
type EventLogSystem struct{}

func NewEventLogSystem() *EventLogSystem {
	return &EventLogSystem{}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	log := common.Log()
	for _, ev := range w.Events().Items() {
		switch ev.Kind {
		case ecs.EventDestroyed, ecs.EventSlowTimeChanged, ecs.EventPickedUp, ecs.EventReleased:
			log.Infow(string(ev.Kind), "entity", ev.Entity, "other", ev.Other, "value", ev.Value, "note", ev.Note, "frame", w.FrameCount())
		default:
			log.Debugw(string(ev.Kind), "entity", ev.Entity, "other", ev.Other, "value", ev.Value, "note", ev.Note, "frame", w.FrameCount())
		}
	}
}
