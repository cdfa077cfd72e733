package ecs

import "github.com/milk9111/myboss/ecs/component"

// World owns entities, component storage, system order, the timer facility and
// the per-frame clock.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler *Scheduler
	timers    Timers
	events    EventQueue
	frame     Frame
	frames    uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		scheduler: NewScheduler(),
		frame:     Frame{Scale: 1},
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e, drops its pending timers and
// invalidates the handle. It reports whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		if s.Has(e) {
			s.Remove(e)
		}
	}
	w.timers.cancelOwner(e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update advances the world by one frame: every system runs once in order,
// then the event queue is cleared.
func (w *World) Update(frame Frame) {
	if w == nil {
		return
	}
	if frame.Scale <= 0 {
		frame.Scale = 1
	}
	w.frame = frame
	w.frames++
	w.scheduler.Update(w)
	w.events.flush()
}

// Frame returns the clock of the frame currently being updated.
func (w *World) Frame() Frame {
	if w == nil {
		return Frame{Scale: 1}
	}
	return w.frame
}

// Retime changes the global dilation for the systems still to run in the
// current frame.
func (w *World) Retime(scale float64) {
	if w == nil || scale <= 0 {
		return
	}
	w.frame.Scale = scale
}

// FrameCount returns the number of completed or in-progress updates.
func (w *World) FrameCount() uint64 {
	if w == nil {
		return 0
	}
	return w.frames
}

// Timers returns the world timer facility.
func (w *World) Timers() *Timers {
	if w == nil {
		return nil
	}
	return &w.timers
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
