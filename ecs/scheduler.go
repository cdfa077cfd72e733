package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Starter is implemented by systems that need a one-time hook before their
// first Update, the equivalent of an actor's spawn callback.
type Starter interface {
	Start(w *World)
}

type Scheduler struct {
	systems []System
	started []bool
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	s.started = append(s.started, false)
}

func (s *Scheduler) Update(w *World) {
	for i, system := range s.systems {
		if !s.started[i] {
			s.started[i] = true
			if starter, ok := system.(Starter); ok {
				starter.Start(w)
			}
		}
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
