package ecs

// EventKind identifies gameplay event types.
type EventKind string

const (
	EventDamaged         EventKind = "damaged"
	EventDestroyed       EventKind = "destroyed"
	EventLanded          EventKind = "landed"
	EventDashed          EventKind = "dashed"
	EventFired           EventKind = "fired"
	EventPickedUp        EventKind = "picked_up"
	EventReleased        EventKind = "released"
	EventSlowTimeChanged EventKind = "slow_time_changed"
)

// Event is a gameplay event emitted during a frame.
type Event struct {
	Kind   EventKind
	Entity Entity
	Other  Entity
	Value  float64
	Note   string
}

// EventQueue is a simple FIFO queue cleared at the end of every frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns this frame's events without clearing them, so several systems
// can observe the same frame.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
