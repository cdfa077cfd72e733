package ecs

import "sort"

// TimerKey identifies a one-shot timer. Scheduling with a key that is already
// pending replaces the earlier timer.
type TimerKey struct {
	Owner Entity
	Name  string
}

type timer struct {
	remaining float64
	fn        func(w *World)
	seq       uint64
}

// Timers is a keyed one-shot delayed callback facility advanced in world
// (dilated) time.
type Timers struct {
	pending map[TimerKey]*timer
	seq     uint64
}

// Schedule arms fn to run after delay seconds of world time. A non-positive
// delay clears any pending timer for key and schedules nothing.
func (t *Timers) Schedule(key TimerKey, delay float64, fn func(w *World)) {
	if t == nil {
		return
	}
	if delay <= 0 || fn == nil {
		t.Cancel(key)
		return
	}
	if t.pending == nil {
		t.pending = make(map[TimerKey]*timer)
	}
	t.seq++
	t.pending[key] = &timer{remaining: delay, fn: fn, seq: t.seq}
}

// Remaining returns the seconds left on key, or 0 when nothing is pending.
func (t *Timers) Remaining(key TimerKey) float64 {
	if t == nil {
		return 0
	}
	if tm, ok := t.pending[key]; ok {
		return tm.remaining
	}
	return 0
}

// Active reports whether key is pending.
func (t *Timers) Active(key TimerKey) bool {
	if t == nil {
		return false
	}
	_, ok := t.pending[key]
	return ok
}

// Cancel drops a pending timer and reports whether one existed.
func (t *Timers) Cancel(key TimerKey) bool {
	if t == nil {
		return false
	}
	if _, ok := t.pending[key]; !ok {
		return false
	}
	delete(t.pending, key)
	return true
}

// Len returns the number of pending timers.
func (t *Timers) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pending)
}

// Advance moves every pending timer forward by dt and fires those that
// expired, most overdue first. Timers scheduled by a callback are not advanced
// until the next call. It returns the number of callbacks run.
func (t *Timers) Advance(w *World, dt float64) int {
	if t == nil || len(t.pending) == 0 || dt <= 0 {
		return 0
	}

	type due struct {
		key TimerKey
		tm  *timer
	}
	var expired []due
	for key, tm := range t.pending {
		tm.remaining -= dt
		if tm.remaining <= 0 {
			expired = append(expired, due{key: key, tm: tm})
		}
	}
	sort.Slice(expired, func(i, j int) bool {
		if expired[i].tm.remaining != expired[j].tm.remaining {
			return expired[i].tm.remaining < expired[j].tm.remaining
		}
		return expired[i].tm.seq < expired[j].tm.seq
	})

	fired := 0
	for _, d := range expired {
		// an earlier callback may have replaced or cancelled this key
		if t.pending[d.key] != d.tm {
			continue
		}
		delete(t.pending, d.key)
		d.tm.fn(w)
		fired++
	}
	return fired
}

func (t *Timers) cancelOwner(e Entity) {
	for key := range t.pending {
		if key.Owner == e {
			delete(t.pending, key)
		}
	}
}
