package signal

import "github.com/pdxjjb/rivulet/value"

// deposit writes v to l's cell and notifies listeners in registration
// order. If sched is non-nil (Inject rather than Put), the notification
// pass is additionally handed to the scheduler so it runs as a tracked
// simulator event.
func (l *Logic) deposit(v value.Value, sched Scheduler) error {
	c := l.cell.root()
	if c.unassignable {
		return ErrUnassignable
	}
	if v.Width() != c.width {
		return ErrWidthMismatch
	}
	prev := c.current
	if prev.Equal(v) {
		return nil
	}
	c.current = v
	notify := func() { c.emit(prev, v) }
	if sched != nil {
		sched.ScheduleNow(notify)
	} else {
		notify()
	}
	return nil
}

// emit runs every registered listener with (prev, next), in the order they
// were registered. Re-entrant emissions (a listener that itself triggers
// another Put/Inject) are processed synchronously and are safe because the
// listener slice is snapshotted before iterating.
func (c *cell) emit(prev, next value.Value) {
	c.emitting = true
	snapshot := append([]*listener(nil), c.listeners...)
	for _, ls := range snapshot {
		if ls.active {
			ls.fn(prev, next)
		}
	}
	c.emitting = false
}

// Subscribe registers fn to run on every future value change of l. It
// returns an unsubscribe function. Subscribe fails with ErrEmitting if
// called from within a listener callback currently running on l.
func (l *Logic) Subscribe(fn func(prev, next value.Value)) (func(), error) {
	c := l.cell.root()
	if c.emitting {
		return nil, ErrEmitting
	}
	ls := &listener{fn: fn, active: true}
	c.listeners = append(c.listeners, ls)
	return func() { ls.active = false }, nil
}
