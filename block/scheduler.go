package block

// TickScheduler lets a Sequential block defer the application of a
// clock-edge's sampled updates until the current simulator tick's
// propagation has quiesced (spec phase 3, "end of time step actions"), so
// that every Sequential clocked on the same edge observes the same
// pre-edge values regardless of registration order. Satisfied by
// simulator.Simulator; with no scheduler attached, updates apply
// immediately (synchronous single-block use, e.g. in tests).
type TickScheduler interface {
	ScheduleEndOfTick(fn func())
}

var activeTickScheduler TickScheduler

// Attach installs the scheduler Sequential blocks defer end-of-tick writes
// to. Called once by simulator.New.
func Attach(s TickScheduler) { activeTickScheduler = s }

// Detach removes the active scheduler, reverting to immediate application.
func Detach() { activeTickScheduler = nil }
