package signal

// Scheduler is the minimal interface a simulator implements so that
// Logic.Inject can enqueue an orderly event at the current simulated time,
// without signal importing the simulator package. Exactly one scheduler is
// active at a time, set by simulator.Simulator on construction.
type Scheduler interface {
	// ScheduleNow enqueues fn to run as part of the current simulated time
	// step's propagation, after the signal write that triggered it.
	ScheduleNow(fn func())
}

var activeScheduler Scheduler

// Attach installs s as the active scheduler for Inject to use. Called by
// simulator.Simulator; not part of the general user-facing API.
func Attach(s Scheduler) { activeScheduler = s }

// Detach clears the active scheduler, e.g. between isolated test cases.
func Detach() { activeScheduler = nil }
