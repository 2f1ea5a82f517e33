package simulator

import "github.com/pkg/errors"

// ErrPastTime is returned by RegisterAction when asked to schedule at a
// time earlier than the simulator's current time.
var ErrPastTime = errors.New("rivulet/simulator: cannot register an action in the past")

// ErrReentrant is returned by Tick/Run when called while a tick is already
// being advanced (e.g. from within a registered action).
var ErrReentrant = errors.New("rivulet/simulator: already advancing time")

// ErrNoPendingEvents is returned by Tick when the event queue is empty.
var ErrNoPendingEvents = errors.New("rivulet/simulator: no pending events")
