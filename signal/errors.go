package signal

import "github.com/pkg/errors"

// ErrWidthMismatch is returned when a connection or drive assigns between
// signals of differing width.
var ErrWidthMismatch = errors.New("rivulet/signal: width mismatch")

// ErrSelfConnect is returned by Connect when asked to connect a signal to
// itself.
var ErrSelfConnect = errors.New("rivulet/signal: cannot connect a signal to itself")

// ErrRedriven is returned when a second driver is attached to a non-net
// signal that already has one.
var ErrRedriven = errors.New("rivulet/signal: signal already has a driver")

// ErrUnassignable is returned by Put/Inject/Drive against a signal marked
// unassignable (e.g. a constant).
var ErrUnassignable = errors.New("rivulet/signal: signal is not assignable")

// ErrEmitting is returned when listener registration is attempted while the
// signal's change emitter is mid-emission.
var ErrEmitting = errors.New("rivulet/signal: cannot reconfigure listeners during emission")
