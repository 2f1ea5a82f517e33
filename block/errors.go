package block

import "github.com/pkg/errors"

// ErrWriteAfterRead is raised by a plain Combinational when a pass reads a
// signal and later writes it, which would desynchronize from synthesized
// hardware (a real wire cannot observe its own future value).
var ErrWriteAfterRead = errors.New("rivulet/block: write after read in combinational pass")

// ErrUninitializedSSARead is raised by an SSA Combinational when a
// tracked signal is read before any version of it has been written within
// the current pass and the signal's live value contains x or z bits.
var ErrUninitializedSSARead = errors.New("rivulet/block: read of ssa-tracked signal before its first write")

// ErrRedriven names the condition of two blocks claiming the same target
// signal. No function in this package returns it; Module.Build reports that
// conflict as signal.ErrRedriven from Logic.ClaimDriver.
var ErrRedriven = errors.New("rivulet/block: signal driven by more than one block")

// ErrSSAFixedPoint is raised when an SSA pass fails to converge within the
// bounded number of iterations allowed; this indicates a genuine
// combinational cycle through the tracked signal set rather than a chain of
// independent reassignments.
var ErrSSAFixedPoint = errors.New("rivulet/block: ssa pass did not reach a fixed point")
