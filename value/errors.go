package value

import "github.com/pkg/errors"

// ErrWidthMismatch is returned when an operation requires equal-width
// operands and does not receive them.
var ErrWidthMismatch = errors.New("rivulet/value: width mismatch")

// ErrInvalidOp is returned when an operation that forbids invalid (x/z)
// bits is given an operand containing them.
var ErrInvalidOp = errors.New("rivulet/value: invalid value for operation")

// ErrInvalidMultiplier is returned by Replicate when n <= 0.
var ErrInvalidMultiplier = errors.New("rivulet/value: replication count must be >= 1")

// ErrOutOfRange is returned by slicing/WithSet operations given indices
// outside the value's width.
var ErrOutOfRange = errors.New("rivulet/value: index out of range")
