package cosim

import "github.com/pkg/errors"

// ErrNoResponse is returned when the board does not answer within the
// configured timeout.
var ErrNoResponse = errors.New("cosim: no response from board")

// ErrProtocolVersion is returned when the board reports a protocol version
// this Bridge does not speak.
var ErrProtocolVersion = errors.New("cosim: board protocol version mismatch")

// ErrBadAck is returned when the board's acknowledgement byte doesn't match
// the command it is acknowledging.
var ErrBadAck = errors.New("cosim: unexpected acknowledgement byte")

// ErrChannelTooWide is returned when Drive or Observe is asked to bridge a
// Logic wider than 8 bits: the wire protocol moves one byte per channel.
var ErrChannelTooWide = errors.New("cosim: channel signal wider than 8 bits")

// ErrUndefinedDrive is recorded (and surfaced through Bridge.DriveError) when
// a driven Logic changes to an X/Z value: the wire protocol carries only 0/1
// bytes, so the change is dropped instead of being sent to the board. The
// Subscribe callback that notices this has no error return of its own, so it
// cannot report the problem any other way.
var ErrUndefinedDrive = errors.New("cosim: cannot drive board with an undefined value")
