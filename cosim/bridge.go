// Package cosim bridges Logic signals to a real, serial-attached board,
// standing in for the framework's "external module stub" boundary:
// ExternalModule declares the ports, and a Bridge is what actually drives
// and samples them against hardware instead of a Combinational/Sequential.
// Grounded on wut4's own hardware exerciser (exer/cex): a command byte
// addresses one of the board's up-to-256 channels, acknowledged by the
// bitwise complement of the command.
package cosim

import (
	"time"

	"go.bug.st/serial"

	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// The board snoops the serial line for a few seconds after the port opens
// (which resets it) looking for an IDE firmware upload; it's safest to just
// wait out that window before sending anything.
const defaultResetDelay = 4 * time.Second
const defaultResponseTimeout = 200 * time.Millisecond

// Bridge drives a set of output Logics onto board channels and samples a
// set of input Logics from board channels, one byte per channel.
type Bridge struct {
	port    serial.Port
	timeout time.Duration

	driven   map[byte]*signal.Logic
	observed map[byte]*signal.Logic
	unsubs   []func()

	driveErr error // last ErrUndefinedDrive, if any; see Drive and DriveError
}

// Open opens deviceName (e.g. "/dev/ttyUSB0") at baudRate, waits for the
// board's reset window, and verifies the command protocol before
// returning.
func Open(deviceName string, baudRate int) (*Bridge, error) {
	port, err := openSerial(deviceName, baudRate, defaultResetDelay)
	if err != nil {
		return nil, err
	}
	b := &Bridge{
		port:     port,
		timeout:  defaultResponseTimeout,
		driven:   make(map[byte]*signal.Logic),
		observed: make(map[byte]*signal.Logic),
	}
	if err := b.sync(); err != nil {
		port.Close()
		return nil, err
	}
	if err := b.checkProtocolVersion(); err != nil {
		port.Close()
		return nil, err
	}
	return b, nil
}

func (b *Bridge) sync() error {
	if err := writeBytes(b.port, []byte{cmdSync}); err != nil {
		return err
	}
	got, err := readByte(b.port, b.timeout)
	if err != nil {
		return err
	}
	if got != ack(cmdSync) {
		return ErrBadAck
	}
	return nil
}

func (b *Bridge) checkProtocolVersion() error {
	if err := writeBytes(b.port, []byte{cmdGetVer}); err != nil {
		return err
	}
	got, err := readByte(b.port, b.timeout)
	if err != nil {
		return err
	}
	if got != ack(cmdGetVer) {
		return ErrBadAck
	}
	version, err := readByte(b.port, b.timeout)
	if err != nil {
		return err
	}
	if version != protocolVersion {
		return ErrProtocolVersion
	}
	return nil
}

// Drive forwards every future value of l (an 8-bits-or-narrower output)
// to the board's channel, as a cmdSet command, sent as soon as l changes. An
// X/Z value cannot be encoded onto the wire protocol; such a change is
// dropped and recorded as ErrUndefinedDrive, retrievable with DriveError.
func (b *Bridge) Drive(channel byte, l *signal.Logic) error {
	if l.Width() > 8 {
		return ErrChannelTooWide
	}
	unsub, err := l.Subscribe(func(_, next value.Value) {
		if !next.IsValid() {
			b.driveErr = ErrUndefinedDrive
			return
		}
		writeBytes(b.port, []byte{cmdSet, channel, byteOf(next)})
		readByte(b.port, b.timeout) // consume the ack; board-side errors surface on the next Poll
	})
	if err != nil {
		return err
	}
	b.driven[channel] = l
	b.unsubs = append(b.unsubs, unsub)
	return nil
}

// DriveError returns and clears the most recent ErrUndefinedDrive recorded
// by Drive's change callback, or nil if no driven Logic has gone undefined
// since the last call. The callback itself cannot return an error, so
// callers that care about dropped X/Z drives should poll this periodically
// (e.g. alongside Poll).
func (b *Bridge) DriveError() error {
	err := b.driveErr
	b.driveErr = nil
	return err
}

// Observe registers l (an 8-bits-or-narrower input) to receive the board's
// channel value on every subsequent Poll.
func (b *Bridge) Observe(channel byte, l *signal.Logic) error {
	if l.Width() > 8 {
		return ErrChannelTooWide
	}
	b.observed[channel] = l
	return nil
}

// Poll issues one cmdGet per observed channel, in ascending channel order,
// and deposits each response onto its Logic via Put.
func (b *Bridge) Poll() error {
	for _, ch := range sortedChannels(b.observed) {
		if err := writeBytes(b.port, []byte{cmdGet, ch}); err != nil {
			return err
		}
		gotAck, err := readByte(b.port, b.timeout)
		if err != nil {
			return err
		}
		if gotAck != ack(cmdGet) {
			return ErrBadAck
		}
		data, err := readByte(b.port, b.timeout)
		if err != nil {
			return err
		}
		l := b.observed[ch]
		if err := l.Put(value.FromUint(l.Width(), uint64(data))); err != nil {
			return err
		}
	}
	return nil
}

// Close stops driving every subscribed output and closes the serial port.
func (b *Bridge) Close() error {
	for _, unsub := range b.unsubs {
		unsub()
	}
	return b.port.Close()
}

func byteOf(v value.Value) byte {
	var out byte
	for i := 0; i < v.Width() && i < 8; i++ {
		if v.BitAt(i) == value.Bit1 {
			out |= 1 << uint(i)
		}
	}
	return out
}

func sortedChannels(m map[byte]*signal.Logic) []byte {
	out := make([]byte, 0, len(m))
	for ch := range m {
		out = append(out, ch)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
