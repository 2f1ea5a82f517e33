package cosim

import (
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

var errShortWrite = errors.New("cosim: write didn't consume all the bytes")

// openSerial opens deviceName at baudRate with the 8N1 framing the board
// expects and waits resetDelay for the board's boot-time command snoop
// window to end before any byte is sent.
func openSerial(deviceName string, baudRate int, resetDelay time.Duration) (serial.Port, error) {
	mode := &serial.Mode{BaudRate: baudRate, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
	port, err := serial.Open(deviceName, mode)
	if err != nil {
		return nil, err
	}
	time.Sleep(resetDelay)
	return port, nil
}

// readByte reads a single byte from port, retrying transparently on EINTR
// (constant under Go's goroutine-level signal delivery) and surfacing
// ErrNoResponse on a real timeout.
func readByte(port serial.Port, timeout time.Duration) (byte, error) {
	if err := port.SetReadTimeout(timeout); err != nil {
		return 0, err
	}
	b := make([]byte, 1)
	for {
		n, err := port.Read(b)
		if isRetryableSyscallError(err) {
			if n != 0 {
				panic("bytes returned despite EINTR")
			}
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, ErrNoResponse
		}
		return b[0], nil
	}
}

// writeBytes writes every byte of b to port, retrying on EINTR.
func writeBytes(port serial.Port, b []byte) error {
	for {
		n, err := port.Write(b)
		if isRetryableSyscallError(err) {
			if n != 0 {
				panic("bytes written despite EINTR")
			}
			continue
		}
		if err != nil {
			return err
		}
		if n != len(b) {
			return errShortWrite
		}
		return nil
	}
}

func isRetryableSyscallError(err error) bool {
	const eIntr = 4
	if errno, ok := err.(syscall.Errno); ok {
		return errno == eIntr
	}
	return false
}
