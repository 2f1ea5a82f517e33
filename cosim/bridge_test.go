package cosim

import (
	"testing"

	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

func TestByteOfPacksLowBitsLSBFirst(t *testing.T) {
	v := value.FromInt(8, 0x5A)
	if got := byteOf(v); got != 0x5A {
		t.Fatalf("byteOf = %#x, want 0x5a", got)
	}
}

func TestDriveErrorRecordsUndefinedDriveAndClearsOnRead(t *testing.T) {
	l := signal.New("out", 1)
	if err := l.Put(value.FromInt(1, 1)); err != nil {
		t.Fatalf("Put valid: %v", err)
	}

	b := &Bridge{driven: make(map[byte]*signal.Logic), observed: make(map[byte]*signal.Logic)}
	if err := b.Drive(0, l); err != nil {
		t.Fatalf("Drive: %v", err)
	}

	if err := b.DriveError(); err != nil {
		t.Fatalf("DriveError before any undefined drive = %v, want nil", err)
	}

	if err := l.Put(value.AllX(1)); err != nil {
		t.Fatalf("Put x: %v", err)
	}
	if err := b.DriveError(); err != ErrUndefinedDrive {
		t.Fatalf("DriveError after x drive = %v, want ErrUndefinedDrive", err)
	}
	if err := b.DriveError(); err != nil {
		t.Fatalf("DriveError on second read = %v, want nil (cleared)", err)
	}
}

func TestSortedChannelsAscending(t *testing.T) {
	m := map[byte]*signal.Logic{
		3: signal.New("c", 1),
		1: signal.New("a", 1),
		2: signal.New("b", 1),
	}
	order := sortedChannels(m)
	want := []byte{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
