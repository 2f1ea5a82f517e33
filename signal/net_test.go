package signal

import (
	"testing"

	"github.com/pdxjjb/rivulet/value"
)

func TestNetResolutionTwoTriStateDrivers(t *testing.T) {
	n := NewNet("n", 8)
	driverA := New("drvA", 8)
	driverB := New("drvB", 8)
	if err := n.DriveNet(driverA, 7, 0); err != nil {
		t.Fatalf("DriveNet A: %v", err)
	}
	if err := n.DriveNet(driverB, 7, 0); err != nil {
		t.Fatalf("DriveNet B: %v", err)
	}

	driverA.Put(value.FromInt(8, 0x0F))
	driverB.Put(value.AllZ(8))
	if !n.Value().Equal(value.FromInt(8, 0x0F)) {
		t.Fatalf("net = %s, want 0x0F with only A enabled", n.Value())
	}

	driverB.Put(value.FromInt(8, 0xF0))
	if !n.Value().Equal(value.AllX(8)) {
		t.Fatalf("net = %s, want all-x with both conflicting", n.Value())
	}

	driverA.Put(value.AllZ(8))
	driverB.Put(value.AllZ(8))
	if !n.Value().Equal(value.AllZ(8)) {
		t.Fatalf("net = %s, want all-z with neither enabled", n.Value())
	}

	driverB.Put(value.FromInt(8, 0xF0))
	if !n.Value().Equal(value.FromInt(8, 0xF0)) {
		t.Fatalf("net = %s, want 0xF0 with only B enabled", n.Value())
	}
}

func TestNetResolveBitTable(t *testing.T) {
	cases := []struct {
		contribs []value.Bit
		want     value.Bit
	}{
		{[]value.Bit{value.Bit0, value.BitZ, value.BitZ}, value.Bit0},
		{[]value.Bit{value.Bit0, value.Bit1, value.BitZ}, value.BitX},
		{[]value.Bit{value.BitZ, value.BitZ}, value.BitZ},
		{[]value.Bit{value.Bit1, value.Bit1}, value.Bit1},
	}
	for _, c := range cases {
		if got := resolveBit(c.contribs); got != c.want {
			t.Errorf("resolveBit(%v) = %s, want %s", c.contribs, got, c.want)
		}
	}
}
