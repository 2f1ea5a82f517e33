package signal

import "github.com/pdxjjb/rivulet/value"

// DriveNet attaches src as a tri-state driver of the bit range [lo, hi] of
// the net l (both ends inclusive, matching Value.Slice's convention).
// l must be a net (see NewNet); attaching a range driver to a plain wire is
// an error. The net's resolved value is recomputed immediately and again on
// every future change of src.
func (l *Logic) DriveNet(src *Logic, hi, lo int) error {
	c := l.cell.root()
	if c.kind != kindNet {
		return ErrRedriven
	}
	if hi < lo || lo < 0 || hi >= c.width {
		return ErrWidthMismatch
	}
	if hi-lo+1 != src.Width() {
		return ErrWidthMismatch
	}
	c.netDrivers = append(c.netDrivers, netDrive{src: src, hi: hi, lo: lo})
	_, err := src.Subscribe(func(_, _ value.Value) {
		l.recomputeNet()
	})
	if err != nil {
		return err
	}
	l.recomputeNet()
	return nil
}

// recomputeNet resolves every bit of l's net from its current drivers and
// deposits the result.
func (l *Logic) recomputeNet() {
	c := l.cell.root()
	resolved := resolveNetLocked(c)
	_ = l.deposit(resolved, activeScheduler)
}

// resolveNetLocked computes a net's value from its driver list without
// touching listeners; used both by recomputeNet and by Connect's merge.
func resolveNetLocked(c *cell) value.Value {
	bits := make([]value.Bit, c.width)
	for i := range bits {
		bits[i] = value.BitZ
	}
	contribsPerBit := make([][]value.Bit, c.width)
	for _, d := range c.netDrivers {
		for i := d.lo; i <= d.hi; i++ {
			contribsPerBit[i] = append(contribsPerBit[i], d.src.Value().BitAt(i-d.lo))
		}
	}
	for i, contribs := range contribsPerBit {
		bits[i] = resolveBit(contribs)
	}
	return value.FromBits(bits)
}

// resolveBit implements the tri-state resolution rule: if exactly one
// driver is non-z, that bit wins; z-valued drivers are transparent; two
// conflicting non-z drivers (or any x contribution) yield x; no drivers at
// all yields z.
func resolveBit(contribs []value.Bit) value.Bit {
	var first value.Bit
	seen := false
	for _, c := range contribs {
		if c == value.BitZ {
			continue
		}
		if c == value.BitX {
			return value.BitX
		}
		if !seen {
			first = c
			seen = true
			continue
		}
		if c != first {
			return value.BitX
		}
	}
	if !seen {
		return value.BitZ
	}
	return first
}
