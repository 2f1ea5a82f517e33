package value

import "github.com/pkg/errors"

// Slice returns the bits from hi down to lo, inclusive. Negative indices
// count from width-1. If hi < lo the result is the reverse of [lo, hi].
func (a Value) Slice(hi, lo int) (Value, error) {
	if hi < 0 {
		hi += a.width
	}
	if lo < 0 {
		lo += a.width
	}
	if hi < lo {
		rev, err := a.Slice(lo, hi)
		if err != nil {
			return Value{}, err
		}
		return rev.Reversed(), nil
	}
	if lo < 0 || hi >= a.width {
		return Value{}, errors.Wrapf(ErrOutOfRange, "slice(%d,%d) of %d-bit value", hi, lo, a.width)
	}
	n := hi - lo + 1
	bits := make([]Bit, n)
	for i := 0; i < n; i++ {
		bits[i] = a.BitAt(lo + i)
	}
	return FromBits(bits), nil
}

// Reversed returns a with its bit order reversed.
func (a Value) Reversed() Value {
	bits := make([]Bit, a.width)
	for i := 0; i < a.width; i++ {
		bits[i] = a.BitAt(a.width - 1 - i)
	}
	return FromBits(bits)
}

// GetRange returns the half-open range [start, end) of bits, end defaulting
// to a.Width() when given as -1.
func (a Value) GetRange(start, end int) (Value, error) {
	if end < 0 {
		end = a.width
	}
	if start < 0 || end > a.width || start > end {
		return Value{}, errors.Wrapf(ErrOutOfRange, "getRange(%d,%d) of %d-bit value", start, end, a.width)
	}
	if start == end {
		return Zero(0), nil
	}
	return a.Slice(end-1, start)
}

// WithSet returns a value identical to a except that repl.Width() bits
// starting at index are replaced by repl's bits.
func (a Value) WithSet(index int, repl Value) (Value, error) {
	if index < 0 || index+repl.width > a.width {
		return Value{}, errors.Wrapf(ErrOutOfRange, "withSet(%d, width %d) of %d-bit value", index, repl.width, a.width)
	}
	bits := make([]Bit, a.width)
	for i := 0; i < a.width; i++ {
		if i >= index && i < index+repl.width {
			bits[i] = repl.BitAt(i - index)
		} else {
			bits[i] = a.BitAt(i)
		}
	}
	return FromBits(bits), nil
}

// ZeroExtend extends a to width w (>= a.Width()) filling new high bits with
// 0, preserving the unsigned integer interpretation.
func (a Value) ZeroExtend(w int) (Value, error) {
	return a.extend(w, Bit0)
}

// SignExtend extends a to width w (>= a.Width()) replicating the current
// MSB into new high bits, preserving the signed integer interpretation. If
// the MSB is invalid, that invalidity propagates into every extended bit.
func (a Value) SignExtend(w int) (Value, error) {
	sign := Bit0
	if a.width > 0 {
		sign = a.BitAt(a.width - 1)
	}
	return a.extend(w, sign)
}

func (a Value) extend(w int, fill Bit) (Value, error) {
	if w < a.width {
		return Value{}, errors.Wrapf(ErrOutOfRange, "extend to %d narrower than %d-bit value", w, a.width)
	}
	bits := make([]Bit, w)
	for i := 0; i < w; i++ {
		if i < a.width {
			bits[i] = a.BitAt(i)
		} else {
			bits[i] = fill
		}
	}
	return FromBits(bits), nil
}

// Concat concatenates vals into a single value; vals[0] contributes the
// least-significant segment.
func Concat(vals []Value) Value {
	total := 0
	for _, v := range vals {
		total += v.width
	}
	bits := make([]Bit, total)
	pos := 0
	for _, v := range vals {
		for i := 0; i < v.width; i++ {
			bits[pos+i] = v.BitAt(i)
		}
		pos += v.width
	}
	return FromBits(bits)
}

// Replicate concatenates n copies of a. n must be >= 1.
func (a Value) Replicate(n int) (Value, error) {
	if n <= 0 {
		return Value{}, ErrInvalidMultiplier
	}
	vals := make([]Value, n)
	for i := range vals {
		vals[i] = a
	}
	return Concat(vals), nil
}

// Swizzle concatenates vals MSB-first: vals[0] becomes the most significant
// segment of the result.
func Swizzle(vals []Value) Value {
	rev := make([]Value, len(vals))
	for i, v := range vals {
		rev[len(vals)-1-i] = v
	}
	return Concat(rev)
}

// Rswizzle concatenates vals LSB-first: vals[0] becomes the least
// significant segment of the result. Rswizzle(Swizzle(splitOf(x))) returns
// x's segments in reverse order, matching the invariant
// rswizzle(swizzle(xs)) == reversed(xs).
func Rswizzle(vals []Value) Value {
	return Concat(vals)
}
