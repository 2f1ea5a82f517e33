package value

// shiftAmount returns the shift distance encoded by amt as a plain int, or
// ok=false if amt is invalid (any x/z bit) or exceeds the practical range.
func shiftAmount(amt Value) (int, bool) {
	if !amt.IsValid() {
		return 0, false
	}
	n, err := amt.ToUnsigned()
	if err != nil || n > 1<<20 {
		return 0, false
	}
	return int(n), true
}

// Shl returns a shifted left by the unsigned amount encoded in amt,
// filling vacated low bits with 0. An invalid shift amount yields all-x.
func (a Value) Shl(amt Value) Value {
	n, ok := shiftAmount(amt)
	if !ok {
		return AllX(a.width)
	}
	return a.shlConst(n)
}

func (a Value) shlConst(n int) Value {
	bits := make([]Bit, a.width)
	for i := 0; i < a.width; i++ {
		if i-n < 0 {
			bits[i] = Bit0
		} else {
			bits[i] = a.BitAt(i - n)
		}
	}
	return FromBits(bits)
}

// Shr returns a arithmetically shifted right (sign-replicating) by the
// unsigned amount encoded in amt. An invalid shift amount yields all-x; an
// x or z sign bit is replicated into the vacated high bits like any other.
func (a Value) Shr(amt Value) Value {
	n, ok := shiftAmount(amt)
	if !ok {
		return AllX(a.width)
	}
	sign := Bit0
	if a.width > 0 {
		sign = a.BitAt(a.width - 1)
	}
	bits := make([]Bit, a.width)
	for i := 0; i < a.width; i++ {
		src := i + n
		if src >= a.width {
			bits[i] = sign
		} else {
			bits[i] = a.BitAt(src)
		}
	}
	return FromBits(bits)
}

// Lshr returns a logically shifted right by the unsigned amount encoded in
// amt, filling vacated high bits with 0. An invalid shift amount yields
// all-x.
func (a Value) Lshr(amt Value) Value {
	n, ok := shiftAmount(amt)
	if !ok {
		return AllX(a.width)
	}
	bits := make([]Bit, a.width)
	for i := 0; i < a.width; i++ {
		src := i + n
		if src >= a.width {
			bits[i] = Bit0
		} else {
			bits[i] = a.BitAt(src)
		}
	}
	return FromBits(bits)
}
