package value

// bool1 converts a Go bool into a single-bit Value.
func bool1(b bool) Value {
	if b {
		return FromBits([]Bit{Bit1})
	}
	return FromBits([]Bit{Bit0})
}

// Eq returns a 1-bit value: 1 if a equals b bit-for-bit (width-0 values are
// always equal), x if either operand is invalid.
func (a Value) Eq(b Value) (Value, error) {
	if err := requireSameWidth("==", a, b); err != nil {
		return Value{}, err
	}
	if a.width == 0 {
		return bool1(true), nil
	}
	if !a.IsValid() || !b.IsValid() {
		return AllX(1), nil
	}
	return bool1(a.toBig().Cmp(b.toBig()) == 0), nil
}

// Neq returns the logical complement of Eq.
func (a Value) Neq(b Value) (Value, error) {
	eq, err := a.Eq(b)
	if err != nil {
		return Value{}, err
	}
	if !eq.IsValid() {
		return eq, nil
	}
	return bool1(eq.BitAt(0) == Bit0), nil
}

func (a Value) compare(op string, b Value, f func(cmp int) bool) (Value, error) {
	if err := requireSameWidth(op, a, b); err != nil {
		return Value{}, err
	}
	if !a.IsValid() || !b.IsValid() {
		return AllX(1), nil
	}
	return bool1(f(a.toBig().Cmp(b.toBig()))), nil
}

// Lt returns 1 if a < b (unsigned), x if either operand is invalid.
func (a Value) Lt(b Value) (Value, error) {
	return a.compare("<", b, func(cmp int) bool { return cmp < 0 })
}

// Lte returns 1 if a <= b (unsigned), x if either operand is invalid.
func (a Value) Lte(b Value) (Value, error) {
	return a.compare("<=", b, func(cmp int) bool { return cmp <= 0 })
}

// Gt returns 1 if a > b (unsigned), x if either operand is invalid.
func (a Value) Gt(b Value) (Value, error) {
	return a.compare(">", b, func(cmp int) bool { return cmp > 0 })
}

// Gte returns 1 if a >= b (unsigned), x if either operand is invalid.
func (a Value) Gte(b Value) (Value, error) {
	return a.compare(">=", b, func(cmp int) bool { return cmp >= 0 })
}
