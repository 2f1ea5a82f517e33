package signal

import "github.com/pdxjjb/rivulet/value"

// Slice returns the current value of l sliced [hi:lo], applying
// value.Value's slicing rules (negative indices, reversed ranges) to a live
// signal's present value.
func (l *Logic) Slice(hi, lo int) (value.Value, error) {
	return l.Value().Slice(hi, lo)
}

// Reversed returns l's current value with bit order reversed.
func (l *Logic) Reversed() value.Value {
	return l.Value().Reversed()
}

// Swizzle concatenates the current values of sigs MSB-first: sigs[0]
// becomes the most significant segment.
func Swizzle(sigs []*Logic) value.Value {
	vals := make([]value.Value, len(sigs))
	for i, s := range sigs {
		vals[i] = s.Value()
	}
	return value.Swizzle(vals)
}

// Rswizzle concatenates the current values of sigs LSB-first: sigs[0]
// becomes the least significant segment.
func Rswizzle(sigs []*Logic) value.Value {
	vals := make([]value.Value, len(sigs))
	for i, s := range sigs {
		vals[i] = s.Value()
	}
	return value.Rswizzle(vals)
}
