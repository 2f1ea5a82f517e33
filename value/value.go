// Package value implements the four-valued logic algebra: immutable
// bit-vectors over {0, 1, x, z} with arithmetic, bitwise, relational, and
// slicing semantics.
package value

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/willf/bitset"
)

// Bit is a single four-valued logic state.
type Bit byte

const (
	Bit0 Bit = iota
	Bit1
	BitX
	BitZ
)

func (b Bit) String() string {
	switch b {
	case Bit0:
		return "0"
	case Bit1:
		return "1"
	case BitX:
		return "x"
	case BitZ:
		return "z"
	default:
		return "?"
	}
}

// known reports whether b is 0 or 1.
func (b Bit) known() bool { return b == Bit0 || b == Bit1 }

// planes encodes a Bit as (bitPlane, invalidPlane):
//
//	invalid=0, bit=0 -> 0
//	invalid=0, bit=1 -> 1
//	invalid=1, bit=0 -> x
//	invalid=1, bit=1 -> z
func (b Bit) planes() (bit, invalid bool) {
	switch b {
	case Bit0:
		return false, false
	case Bit1:
		return true, false
	case BitX:
		return false, true
	case BitZ:
		return true, true
	default:
		return false, true
	}
}

func bitFromPlanes(bit, invalid bool) Bit {
	switch {
	case !invalid && !bit:
		return Bit0
	case !invalid && bit:
		return Bit1
	case invalid && !bit:
		return BitX
	default:
		return BitZ
	}
}

// Value is an immutable, fixed-width four-valued bit-vector. The zero Value
// is a legal width-0 value. Bit index 0 is the least significant bit.
type Value struct {
	width   int
	bits    *bitset.BitSet // meaningful value bit, see Bit.planes
	invalid *bitset.BitSet // set wherever the bit is x or z
}

// Width returns the fixed width of v in bits.
func (v Value) Width() int { return v.width }

func newPlanes(width int) (*bitset.BitSet, *bitset.BitSet) {
	if width <= 0 {
		return bitset.New(0), bitset.New(0)
	}
	return bitset.New(uint(width)), bitset.New(uint(width))
}

// Zero returns the width-w value whose bits are all 0.
func Zero(width int) Value {
	b, inv := newPlanes(width)
	return Value{width: width, bits: b, invalid: inv}
}

// Fill returns the width-w value whose bits are all set to bit.
func Fill(width int, bit Bit) Value {
	b, inv := newPlanes(width)
	bv, iv := bit.planes()
	if bv || iv {
		for i := uint(0); i < uint(width); i++ {
			if bv {
				b.Set(i)
			}
			if iv {
				inv.Set(i)
			}
		}
	}
	return Value{width: width, bits: b, invalid: inv}
}

// One returns the width-w value equal to the unsigned integer 1.
func One(width int) Value {
	v := Zero(width)
	if width > 0 {
		v.bits.Set(0)
	}
	return v
}

// AllX returns the width-w value whose bits are all x.
func AllX(width int) Value { return Fill(width, BitX) }

// AllZ returns the width-w value whose bits are all z.
func AllZ(width int) Value { return Fill(width, BitZ) }

// FromBits builds a value from a list of single bits; index 0 is the least
// significant bit.
func FromBits(bits []Bit) Value {
	v := Zero(len(bits))
	for i, bit := range bits {
		bv, iv := bit.planes()
		if bv {
			v.bits.Set(uint(i))
		}
		if iv {
			v.invalid.Set(uint(i))
		}
	}
	return v
}

// FromInt builds a width-bit value from a signed integer, sign-extending or
// truncating as needed to fit width.
func FromInt(width int, n int64) Value {
	v := Zero(width)
	for i := 0; i < width; i++ {
		if (n>>uint(i))&1 != 0 {
			v.bits.Set(uint(i))
		}
	}
	return v
}

// FromUint builds a width-bit value from an unsigned integer, zero-extending
// or truncating as needed to fit width.
func FromUint(width int, n uint64) Value {
	v := Zero(width)
	for i := 0; i < width; i++ {
		if (n>>uint(i))&1 != 0 {
			v.bits.Set(uint(i))
		}
	}
	return v
}

// FromBigInt builds a width-bit value from an arbitrary-precision unsigned
// integer, for values wider than 64 bits.
func FromBigInt(width int, n *big.Int) Value {
	v := Zero(width)
	for i := 0; i < width; i++ {
		if n.Bit(i) != 0 {
			v.bits.Set(uint(i))
		}
	}
	return v
}

// ErrConstruction indicates a malformed value literal.
var ErrConstruction = errors.New("rivulet/value: construction error")

// FromString parses a binary/x/z literal such as "10xz" or "1010_0101"
// (underscores are ignored) with index 0 taken as the rightmost character
// of s (conventional MSB...LSB reading order) into a value of len(s) bits
// (after stripping underscores).
func FromString(s string) (Value, error) {
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return Zero(0), nil
	}
	bits := make([]Bit, len(s))
	for i, r := range s {
		pos := len(s) - 1 - i // s is MSB-first; Bit index 0 is LSB
		switch r {
		case '0':
			bits[pos] = Bit0
		case '1':
			bits[pos] = Bit1
		case 'x', 'X':
			bits[pos] = BitX
		case 'z', 'Z':
			bits[pos] = BitZ
		default:
			return Value{}, errors.Wrapf(ErrConstruction, "invalid character %q in value literal %q", r, s)
		}
	}
	return FromBits(bits), nil
}

// BitAt returns the bit at index i (0 = least significant).
func (v Value) BitAt(i int) Bit {
	if i < 0 || i >= v.width {
		return BitX
	}
	return bitFromPlanes(v.bits.Test(uint(i)), v.invalid.Test(uint(i)))
}

// IsValid reports whether every bit of v is 0 or 1.
func (v Value) IsValid() bool {
	return v.invalid == nil || v.invalid.None()
}

// clone returns a deep copy of v's planes, safe to mutate.
func (v Value) clone() Value {
	nb, ninv := newPlanes(v.width)
	nb.InPlaceUnion(v.bits)
	ninv.InPlaceUnion(v.invalid)
	return Value{width: v.width, bits: nb, invalid: ninv}
}

// Equal reports whether v and other have the same width and identical bit
// patterns (including width-0 values, which equal only each other).
func (v Value) Equal(other Value) bool {
	if v.width != other.width {
		return false
	}
	if v.width == 0 {
		return true
	}
	return v.bits.Equal(other.bits) && v.invalid.Equal(other.invalid)
}

// Key returns a string uniquely identifying v's width and bit contents,
// suitable as a map key (Go has no built-in hash-by-value for this shape).
func (v Value) Key() string {
	var sb strings.Builder
	sb.WriteString(v.String())
	sb.WriteByte('#')
	sb.WriteString(itoa(v.width))
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// String renders v MSB-first as a string of '0'/'1'/'x'/'z' characters.
func (v Value) String() string {
	if v.width == 0 {
		return "<0-bits>"
	}
	var sb strings.Builder
	sb.Grow(v.width)
	for i := v.width - 1; i >= 0; i-- {
		sb.WriteString(v.BitAt(i).String())
	}
	return sb.String()
}
