package value

import (
	"math/big"

	"github.com/pkg/errors"
)

// requireSameWidth returns a wrapped ErrWidthMismatch unless a and b share a
// width.
func requireSameWidth(op string, a, b Value) error {
	if a.width != b.width {
		return errors.Wrapf(ErrWidthMismatch, "%s: %d bits vs %d bits", op, a.width, b.width)
	}
	return nil
}

// toBig returns the unsigned big.Int interpretation of v. Callers must have
// already confirmed v.IsValid().
func (v Value) toBig() *big.Int {
	n := new(big.Int)
	for i := v.width - 1; i >= 0; i-- {
		n.Lsh(n, 1)
		if v.bits.Test(uint(i)) {
			n.Or(n, big.NewInt(1))
		}
	}
	return n
}

// modulus returns 2^width.
func (v Value) modulus() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(v.width))
}

// Add returns (a + b) mod 2^w; all-x of width w if either operand is invalid.
func (a Value) Add(b Value) (Value, error) {
	return a.arith("+", b, func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) })
}

// Sub returns (a - b) mod 2^w; all-x of width w if either operand is invalid.
func (a Value) Sub(b Value) (Value, error) {
	return a.arith("-", b, func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) })
}

// Mul returns (a * b) mod 2^w; all-x of width w if either operand is invalid.
func (a Value) Mul(b Value) (Value, error) {
	return a.arith("*", b, func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) })
}

// Div returns a / b (unsigned, truncating); all-x of width w if either
// operand is invalid or b is zero.
func (a Value) Div(b Value) (Value, error) {
	if err := requireSameWidth("/", a, b); err != nil {
		return Value{}, err
	}
	if !a.IsValid() || !b.IsValid() || b.toBig().Sign() == 0 {
		return AllX(a.width), nil
	}
	q := new(big.Int).Div(a.toBig(), b.toBig())
	return FromBigInt(a.width, q), nil
}

// Mod returns a % b (unsigned); all-x of width w if either operand is
// invalid or b is zero.
func (a Value) Mod(b Value) (Value, error) {
	if err := requireSameWidth("%", a, b); err != nil {
		return Value{}, err
	}
	if !a.IsValid() || !b.IsValid() || b.toBig().Sign() == 0 {
		return AllX(a.width), nil
	}
	m := new(big.Int).Mod(a.toBig(), b.toBig())
	return FromBigInt(a.width, m), nil
}

func (a Value) arith(op string, b Value, f func(x, y *big.Int) *big.Int) (Value, error) {
	if err := requireSameWidth(op, a, b); err != nil {
		return Value{}, err
	}
	if !a.IsValid() || !b.IsValid() {
		return AllX(a.width), nil
	}
	r := f(a.toBig(), b.toBig())
	r.Mod(r, a.modulus())
	if r.Sign() < 0 {
		r.Add(r, a.modulus())
	}
	return FromBigInt(a.width, r), nil
}
