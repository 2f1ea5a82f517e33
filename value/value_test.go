package value

import "testing"

func TestAddWidthAndSum(t *testing.T) {
	a := FromInt(8, 0x7F)
	b := FromInt(8, 1)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Width() != 8 {
		t.Fatalf("width = %d, want 8", sum.Width())
	}
	got, _ := sum.ToUnsigned()
	if got != 0x80 {
		t.Fatalf("sum = %#x, want 0x80", got)
	}
}

func TestAddWraps(t *testing.T) {
	a := FromInt(8, 0xFF)
	b := FromInt(8, 1)
	sum, _ := a.Add(b)
	got, _ := sum.ToUnsigned()
	if got != 0 {
		t.Fatalf("sum = %#x, want 0", got)
	}
}

func TestXorSelf(t *testing.T) {
	valid := FromInt(8, 0x5A)
	r, _ := valid.Xor(valid)
	if !r.IsValid() {
		t.Fatalf("xor of valid value with itself should be valid, got %s", r)
	}
	for i := 0; i < r.Width(); i++ {
		if r.BitAt(i) != Bit0 {
			t.Fatalf("xor-self bit %d = %s, want 0", i, r.BitAt(i))
		}
	}

	withX, _ := FromString("1x01")
	r2, _ := withX.Xor(withX)
	if r2.IsValid() {
		t.Fatalf("xor-self of value containing x should be invalid")
	}
}

func TestZeroExtendPreservesUnsigned(t *testing.T) {
	a := FromInt(4, 0xB) // 1011
	ext, err := a.ZeroExtend(8)
	if err != nil {
		t.Fatalf("ZeroExtend: %v", err)
	}
	got, _ := ext.ToUnsigned()
	if got != 0xB {
		t.Fatalf("zero-extended value = %#x, want 0xB", got)
	}
}

func TestSignExtendPreservesSigned(t *testing.T) {
	a := FromInt(4, -1) // 1111, i.e. -1 in 4 bits
	ext, err := a.SignExtend(8)
	if err != nil {
		t.Fatalf("SignExtend: %v", err)
	}
	got, _ := ext.ToSigned()
	if got != -1 {
		t.Fatalf("sign-extended value = %d, want -1", got)
	}
}

func TestSliceReversesWhenHiLessThanLo(t *testing.T) {
	a, _ := FromString("1100")
	normal, err := a.Slice(3, 0)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if !normal.Equal(a) {
		t.Fatalf("Slice(3,0) = %s, want %s", normal, a)
	}
	reversed, err := a.Slice(0, 3)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if !reversed.Equal(a.Reversed()) {
		t.Fatalf("Slice(0,3) = %s, want reversed %s", reversed, a.Reversed())
	}
}

func TestSliceWidth(t *testing.T) {
	a := FromInt(8, 0xAB)
	s, err := a.Slice(5, 2)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if s.Width() != 4 {
		t.Fatalf("width = %d, want 4", s.Width())
	}
}

func TestRswizzleSwizzleRoundTrip(t *testing.T) {
	xs := []Value{FromInt(4, 1), FromInt(4, 2), FromInt(4, 3)}
	swizzled := Swizzle(xs)
	// Splitting swizzled back into 4-bit chunks, LSB chunk first, and
	// re-concatenating with Rswizzle should reproduce xs in reverse.
	chunks := make([]Value, len(xs))
	for i := range chunks {
		lo := i * 4
		c, _ := swizzled.Slice(lo+3, lo)
		chunks[i] = c
	}
	rswizzled := Rswizzle(chunks)
	reversedXs := make([]Value, len(xs))
	for i, v := range xs {
		reversedXs[len(xs)-1-i] = v
	}
	want := Concat(reversedXs)
	if !rswizzled.Equal(want) {
		t.Fatalf("rswizzle(swizzle(xs)) = %s, want %s", rswizzled, want)
	}
}

func TestEqualityConsistentAcrossConstructions(t *testing.T) {
	a := FromInt(8, 0x2A)
	b, err := FromString("00101010")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("%s != %s", a, b)
	}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %s vs %s", a.Key(), b.Key())
	}
}

func TestWidthZeroValue(t *testing.T) {
	a := Zero(0)
	b := Zero(0)
	if !a.Equal(b) {
		t.Fatalf("two width-0 values should be equal")
	}
	eq, err := a.Eq(b)
	if err != nil {
		t.Fatalf("Eq: %v", err)
	}
	bit, _ := eq.ToUnsigned()
	if bit != 1 {
		t.Fatalf("0-width equality = %d, want 1", bit)
	}
	nonZero := Zero(1)
	if a.Equal(nonZero) {
		t.Fatalf("width-0 value should not equal a width-1 value")
	}
}

func TestAddInvalidOperandPropagates(t *testing.T) {
	// Four-valued relational/arithmetic propagation: any invalid operand
	// yields an all-x result of the correct width.
	a, _ := FromString("10x1")
	b := FromInt(4, 3)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.IsValid() {
		t.Fatalf("sum of invalid operand should be invalid")
	}
	if sum.Width() != 4 {
		t.Fatalf("width = %d, want 4", sum.Width())
	}
}

func TestDivByZero(t *testing.T) {
	a := FromInt(8, 10)
	b := Zero(8)
	q, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if q.IsValid() {
		t.Fatalf("division by zero should yield all-x")
	}
}

func TestReplicateRejectsNonPositive(t *testing.T) {
	a := FromInt(4, 5)
	if _, err := a.Replicate(0); err == nil {
		t.Fatalf("Replicate(0) should fail")
	}
	r, err := a.Replicate(3)
	if err != nil {
		t.Fatalf("Replicate(3): %v", err)
	}
	if r.Width() != 12 {
		t.Fatalf("width = %d, want 12", r.Width())
	}
}
