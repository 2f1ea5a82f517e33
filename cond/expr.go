// Package cond implements the Conditional AST: the closed set of node kinds
// that may be evaluated inside a Combinational or Sequential block
// (ConditionalAssign, If, IfBlock, Case, and CaseZ, the last modeled as a
// Case with its Wildcard flag set) plus the expression trees those nodes
// read from. A single interpreter (Run, in eval.go) walks the closed set
// rather than dispatching through per-kind virtual methods.
package cond

import (
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// Context supplies the read/write semantics an Expr tree and a Node list
// are evaluated against. Plain Combinational blocks read straight from a
// signal's live value and write through signal.Logic.Put; the SSA variant
// instead tracks per-signal versions so that a write is visible to later
// reads within the same pass.
type Context interface {
	Read(sig *signal.Logic) value.Value
	Write(sig *signal.Logic, v value.Value) error
}

// Expr is any node of the expression trees read by conditional assignments
// and branch conditions.
type Expr interface {
	Eval(ctx Context) value.Value
	Width() int
	// Reads returns every Logic this expression (transitively) depends on,
	// for sensitivity-list construction.
	Reads() []*signal.Logic
	// Name returns a synthesizer-visible name for this node if the user
	// gave it one (e.g. by binding it to a named Logic), or "" if it is an
	// anonymous operator node eligible for inlining.
	Name() string
}

// Ref is a leaf expression reading a live signal.
type Ref struct{ Sig *signal.Logic }

func (r Ref) Eval(ctx Context) value.Value   { return ctx.Read(r.Sig) }
func (r Ref) Width() int                     { return r.Sig.Width() }
func (r Ref) Reads() []*signal.Logic         { return []*signal.Logic{r.Sig} }
func (r Ref) Name() string                   { return r.Sig.Name() }

// Lit is a leaf expression holding a constant value.
type Lit struct{ Val value.Value }

func (l Lit) Eval(ctx Context) value.Value { return l.Val }
func (l Lit) Width() int                   { return l.Val.Width() }
func (l Lit) Reads() []*signal.Logic       { return nil }
func (l Lit) Name() string                 { return "" }

// BinOpKind enumerates the binary operators an expression node may apply.
type BinOpKind byte

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	OpLshr
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
)

// BinOp applies a binary operator to two sub-expressions of equal width
// (equal width is required by every op listed except the shifts, where
// Right's width is irrelevant to the result width).
type BinOp struct {
	Op          BinOpKind
	Left, Right Expr
}

func (b BinOp) Width() int {
	switch b.Op {
	case OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
		return 1
	default:
		return b.Left.Width()
	}
}

func (b BinOp) Reads() []*signal.Logic {
	return append(append([]*signal.Logic{}, b.Left.Reads()...), b.Right.Reads()...)
}

func (b BinOp) Name() string { return "" }

func (b BinOp) Eval(ctx Context) value.Value {
	l := b.Left.Eval(ctx)
	r := b.Right.Eval(ctx)
	var out value.Value
	var err error
	switch b.Op {
	case OpAdd:
		out, err = l.Add(r)
	case OpSub:
		out, err = l.Sub(r)
	case OpMul:
		out, err = l.Mul(r)
	case OpDiv:
		out, err = l.Div(r)
	case OpMod:
		out, err = l.Mod(r)
	case OpAnd:
		out, err = l.And(r)
	case OpOr:
		out, err = l.Or(r)
	case OpXor:
		out, err = l.Xor(r)
	case OpShl:
		return l.Shl(r)
	case OpShr:
		return l.Shr(r)
	case OpLshr:
		return l.Lshr(r)
	case OpEq:
		out, err = l.Eq(r)
	case OpNeq:
		out, err = l.Neq(r)
	case OpLt:
		out, err = l.Lt(r)
	case OpLte:
		out, err = l.Lte(r)
	case OpGt:
		out, err = l.Gt(r)
	case OpGte:
		out, err = l.Gte(r)
	}
	if err != nil {
		return value.AllX(b.Width())
	}
	return out
}

// UnaryOpKind enumerates the unary operators an expression node may apply.
type UnaryOpKind byte

const (
	OpNot UnaryOpKind = iota
	OpAndReduce
	OpOrReduce
	OpXorReduce
)

// UnaryOp applies a unary operator to a sub-expression.
type UnaryOp struct {
	Op UnaryOpKind
	X  Expr
}

func (u UnaryOp) Width() int {
	if u.Op == OpNot {
		return u.X.Width()
	}
	return 1
}
func (u UnaryOp) Reads() []*signal.Logic { return u.X.Reads() }
func (u UnaryOp) Name() string           { return "" }
func (u UnaryOp) Eval(ctx Context) value.Value {
	v := u.X.Eval(ctx)
	switch u.Op {
	case OpNot:
		return v.Not()
	case OpAndReduce:
		return v.AndReduce()
	case OpOrReduce:
		return v.OrReduce()
	case OpXorReduce:
		return v.XorReduce()
	default:
		return value.AllX(u.Width())
	}
}

// Mux is a ternary conditional expression: Cond ? Then : Else.
type Mux struct {
	Cond, Then, Else Expr
}

func (m Mux) Width() int { return m.Then.Width() }
func (m Mux) Reads() []*signal.Logic {
	return append(append(m.Cond.Reads(), m.Then.Reads()...), m.Else.Reads()...)
}
func (m Mux) Name() string { return "" }
func (m Mux) Eval(ctx Context) value.Value {
	c := m.Cond.Eval(ctx)
	if !c.IsValid() {
		return value.AllX(m.Width())
	}
	if c.BitAt(0) == value.Bit1 {
		return m.Then.Eval(ctx)
	}
	return m.Else.Eval(ctx)
}

// Slice selects bits [Hi:Lo] (inclusive, Value.Slice conventions) of X.
type Slice struct {
	X      Expr
	Hi, Lo int
}

func (s Slice) Width() int {
	hi, lo := s.Hi, s.Lo
	if hi < lo {
		hi, lo = lo, hi
	}
	return hi - lo + 1
}
func (s Slice) Reads() []*signal.Logic { return s.X.Reads() }
func (s Slice) Name() string           { return "" }
func (s Slice) Eval(ctx Context) value.Value {
	v, err := s.X.Eval(ctx).Slice(s.Hi, s.Lo)
	if err != nil {
		return value.AllX(s.Width())
	}
	return v
}

// Concat concatenates Parts; Parts[0] contributes the least-significant
// segment, matching value.Concat.
type Concat struct{ Parts []Expr }

func (c Concat) Width() int {
	w := 0
	for _, p := range c.Parts {
		w += p.Width()
	}
	return w
}
func (c Concat) Reads() []*signal.Logic {
	var out []*signal.Logic
	for _, p := range c.Parts {
		out = append(out, p.Reads()...)
	}
	return out
}
func (c Concat) Name() string { return "" }
func (c Concat) Eval(ctx Context) value.Value {
	vals := make([]value.Value, len(c.Parts))
	for i, p := range c.Parts {
		vals[i] = p.Eval(ctx)
	}
	return value.Concat(vals)
}

// Extend zero- or sign-extends X to ToWidth bits.
type Extend struct {
	X       Expr
	ToWidth int
	Signed  bool
}

func (e Extend) Width() int             { return e.ToWidth }
func (e Extend) Reads() []*signal.Logic { return e.X.Reads() }
func (e Extend) Name() string           { return "" }
func (e Extend) Eval(ctx Context) value.Value {
	v := e.X.Eval(ctx)
	var out value.Value
	var err error
	if e.Signed {
		out, err = v.SignExtend(e.ToWidth)
	} else {
		out, err = v.ZeroExtend(e.ToWidth)
	}
	if err != nil {
		return value.AllX(e.ToWidth)
	}
	return out
}
