package synth

import (
	"fmt"
	"strings"

	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
)

// resolver maps a live Logic to its emitted identifier within the module
// currently being synthesized.
type resolver func(*signal.Logic) string

// exprText renders e as a single SystemVerilog expression. Anonymous
// operator nodes are always emitted in place rather than hoisted to a
// named intermediate wire, which gives unnamed single-consumer expressions
// the effect of inlining without a separate dedup pass: there is never a
// materialized wire to hoist out of in the first place.
func exprText(e cond.Expr, resolve resolver) string {
	switch t := e.(type) {
	case cond.Ref:
		return resolve(t.Sig)
	case cond.Lit:
		return t.Val.WithWidthAnnotation('h')
	case cond.BinOp:
		return fmt.Sprintf("(%s %s %s)", exprText(t.Left, resolve), binOpSymbol(t.Op), exprText(t.Right, resolve))
	case cond.UnaryOp:
		return unaryOpText(t, resolve)
	case cond.Mux:
		return fmt.Sprintf("(%s ? %s : %s)", exprText(t.Cond, resolve), exprText(t.Then, resolve), exprText(t.Else, resolve))
	case cond.Slice:
		base := exprText(t.X, resolve)
		if t.X.Width() == 1 {
			return base
		}
		if t.Hi == t.Lo {
			return fmt.Sprintf("%s[%d]", base, t.Hi)
		}
		return fmt.Sprintf("%s[%d:%d]", base, t.Hi, t.Lo)
	case cond.Concat:
		parts := make([]string, len(t.Parts))
		for i, p := range t.Parts {
			// Concat's Parts[0] is the least-significant segment; SV
			// concatenation lists most-significant segment first.
			parts[len(t.Parts)-1-i] = exprText(p, resolve)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case cond.Extend:
		return extendText(t, resolve)
	default:
		return "/* unsupported expression */"
	}
}

func binOpSymbol(op cond.BinOpKind) string {
	switch op {
	case cond.OpAdd:
		return "+"
	case cond.OpSub:
		return "-"
	case cond.OpMul:
		return "*"
	case cond.OpDiv:
		return "/"
	case cond.OpMod:
		return "%"
	case cond.OpAnd:
		return "&"
	case cond.OpOr:
		return "|"
	case cond.OpXor:
		return "^"
	case cond.OpShl:
		return "<<"
	case cond.OpShr:
		return ">>>"
	case cond.OpLshr:
		return ">>"
	case cond.OpEq:
		return "=="
	case cond.OpNeq:
		return "!="
	case cond.OpLt:
		return "<"
	case cond.OpLte:
		return "<="
	case cond.OpGt:
		return ">"
	case cond.OpGte:
		return ">="
	default:
		return "?"
	}
}

func unaryOpText(u cond.UnaryOp, resolve resolver) string {
	x := exprText(u.X, resolve)
	switch u.Op {
	case cond.OpNot:
		return fmt.Sprintf("(~%s)", x)
	case cond.OpAndReduce:
		return fmt.Sprintf("(&%s)", x)
	case cond.OpOrReduce:
		return fmt.Sprintf("(|%s)", x)
	case cond.OpXorReduce:
		return fmt.Sprintf("(^%s)", x)
	default:
		return "/* unsupported unary op */"
	}
}

// extendText lowers a zero/sign extend to the replication-and-concatenation
// form SystemVerilog requires in place of a dedicated extend operator.
func extendText(e cond.Extend, resolve resolver) string {
	x := exprText(e.X, resolve)
	from := e.X.Width()
	grow := e.ToWidth - from
	if grow <= 0 {
		return x
	}
	if e.Signed {
		return fmt.Sprintf("{{%d{%s[%d]}}, %s}", grow, x, from-1, x)
	}
	return fmt.Sprintf("{{%d{1'b0}}, %s}", grow, x)
}
