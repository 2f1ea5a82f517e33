package synth

import (
	"fmt"

	"github.com/pdxjjb/rivulet/cond"
)

// stmtLines lowers nodes to indented SystemVerilog statement text.
// assignOp is "=" inside always_comb and "<=" inside always_ff, matching
// the conventional blocking/non-blocking split between the two block
// kinds.
func stmtLines(nodes []cond.Node, resolve resolver, assignOp, indent string) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, stmtOne(n, resolve, assignOp, indent)...)
	}
	return out
}

func stmtOne(n cond.Node, resolve resolver, assignOp, indent string) []string {
	switch t := n.(type) {
	case cond.Assign:
		return []string{fmt.Sprintf("%s%s %s %s;", indent, resolve(t.Target), assignOp, exprText(t.Source, resolve))}
	case cond.If:
		return ifBlockLines(cond.IfBlock{Branches: []cond.IfBranch{
			{Cond: t.Cond, Body: t.Then},
			{Cond: nil, Body: t.Else},
		}}, resolve, assignOp, indent)
	case cond.IfBlock:
		return ifBlockLines(t, resolve, assignOp, indent)
	case cond.Case:
		return caseLines(t, resolve, assignOp, indent)
	default:
		return nil
	}
}

func ifBlockLines(b cond.IfBlock, resolve resolver, assignOp, indent string) []string {
	var out []string
	for i, branch := range b.Branches {
		switch {
		case branch.Cond == nil:
			out = append(out, indent+"end else begin")
		case i == 0:
			out = append(out, fmt.Sprintf("%sif (%s) begin", indent, exprText(branch.Cond, resolve)))
		default:
			out = append(out, fmt.Sprintf("%send else if (%s) begin", indent, exprText(branch.Cond, resolve)))
		}
		out = append(out, stmtLines(branch.Body, resolve, assignOp, indent+"  ")...)
	}
	out = append(out, indent+"end")
	return out
}

func caseLines(c cond.Case, resolve resolver, assignOp, indent string) []string {
	keyword := "case"
	if c.Wildcard {
		keyword = "casez"
	}
	prefix := ""
	switch c.Kind {
	case cond.CaseUnique:
		prefix = "unique "
	case cond.CasePriority:
		prefix = "priority "
	}
	out := []string{fmt.Sprintf("%s%s%s (%s)", indent, prefix, keyword, exprText(c.Select, resolve))}
	for _, item := range c.Items {
		out = append(out, fmt.Sprintf("%s  %s: begin", indent, exprText(item.Match, resolve)))
		out = append(out, stmtLines(item.Body, resolve, assignOp, indent+"    ")...)
		out = append(out, indent+"  end")
	}
	if len(c.Default) > 0 {
		out = append(out, indent+"  default: begin")
		out = append(out, stmtLines(c.Default, resolve, assignOp, indent+"    ")...)
		out = append(out, indent+"  end")
	}
	out = append(out, indent+"endcase")
	return out
}
