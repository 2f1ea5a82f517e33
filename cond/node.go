package cond

import "github.com/pdxjjb/rivulet/signal"

// Node is any statement that may appear in the body of a Combinational or
// Sequential block. The set is closed: ConditionalAssign (Assign), If,
// IfBlock (chained if/else-if/else), and Case (which also represents CaseZ
// via its Wildcard field).
type Node interface {
	node()
}

// Assign is a conditional assignment ("<" in the surface syntax, as
// distinct from the continuous "<=" connection handled by signal.Connect).
type Assign struct {
	Target *signal.Logic
	Source Expr
}

func (Assign) node() {}

// IfBranch is one arm of an IfBlock: Cond's Body runs when Cond evaluates
// to logic-1 and no earlier branch in the enclosing IfBlock matched.
type IfBranch struct {
	Cond Expr
	Body []Node
}

// IfBlock is a chain of if / else-if / ... / else branches. A final branch
// with a nil Cond is the unconditional else; at most one such branch may
// appear, and it must be last.
type IfBlock struct {
	Branches []IfBranch
}

func (IfBlock) node() {}

// If is sugar for the common two-branch IfBlock; it is a distinct type
// (rather than producing an IfBlock literal) so that code constructing
// trees can use the simpler shape, but the interpreter treats it as a
// two-branch IfBlock.
type If struct {
	Cond       Expr
	Then, Else []Node
}

func (If) node() {}

// CaseKind selects how a Case resolves multiple simultaneous matches.
type CaseKind byte

const (
	// CaseNone is ordinary SystemVerilog case: the first matching item
	// wins, and simultaneous matches elsewhere are not an error.
	CaseNone CaseKind = iota
	// CasePriority is equivalent to CaseNone for matching purposes, but
	// documents that item order was chosen deliberately to express
	// priority (as opposed to the items being meant to be mutually
	// exclusive).
	CasePriority
	// CaseUnique requires at most one item to match (none runs Default);
	// if more than one does, every signal the case could have driven is
	// forced to all-X.
	CaseUnique
)

// CaseItem is one branch of a Case: Body runs when Select matches Match.
type CaseItem struct {
	Match Expr
	Body  []Node
}

// Case implements both "case" and "casez": when Wildcard is true, a z-bit
// in an item's Match expression is a don't-care position exempt from the
// "any x/z compared bit forces Undefined" rule.
type Case struct {
	Select  Expr
	Items   []CaseItem
	Default []Node
	Kind    CaseKind
	// Wildcard marks this Case as a casez: z-bits in an item's Match value
	// are wildcards rather than forcing an undefined comparison.
	Wildcard bool
}

func (Case) node() {}
