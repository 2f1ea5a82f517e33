package cond

import (
	"testing"

	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// directCtx is the simplest Context: reads and writes go straight through
// to the live signal, matching how a plain Combinational block evaluates.
type directCtx struct{}

func (directCtx) Read(sig *signal.Logic) value.Value { return sig.Value() }
func (directCtx) Write(sig *signal.Logic, v value.Value) error {
	return sig.Put(v)
}

func TestAssignWritesThroughContext(t *testing.T) {
	out := signal.New("out", 4)
	lit := Lit{Val: value.FromInt(4, 9)}
	if err := Run([]Node{Assign{Target: out, Source: lit}}, directCtx{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Value().Equal(value.FromInt(4, 9)) {
		t.Fatalf("out = %s, want 9", out.Value())
	}
}

func TestIfUndefinedConditionDrivesAllX(t *testing.T) {
	out := signal.New("out", 4)
	sel := signal.New("sel", 1)
	sel.Put(value.AllX(1))
	n := If{
		Cond: Ref{Sig: sel},
		Then: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(4, 1)}}},
		Else: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(4, 2)}}},
	}
	if err := Run([]Node{n}, directCtx{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Value().Equal(value.AllX(4)) {
		t.Fatalf("out = %s, want all-x", out.Value())
	}
}

func TestCaseInvalidSelectDrivesAllX(t *testing.T) {
	out := signal.New("out", 2)
	sel := signal.New("sel", 2)
	sel.Put(value.AllX(2))
	c := Case{
		Select: Ref{Sig: sel},
		Items: []CaseItem{
			{Match: Lit{Val: value.FromInt(2, 0)}, Body: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(2, 1)}}}},
		},
	}
	if err := Run([]Node{c}, directCtx{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Value().Equal(value.AllX(2)) {
		t.Fatalf("out = %s, want all-x", out.Value())
	}
}

func TestCaseUniqueMultiMatchDrivesAllX(t *testing.T) {
	out := signal.New("out", 2)
	sel := signal.New("sel", 2)
	sel.Put(value.FromInt(2, 1))
	c := Case{
		Select: Ref{Sig: sel},
		Kind:   CaseUnique,
		Items: []CaseItem{
			{Match: Lit{Val: value.FromInt(2, 1)}, Body: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(2, 1)}}}},
			{Match: Lit{Val: value.FromInt(2, 1)}, Body: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(2, 2)}}}},
		},
	}
	if err := Run([]Node{c}, directCtx{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Value().Equal(value.AllX(2)) {
		t.Fatalf("out = %s, want all-x for duplicate unique match", out.Value())
	}
}

func TestCasePriorityMultiMatchTakesFirst(t *testing.T) {
	out := signal.New("out", 2)
	sel := signal.New("sel", 2)
	sel.Put(value.FromInt(2, 1))
	c := Case{
		Select: Ref{Sig: sel},
		Kind:   CasePriority,
		Items: []CaseItem{
			{Match: Lit{Val: value.FromInt(2, 1)}, Body: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(2, 1)}}}},
			{Match: Lit{Val: value.FromInt(2, 1)}, Body: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(2, 2)}}}},
		},
	}
	if err := Run([]Node{c}, directCtx{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Value().Equal(value.FromInt(2, 1)) {
		t.Fatalf("out = %s, want 1 (first match wins)", out.Value())
	}
}

func TestCaseZWildcardIgnoresZBits(t *testing.T) {
	out := signal.New("out", 4)
	sel := signal.New("sel", 4)
	sel.Put(value.FromInt(4, 0xB))
	wild, err := value.FromString("101z")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	c := Case{
		Select:   Ref{Sig: sel},
		Wildcard: true,
		Items: []CaseItem{
			{Match: Lit{Val: wild}, Body: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(4, 7)}}}},
		},
	}
	if err := Run([]Node{c}, directCtx{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Value().Equal(value.FromInt(4, 7)) {
		t.Fatalf("out = %s, want 7 (wildcard bit ignored)", out.Value())
	}
}

func TestCaseNoMatchRunsDefault(t *testing.T) {
	out := signal.New("out", 2)
	sel := signal.New("sel", 2)
	sel.Put(value.FromInt(2, 3))
	c := Case{
		Select: Ref{Sig: sel},
		Items: []CaseItem{
			{Match: Lit{Val: value.FromInt(2, 0)}, Body: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(2, 1)}}}},
		},
		Default: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(2, 2)}}},
	}
	if err := Run([]Node{c}, directCtx{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Value().Equal(value.FromInt(2, 2)) {
		t.Fatalf("out = %s, want 2 (default)", out.Value())
	}
}

func TestSensitivityCollectsAllReads(t *testing.T) {
	a := signal.New("a", 1)
	b := signal.New("b", 1)
	out := signal.New("out", 1)
	nodes := []Node{
		If{
			Cond: Ref{Sig: a},
			Then: []Node{Assign{Target: out, Source: Ref{Sig: b}}},
			Else: []Node{Assign{Target: out, Source: Lit{Val: value.FromInt(1, 0)}}},
		},
	}
	sens := Sensitivity(nodes)
	if len(sens) != 2 || sens[0] != a || sens[1] != b {
		t.Fatalf("Sensitivity = %v, want [a b]", sens)
	}
}

func TestCollectTargetsWalksNestedCase(t *testing.T) {
	out1 := signal.New("out1", 1)
	out2 := signal.New("out2", 1)
	nodes := []Node{
		Case{
			Select: Lit{Val: value.FromInt(1, 0)},
			Items: []CaseItem{
				{Match: Lit{Val: value.FromInt(1, 0)}, Body: []Node{Assign{Target: out1, Source: Lit{Val: value.FromInt(1, 1)}}}},
			},
			Default: []Node{Assign{Target: out2, Source: Lit{Val: value.FromInt(1, 1)}}},
		},
	}
	targets := collectTargets(nodes)
	if len(targets) != 2 || targets[0] != out1 || targets[1] != out2 {
		t.Fatalf("collectTargets = %v, want [out1 out2]", targets)
	}
}
