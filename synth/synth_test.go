package synth

import (
	"context"
	"strings"
	"testing"

	"github.com/pdxjjb/rivulet/block"
	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/module"
	"github.com/pdxjjb/rivulet/signal"
)

func TestEmitRequiresBuiltModule(t *testing.T) {
	top := module.New("top")
	if _, err := Emit(top); err != module.ErrModuleNotBuilt {
		t.Fatalf("Emit(unbuilt) = %v, want ErrModuleNotBuilt", err)
	}
}

func TestEmitProducesCombinationalModule(t *testing.T) {
	top := module.New("mux2")
	extA := signal.New("extA", 1)
	extSel := signal.New("extSel", 1)
	extB := signal.New("extB", 1)

	a, err := top.AddInput("a", extA, 1)
	if err != nil {
		t.Fatalf("AddInput a: %v", err)
	}
	sel, err := top.AddInput("sel", extSel, 1)
	if err != nil {
		t.Fatalf("AddInput sel: %v", err)
	}
	b, err := top.AddInput("b", extB, 1)
	if err != nil {
		t.Fatalf("AddInput b: %v", err)
	}
	y, err := top.AddOutput("y", 1)
	if err != nil {
		t.Fatalf("AddOutput y: %v", err)
	}

	nodes := []cond.Node{cond.Assign{Target: y, Source: cond.Mux{Cond: cond.Ref{Sig: sel}, Then: cond.Ref{Sig: b}, Else: cond.Ref{Sig: a}}}}
	comb, err := block.NewCombinational(nodes)
	if err != nil {
		t.Fatalf("NewCombinational: %v", err)
	}
	if err := top.AddCombinational(comb); err != nil {
		t.Fatalf("AddCombinational: %v", err)
	}

	if err := top.Build(context.Background()); err != nil {
		t.Fatalf("Build: %v", err)
	}
	text, err := Emit(top)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	for _, want := range []string{"module mux2", "input  logic a", "output logic y", "always_comb", "endmodule"} {
		if !strings.Contains(text, want) {
			t.Fatalf("emitted text missing %q:\n%s", want, text)
		}
	}
}

func TestSafeNameEscapesKeyword(t *testing.T) {
	if got := safeName("always"); got != "always_" {
		t.Fatalf("safeName(always) = %q, want always_", got)
	}
	if got := safeName("counter"); got != "counter" {
		t.Fatalf("safeName(counter) = %q, want unchanged", got)
	}
}

func TestRangeTextOmitsSingleBitRange(t *testing.T) {
	if rangeText(1) != "" {
		t.Fatalf("rangeText(1) = %q, want empty", rangeText(1))
	}
	if rangeText(8) != "[7:0] " {
		t.Fatalf("rangeText(8) = %q, want [7:0] ", rangeText(8))
	}
}
