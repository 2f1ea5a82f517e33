package block

import (
	"testing"

	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

func TestSequentialSamplesAtEdgeIgnoringLaterChanges(t *testing.T) {
	clk := signal.New("clk", 1)
	d := signal.New("d", 4)
	q := signal.New("q", 4)
	clk.Put(value.FromInt(1, 0))
	d.Put(value.FromInt(4, 3))

	nodes := []cond.Node{cond.Assign{Target: q, Source: cond.Ref{Sig: d}}}
	seq, err := NewSequential([]ClockSpec{{Clock: clk, Edge: Posedge}}, nodes)
	if err != nil {
		t.Fatalf("NewSequential: %v", err)
	}
	if err := clk.Put(value.FromInt(1, 1)); err != nil {
		t.Fatalf("Put clk: %v", err)
	}
	if !q.Value().Equal(value.FromInt(4, 3)) {
		t.Fatalf("q = %s, want 3 after posedge", q.Value())
	}
	if err := d.Put(value.FromInt(4, 9)); err != nil {
		t.Fatalf("Put d: %v", err)
	}
	if !q.Value().Equal(value.FromInt(4, 3)) {
		t.Fatalf("q = %s, want unchanged 3 after d changes mid-cycle", q.Value())
	}
	if seq.Err() != nil {
		t.Fatalf("Err() = %v, want nil", seq.Err())
	}
}

func TestSequentialWithResetDominates(t *testing.T) {
	clk := signal.New("clk", 1)
	reset := signal.New("reset", 1)
	d := signal.New("d", 4)
	q := signal.New("q", 4)
	clk.Put(value.FromInt(1, 0))
	reset.Put(value.FromInt(1, 1))
	d.Put(value.FromInt(4, 5))

	nodes := []cond.Node{cond.Assign{Target: q, Source: cond.Ref{Sig: d}}}
	_, err := NewSequentialWithReset(
		[]ClockSpec{{Clock: clk, Edge: Posedge}},
		reset,
		map[*signal.Logic]value.Value{q: value.FromInt(4, 0)},
		nodes,
	)
	if err != nil {
		t.Fatalf("NewSequentialWithReset: %v", err)
	}
	clk.Put(value.FromInt(1, 1))
	if !q.Value().Equal(value.FromInt(4, 0)) {
		t.Fatalf("q = %s, want 0 while reset held", q.Value())
	}

	reset.Put(value.FromInt(1, 0))
	clk.Put(value.FromInt(1, 0))
	clk.Put(value.FromInt(1, 1))
	if !q.Value().Equal(value.FromInt(4, 5)) {
		t.Fatalf("q = %s, want 5 after reset released and next edge", q.Value())
	}
}

func TestSequentialIgnoresNegedgeWhenWatchingPosedge(t *testing.T) {
	clk := signal.New("clk", 1)
	d := signal.New("d", 4)
	q := signal.New("q", 4)
	clk.Put(value.FromInt(1, 1))
	d.Put(value.FromInt(4, 1))

	nodes := []cond.Node{cond.Assign{Target: q, Source: cond.Ref{Sig: d}}}
	if _, err := NewSequential([]ClockSpec{{Clock: clk, Edge: Posedge}}, nodes); err != nil {
		t.Fatalf("NewSequential: %v", err)
	}
	clk.Put(value.FromInt(1, 0))
	if !q.Value().Equal(value.AllX(4)) {
		t.Fatalf("q = %s, want unchanged (all-x) after negedge on a posedge-only block", q.Value())
	}
}

func TestSequentialIgnoresTransitionThroughUnknownClockValue(t *testing.T) {
	clk := signal.New("clk", 1) // starts at all-x
	d := signal.New("d", 4)
	q := signal.New("q", 4)
	d.Put(value.FromInt(4, 7))

	nodes := []cond.Node{cond.Assign{Target: q, Source: cond.Ref{Sig: d}}}
	if _, err := NewSequential([]ClockSpec{{Clock: clk, Edge: Posedge}}, nodes); err != nil {
		t.Fatalf("NewSequential: %v", err)
	}
	if err := clk.Put(value.FromInt(1, 1)); err != nil {
		t.Fatalf("Put clk: %v", err)
	}
	if !q.Value().Equal(value.AllX(4)) {
		t.Fatalf("q = %s, want unchanged (all-x): x->1 is not a posedge", q.Value())
	}
}
