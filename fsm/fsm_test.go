package fsm

import (
	"testing"

	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

func TestStateMachineAdvancesOnEventAndResets(t *testing.T) {
	clk := signal.New("clk", 1)
	reset := signal.New("reset", 1)
	go_ := signal.New("go", 1)
	clk.Put(value.FromInt(1, 0))
	reset.Put(value.FromInt(1, 1))
	go_.Put(value.FromInt(1, 0))

	const (
		idle = 0
		run  = 1
	)
	states := []State{
		{ID: idle, Events: []Event{{Cond: cond.Ref{Sig: go_}, NextID: run}}},
		{ID: run},
	}
	sm, err := New(2, states, idle, clk, reset)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clk.Put(value.FromInt(1, 1))
	if !sm.Current.Value().Equal(value.FromInt(2, idle)) {
		t.Fatalf("current = %s, want idle while reset held", sm.Current.Value())
	}

	reset.Put(value.FromInt(1, 0))
	clk.Put(value.FromInt(1, 0))
	go_.Put(value.FromInt(1, 1))
	clk.Put(value.FromInt(1, 1))
	if !sm.Current.Value().Equal(value.FromInt(2, run)) {
		t.Fatalf("current = %s, want run after go asserted", sm.Current.Value())
	}

	go_.Put(value.FromInt(1, 0))
	clk.Put(value.FromInt(1, 0))
	clk.Put(value.FromInt(1, 1))
	if !sm.Current.Value().Equal(value.FromInt(2, run)) {
		t.Fatalf("current = %s, want to stay in run with no outgoing event", sm.Current.Value())
	}
}
