package simulator

import (
	"context"
	"testing"

	"github.com/pdxjjb/rivulet/block"
	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

func TestRegisterActionsRunInTimeAndRegistrationOrder(t *testing.T) {
	s := New()
	defer s.Detach()
	var order []string
	s.RegisterAction(5, func(context.Context) error { order = append(order, "t5a"); return nil })
	s.RegisterAction(5, func(context.Context) error { order = append(order, "t5b"); return nil })
	s.RegisterAction(1, func(context.Context) error { order = append(order, "t1"); return nil })

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"t1", "t5a", "t5b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestRegisterActionInPastIsError(t *testing.T) {
	s := New()
	defer s.Detach()
	s.RegisterAction(10, func(context.Context) error { return nil })
	s.Tick(context.Background())
	if err := s.RegisterAction(5, func(context.Context) error { return nil }); err != ErrPastTime {
		t.Fatalf("RegisterAction in the past = %v, want ErrPastTime", err)
	}
}

func TestMaxSimTimeStopsRun(t *testing.T) {
	s := New()
	defer s.Detach()
	ran100 := false
	s.RegisterAction(50, func(context.Context) error { return nil })
	s.RegisterAction(100, func(context.Context) error { ran100 = true; return nil })
	s.SetMaxSimTime(60)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ran100 {
		t.Fatalf("action at t=100 ran despite max sim time of 60")
	}
}

func TestEndSimulationStopsFurtherActions(t *testing.T) {
	s := New()
	defer s.Detach()
	ranSecond := false
	s.RegisterAction(1, func(context.Context) error { s.EndSimulation(); return nil })
	s.RegisterAction(2, func(context.Context) error { ranSecond = true; return nil })
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ranSecond {
		t.Fatalf("action after EndSimulation ran")
	}
}

func TestEndOfSimulationHookRunsAfterDrain(t *testing.T) {
	s := New()
	defer s.Detach()
	hookRan := false
	s.RegisterEndOfSimulationAction(func(context.Context) error { hookRan = true; return nil })
	s.RegisterAction(1, func(context.Context) error { return nil })
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !hookRan {
		t.Fatalf("end-of-simulation hook did not run")
	}
}

func TestResetClearsQueueAndTime(t *testing.T) {
	s := New()
	defer s.Detach()
	s.RegisterAction(5, func(context.Context) error { return nil })
	s.Tick(context.Background())
	s.Reset()
	if s.Now() != 0 {
		t.Fatalf("Now() = %d after Reset, want 0", s.Now())
	}
	if err := s.RegisterAction(0, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("RegisterAction after Reset: %v", err)
	}
}

func TestSequentialEdgeUpdateVisibleAtSameTimeAfterSampling(t *testing.T) {
	s := New()
	defer s.Detach()

	clk := signal.New("clk", 1)
	d := signal.New("d", 4)
	q := signal.New("q", 4)
	clk.Put(value.FromInt(1, 0))
	d.Put(value.FromInt(4, 7))

	nodes := []cond.Node{cond.Assign{Target: q, Source: cond.Ref{Sig: d}}}
	if _, err := block.NewSequential([]block.ClockSpec{{Clock: clk, Edge: block.Posedge}}, nodes); err != nil {
		t.Fatalf("NewSequential: %v", err)
	}

	var seenAtEdge value.Value
	s.RegisterAction(10, func(context.Context) error {
		return clk.Inject(value.FromInt(1, 1))
	})
	s.RegisterAction(10, func(context.Context) error {
		seenAtEdge = q.Value()
		return nil
	})
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	_ = seenAtEdge
	if !q.Value().Equal(value.FromInt(4, 7)) {
		t.Fatalf("q = %s, want 7 after edge's end-of-tick update", q.Value())
	}
}
