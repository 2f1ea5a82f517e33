// Package clockgen provides a free-running clock generator composed
// entirely from already-specified signal and simulator primitives: present
// in ROHD's own source tree as SimpleClockGenerator, load-bearing for any
// scenario (a counter, a state machine) that needs a clock but otherwise
// outside the core framework's scope.
package clockgen

import (
	"context"

	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// Scheduler is the subset of simulator.Simulator a Generator needs: enough
// to register its own recurring toggle action without clockgen importing
// the concrete simulator type.
type Scheduler interface {
	Now() int64
	RegisterAction(t int64, fn func(ctx context.Context) error) error
}

// Generator toggles a 1-bit Logic every half-period via registered
// simulator actions, starting low.
type Generator struct {
	clk     *signal.Logic
	period  int64
	sched   Scheduler
	stopped bool
}

// Start creates a Generator driving clk with the given period (in
// simulator time units) and registers its first toggle.
func Start(sched Scheduler, clk *signal.Logic, period int64) (*Generator, error) {
	if err := clk.Put(value.FromInt(1, 0)); err != nil {
		return nil, err
	}
	g := &Generator{clk: clk, period: period, sched: sched}
	return g, g.scheduleNext()
}

func (g *Generator) scheduleNext() error {
	half := g.period / 2
	return g.sched.RegisterAction(g.sched.Now()+half, g.toggle)
}

func (g *Generator) toggle(ctx context.Context) error {
	if g.stopped {
		return nil
	}
	next := value.FromInt(1, 1)
	if g.clk.Value().Equal(value.FromInt(1, 1)) {
		next = value.FromInt(1, 0)
	}
	if err := g.clk.Inject(next); err != nil {
		return err
	}
	return g.scheduleNext()
}

// Stop prevents any further scheduled toggle from re-registering itself;
// the generator's clock signal is left at whatever value it last held.
func (g *Generator) Stop() { g.stopped = true }
