package block

import (
	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// ClockEdge selects which transition of a clock signal a Sequential block
// samples on.
type ClockEdge byte

const (
	Posedge ClockEdge = iota
	Negedge
)

// ClockSpec pairs a clock signal with the edge a Sequential block samples
// it on, supporting the multi-edge form (spec.md §4.3's "multi-clock
// form").
type ClockSpec struct {
	Clock *signal.Logic
	Edge  ClockEdge
}

// Sequential is an edge-sensitive execution block: on each specified clock
// edge, it samples its conditionals' right-hand sides against the signal
// values held just before the edge, then applies the resulting writes once
// the tick's combinational propagation has quiesced, so that every other
// Sequential triggered by the same edge samples the identical pre-edge
// state (spec.md §4.5 "sequentials sample before they update").
type Sequential struct {
	clocks  []ClockSpec
	nodes   []cond.Node
	targets []*signal.Logic
	prev    map[*signal.Logic]value.Value
	unsubs  []func()
	lastErr error
}

// NewSequential builds a Sequential clocked by clocks, executing nodes on
// every matching edge.
func NewSequential(clocks []ClockSpec, nodes []cond.Node) (*Sequential, error) {
	s := &Sequential{
		clocks:  clocks,
		nodes:   nodes,
		targets: cond.Targets(nodes),
		prev:    make(map[*signal.Logic]value.Value),
	}
	for _, cs := range clocks {
		cs := cs
		s.prev[cs.Clock] = cs.Clock.Value()
		unsub, err := cs.Clock.Subscribe(func(prevV, nextV value.Value) {
			if edgeMatches(cs.Edge, prevV, nextV) {
				s.sample()
			}
		})
		if err != nil {
			return nil, err
		}
		s.unsubs = append(s.unsubs, unsub)
	}
	return s, nil
}

// NewSequentialWithReset is NewSequential plus the common reset idiom:
// while reset reads logic-1, every target in resetValues is driven to its
// paired value instead of running nodes (spec.md §4.3's "reset?,
// resetValues?" convenience form, lowered to an ordinary If wrapping the
// supplied body, matching how fsm.StateMachine lowers its own reset).
func NewSequentialWithReset(clocks []ClockSpec, reset *signal.Logic, resetValues map[*signal.Logic]value.Value, nodes []cond.Node) (*Sequential, error) {
	var resetBody []cond.Node
	for sig, v := range resetValues {
		resetBody = append(resetBody, cond.Assign{Target: sig, Source: cond.Lit{Val: v}})
	}
	wrapped := []cond.Node{cond.If{
		Cond: cond.Ref{Sig: reset},
		Then: resetBody,
		Else: nodes,
	}}
	return NewSequential(clocks, wrapped)
}

func edgeMatches(edge ClockEdge, prevV, nextV value.Value) bool {
	if prevV.Width() == 0 || nextV.Width() == 0 {
		return false
	}
	p, n := prevV.BitAt(0), nextV.BitAt(0)
	switch edge {
	case Posedge:
		return p == value.Bit0 && n == value.Bit1
	case Negedge:
		return p == value.Bit1 && n == value.Bit0
	default:
		return false
	}
}

// Targets returns the signals this block may drive, for Module.Build's
// redrive-conflict detection.
func (s *Sequential) Targets() []*signal.Logic { return s.targets }

// Nodes returns the conditional statements this block runs on each
// matching edge, for the synthesizer's always_ff lowering.
func (s *Sequential) Nodes() []cond.Node { return s.nodes }

// Clocks returns the clock/edge pairs this block is sensitive to.
func (s *Sequential) Clocks() []ClockSpec { return s.clocks }

// Err returns the error, if any, raised while applying the most recent
// sampled edge.
func (s *Sequential) Err() error { return s.lastErr }

func (s *Sequential) sample() {
	ctx := &seqCtx{pending: make(map[*signal.Logic]value.Value)}
	if err := cond.Run(s.nodes, ctx); err != nil {
		s.lastErr = err
		return
	}
	apply := func() {
		for sig, v := range ctx.pending {
			if err := sig.Put(v); err != nil {
				s.lastErr = err
			}
		}
	}
	if activeTickScheduler != nil {
		activeTickScheduler.ScheduleEndOfTick(apply)
	} else {
		apply()
	}
}

// seqCtx samples reads directly against live signal values and buffers
// writes so they can be applied as a single end-of-tick batch rather than
// immediately, decoupling "what d was at the edge" from "when q updates".
type seqCtx struct {
	pending map[*signal.Logic]value.Value
}

func (c *seqCtx) Read(sig *signal.Logic) value.Value { return sig.Value() }

func (c *seqCtx) Write(sig *signal.Logic, v value.Value) error {
	c.pending[sig] = v
	return nil
}
