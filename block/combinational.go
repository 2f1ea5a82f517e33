package block

import (
	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// Combinational is a level-sensitive execution block: its sensitivity list
// is every signal read by any of its conditionals, and it re-evaluates in
// full whenever any of them changes. A signal read before it is written
// within the same pass and then written is a write-after-read hazard,
// reported as ErrWriteAfterRead rather than silently producing hardware
// that cannot be synthesized.
type Combinational struct {
	nodes       []cond.Node
	sensitivity []*signal.Logic
	targets     []*signal.Logic
	unsubs      []func()
	lastErr     error
}

// NewCombinational builds a Combinational over nodes, subscribes it to its
// derived sensitivity list, and runs one initial evaluation so its targets
// reflect the current state of the signals they depend on.
func NewCombinational(nodes []cond.Node) (*Combinational, error) {
	c := &Combinational{
		nodes:       nodes,
		sensitivity: cond.Sensitivity(nodes),
		targets:     cond.Targets(nodes),
	}
	for _, sig := range c.sensitivity {
		unsub, err := sig.Subscribe(func(_, _ value.Value) { c.evaluate() })
		if err != nil {
			return nil, err
		}
		c.unsubs = append(c.unsubs, unsub)
	}
	c.evaluate()
	return c, nil
}

// Targets returns the signals this block may drive, for Module.Build's
// redrive-conflict detection.
func (c *Combinational) Targets() []*signal.Logic { return c.targets }

// Nodes returns the conditional statements this block evaluates, for the
// synthesizer's always_comb lowering.
func (c *Combinational) Nodes() []cond.Node { return c.nodes }

// Err returns the error, if any, raised by the most recent evaluation. A
// write-after-read hazard or a propagated Write failure latches here rather
// than panicking out of a signal-change listener.
func (c *Combinational) Err() error { return c.lastErr }

func (c *Combinational) evaluate() {
	c.lastErr = cond.Run(c.nodes, &combCtx{read: make(map[*signal.Logic]bool)})
}

// combCtx is the write-after-read-checking Context used by plain
// Combinational evaluation: reads and writes both go straight through to
// the live signal, but a write to a signal already read this pass fails.
type combCtx struct {
	read map[*signal.Logic]bool
}

func (c *combCtx) Read(sig *signal.Logic) value.Value {
	c.read[sig] = true
	return sig.Value()
}

func (c *combCtx) Write(sig *signal.Logic, v value.Value) error {
	if c.read[sig] {
		return ErrWriteAfterRead
	}
	return sig.Put(v)
}
