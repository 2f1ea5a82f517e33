package block

import (
	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// maxSSAIterations bounds the fixed-point search in CombinationalSSA so a
// genuine combinational cycle through the tracked set fails fast with
// ErrSSAFixedPoint instead of looping forever.
const maxSSAIterations = 8

// CombinationalSSA is the SSA variant of Combinational: a declared set of
// tracked signals may be written more than once per pass, each write
// creating a new version that subsequent reads within the same pass
// observe, which legalizes patterns such as "x <- x + 1; x <- x * 2" that
// plain Combinational's write-after-read check would reject.
type CombinationalSSA struct {
	nodes       []cond.Node
	tracked     map[*signal.Logic]bool
	sensitivity []*signal.Logic
	targets     []*signal.Logic
	unsubs      []func()
	lastErr     error
}

// NewCombinationalSSA builds a CombinationalSSA over nodes, treating every
// signal in tracked as SSA-versioned; every other signal read or written is
// handled as in plain Combinational (direct passthrough, no
// write-after-read check beyond the tracked set since spec scope is
// limited to the declared tracked signals).
func NewCombinationalSSA(nodes []cond.Node, tracked []*signal.Logic) (*CombinationalSSA, error) {
	trackedSet := make(map[*signal.Logic]bool, len(tracked))
	for _, s := range tracked {
		trackedSet[s] = true
	}
	c := &CombinationalSSA{
		nodes:       nodes,
		tracked:     trackedSet,
		sensitivity: cond.Sensitivity(nodes),
		targets:     cond.Targets(nodes),
	}
	for _, sig := range c.sensitivity {
		// Tracked signals are written by this block itself; subscribing to
		// them would re-run the pass on its own publish.
		if c.tracked[sig] {
			continue
		}
		unsub, err := sig.Subscribe(func(_, _ value.Value) { c.evaluate() })
		if err != nil {
			return nil, err
		}
		c.unsubs = append(c.unsubs, unsub)
	}
	c.evaluate()
	return c, nil
}

func (c *CombinationalSSA) Targets() []*signal.Logic { return c.targets }
func (c *CombinationalSSA) Err() error                { return c.lastErr }

func (c *CombinationalSSA) evaluate() {
	final := make(map[*signal.Logic]value.Value)
	for i := 0; i < maxSSAIterations; i++ {
		ctx := &ssaCtx{tracked: c.tracked, versions: make(map[*signal.Logic]value.Value)}
		if err := cond.Run(c.nodes, ctx); err != nil {
			c.lastErr = err
			return
		}
		if ctx.err != nil {
			c.lastErr = ctx.err
			return
		}
		if mapsEqualValues(final, ctx.versions) {
			final = ctx.versions
			c.lastErr = publish(final)
			return
		}
		final = ctx.versions
	}
	c.lastErr = ErrSSAFixedPoint
}

func publish(versions map[*signal.Logic]value.Value) error {
	for sig, v := range versions {
		if err := sig.Put(v); err != nil {
			return err
		}
	}
	return nil
}

func mapsEqualValues(a, b map[*signal.Logic]value.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for sig, v := range a {
		bv, ok := b[sig]
		if !ok || !v.Equal(bv) {
			return false
		}
	}
	return true
}

// ssaCtx gives each tracked signal its own per-pass version history. A read
// of a tracked signal before its first write within the pass returns the
// signal's live value; if that live value contains x or z bits the read is
// a hazard (ErrUninitializedSSARead), matching plain Combinational's
// refusal to let a block observe an uninitialized value it is itself
// responsible for producing.
type ssaCtx struct {
	tracked  map[*signal.Logic]bool
	versions map[*signal.Logic]value.Value
	err      error
}

func (c *ssaCtx) Read(sig *signal.Logic) value.Value {
	if !c.tracked[sig] {
		return sig.Value()
	}
	if v, ok := c.versions[sig]; ok {
		return v
	}
	live := sig.Value()
	if !live.IsValid() {
		if c.err == nil {
			c.err = ErrUninitializedSSARead
		}
		return value.AllX(sig.Width())
	}
	return live
}

func (c *ssaCtx) Write(sig *signal.Logic, v value.Value) error {
	if !c.tracked[sig] {
		return sig.Put(v)
	}
	c.versions[sig] = v
	return nil
}
