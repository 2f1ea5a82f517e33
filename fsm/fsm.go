// Package fsm lowers a declarative state list to the two-register,
// Combinational-plus-Sequential pattern a state machine compiles down to:
// a Combinational block computes each state's actions and the next state
// from a Case on the current state, and a Sequential block clocks the
// current-state register, forcing it to the reset state whenever reset is
// held.
package fsm

import (
	"github.com/pdxjjb/rivulet/block"
	"github.com/pdxjjb/rivulet/cond"
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// Event is one outgoing transition of a State: when Cond evaluates true,
// the state machine moves to NextID on the following clock edge. Within a
// State, events are checked in list order and the first true Cond wins
// (the same priority-case discipline a plain Combinational If chain
// gives); if none match, the state holds (next is set to the current
// state's own ID, so no explicit fall-through event is needed).
type Event struct {
	Cond   cond.Expr
	NextID int
}

// State is one node of the machine: Actions are conditional assignments
// run combinationally whenever the machine is in this state (regardless of
// whether it is about to transition), and Events are its outgoing edges.
type State struct {
	ID      int
	Actions []cond.Node
	Events  []Event
}

// StateMachine is the lowered pair of registers plus the blocks driving
// them.
type StateMachine struct {
	Current *signal.Logic
	Next    *signal.Logic
	Comb    *block.Combinational
	Seq     *block.Sequential
}

// New lowers states to a StateMachine clocked by clk, resetting
// synchronously to resetID while reset reads logic-1. width must be wide
// enough to hold every state's ID.
func New(width int, states []State, resetID int, clk, reset *signal.Logic) (*StateMachine, error) {
	current := signal.New("current", width)
	next := signal.New("next", width)

	items := make([]cond.CaseItem, len(states))
	for i, st := range states {
		body := append([]cond.Node{}, st.Actions...)
		body = append(body, transitionNode(st, next, width))
		items[i] = cond.CaseItem{
			Match: cond.Lit{Val: value.FromInt(width, int64(st.ID))},
			Body:  body,
		}
	}
	combNodes := []cond.Node{cond.Case{
		Select:  cond.Ref{Sig: current},
		Items:   items,
		Default: []cond.Node{cond.Assign{Target: next, Source: cond.Ref{Sig: current}}},
		Kind:    cond.CasePriority,
	}}
	comb, err := block.NewCombinational(combNodes)
	if err != nil {
		return nil, err
	}

	seq, err := block.NewSequentialWithReset(
		[]block.ClockSpec{{Clock: clk, Edge: block.Posedge}},
		reset,
		map[*signal.Logic]value.Value{current: value.FromInt(width, int64(resetID))},
		[]cond.Node{cond.Assign{Target: current, Source: cond.Ref{Sig: next}}},
	)
	if err != nil {
		return nil, err
	}

	return &StateMachine{Current: current, Next: next, Comb: comb, Seq: seq}, nil
}

// transitionNode builds the If/else-if chain selecting next's value for
// one state: the first event whose Cond holds wins, and if none hold the
// state stays on next (next keeps current's value until some event fires).
func transitionNode(st State, next *signal.Logic, width int) cond.Node {
	if len(st.Events) == 0 {
		return cond.Assign{Target: next, Source: cond.Lit{Val: value.FromInt(width, int64(st.ID))}}
	}
	branches := make([]cond.IfBranch, 0, len(st.Events)+1)
	for _, ev := range st.Events {
		branches = append(branches, cond.IfBranch{
			Cond: ev.Cond,
			Body: []cond.Node{cond.Assign{Target: next, Source: cond.Lit{Val: value.FromInt(width, int64(ev.NextID))}}},
		})
	}
	branches = append(branches, cond.IfBranch{
		Cond: nil,
		Body: []cond.Node{cond.Assign{Target: next, Source: cond.Lit{Val: value.FromInt(width, int64(st.ID))}}},
	})
	return cond.IfBlock{Branches: branches}
}
