package signal

import (
	"fmt"

	"github.com/pdxjjb/rivulet/value"
)

// Role records which side of a module boundary a Logic plays, if any.
type Role byte

const (
	RoleNone Role = iota
	RoleInput
	RoleOutput
	RoleInOut
)

func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleInOut:
		return "inout"
	default:
		return "internal"
	}
}

// Owner names the module that has claimed a Logic, without signal needing
// to import the module package (module.Module implements this interface).
type Owner interface {
	OwnerName() string
}

// Logic is a named, typed reference to a mutable storage cell holding the
// current Value. Multiple Logics connected together share one cell
// ("adoption"); Logic itself is just a handle plus identity.
type Logic struct {
	name  string
	cell  *cell
	owner Owner
	role  Role
	// reserved marks a name that must survive uniquification unchanged.
	reserved bool
	// frozen is set once the enclosing module's Build() completes; role and
	// reserved no longer change after that point.
	frozen bool
}

// New creates a free-standing width-bit wire named name, initialized to all
// x's (the conventional "uninitialised" state for hardware storage).
func New(name string, width int) *Logic {
	l := &Logic{
		name: name,
		cell: &cell{width: width, kind: kindWire, current: value.AllX(width)},
	}
	l.cell.members = []*Logic{l}
	return l
}

// NewNet creates a free-standing width-bit tri-state net, initialized to
// all z's (undriven).
func NewNet(name string, width int) *Logic {
	l := &Logic{
		name: name,
		cell: &cell{width: width, kind: kindNet, current: value.AllZ(width)},
	}
	l.cell.members = []*Logic{l}
	return l
}

// Const creates an unassignable width-bit wire permanently holding v.
func Const(name string, v value.Value) *Logic {
	l := &Logic{
		name: name,
		cell: &cell{width: v.Width(), kind: kindWire, current: v, unassignable: true},
	}
	l.cell.members = []*Logic{l}
	return l
}

// Peers returns every distinct Logic name that currently shares l's
// underlying storage cell, including l itself, in adoption order.
func (l *Logic) Peers() []*Logic {
	return l.cell.root().members
}

// Name returns l's declared name.
func (l *Logic) Name() string { return l.name }

// Width returns l's fixed bit width.
func (l *Logic) Width() int { return l.cell.root().width }

// IsNet reports whether l behaves as a tri-state net (multiple drivers
// allowed) rather than a single-driver wire.
func (l *Logic) IsNet() bool { return l.cell.root().kind == kindNet }

// Value returns l's current value.
func (l *Logic) Value() value.Value { return l.cell.root().current }

// Role returns the port role l was declared with, or RoleNone for an
// internal signal.
func (l *Logic) Role() Role { return l.role }

// SetOwner records which module claims l. Used by module.Module during
// Build(); not part of the general user-facing API.
func (l *Logic) SetOwner(o Owner) { l.owner = o }

// Owner returns the module that has claimed l, or nil if unclaimed.
func (l *Logic) Owner() Owner { return l.owner }

// Reserve marks l's name as one that must not be altered by synthesizer or
// module uniquification.
func (l *Logic) Reserve() { l.reserved = true }

// Reserved reports whether l's name was reserved.
func (l *Logic) Reserved() bool { return l.reserved }

// Freeze locks l's role and reservation in place; called once by
// module.Module.Build().
func (l *Logic) Freeze() { l.frozen = true }

// SetRole assigns l's boundary role. Used by module.Module when declaring
// ports; panics if called after Freeze, which would indicate a framework
// bug rather than a user error.
func (l *Logic) SetRole(r Role) {
	if l.frozen {
		panic(fmt.Sprintf("rivulet/signal: cannot change role of frozen signal %q", l.name))
	}
	l.role = r
}

// Put deposits v on l synchronously, propagating to downstream listeners
// immediately. Put does not interact with any simulator event queue; use
// Inject from within simulated code so that registered actions observe the
// change in orderly fashion.
func (l *Logic) Put(v value.Value) error {
	return l.deposit(v, nil)
}

// Inject deposits v on l exactly like Put, and additionally schedules a
// simulator event at the current time (via the active Scheduler, if one is
// attached) so registered actions see the change in the current delta
// cycle.
func (l *Logic) Inject(v value.Value) error {
	sched := activeScheduler
	return l.deposit(v, sched)
}
