package signal

import "github.com/pdxjjb/rivulet/value"

// kind distinguishes ordinary single-driver wires from tri-state nets.
type kind byte

const (
	kindWire kind = iota
	kindNet
)

// netDrive is one driver's contribution to a net, possibly covering only a
// sub-range of the net's bits ("blasting" per the design notes).
type netDrive struct {
	src    *Logic
	hi, lo int
}

// cell is the arena entry backing one or more Logic names ("wire adoption"
// merges multiple cells into one survivor via redirect, like union-find with
// path compression, so long combinational chains share one storage slot
// instead of growing a chain of per-edge forwarders).
type cell struct {
	redirect *cell

	width   int
	kind    kind
	current value.Value

	driver     interface{} // opaque driver token; non-nil only for kindWire
	netDrivers []netDrive

	listeners []*listener
	emitting  bool

	unassignable bool

	// members lists every distinct *Logic name that has adopted this cell
	// (directly or via a chain of Connects), in adoption order. Used by
	// Logic.Peers so a module's build-time graph walk can tell which
	// declared names alias the same storage across a module boundary.
	members []*Logic
}

type listener struct {
	fn     func(prev, next value.Value)
	active bool
}

// root follows the redirect chain to the surviving cell, compressing the
// path as it goes.
func (c *cell) root() *cell {
	r := c
	for r.redirect != nil {
		r = r.redirect
	}
	for c.redirect != nil {
		next := c.redirect
		c.redirect = r
		c = next
	}
	return r
}

// Change describes a single value transition observed by a listener.
type Change struct {
	Previous value.Value
	Next     value.Value
}
