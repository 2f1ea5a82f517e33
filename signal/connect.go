package signal

// Connect merges dst and src so they share a single underlying storage cell
// ("adoption"): afterwards a Put/Inject on either name is visible, at the
// same value, through both, and listeners registered on either name observe
// every future change regardless of which name changed. This is what the
// `<=` wire-connection operator performs.
//
// Connecting a signal to itself is an error. Width mismatches are an error.
// If both sides already carry conflicting non-net drivers, Connect reports
// ErrRedriven. A connection between a wire and a net promotes the merged
// cell to net semantics (tri-state resolution), per the framework's
// cross-kind adoption rule.
func Connect(dst, src *Logic) error {
	a := dst.cell.root()
	b := src.cell.root()
	if a == b {
		return ErrSelfConnect
	}
	if a.width != b.width {
		return ErrWidthMismatch
	}

	resultKind := kindWire
	if a.kind == kindNet || b.kind == kindNet {
		resultKind = kindNet
	}

	if resultKind == kindWire {
		if a.driver != nil && b.driver != nil && a.driver != b.driver {
			return ErrRedriven
		}
		if a.driver == nil {
			a.driver = b.driver
		}
	} else {
		a.netDrivers = append(a.netDrivers, b.netDrivers...)
	}

	a.kind = resultKind
	a.listeners = append(a.listeners, b.listeners...)
	a.members = append(a.members, b.members...)
	b.redirect = a

	if resultKind == kindNet {
		a.current = resolveNetLocked(a)
	}
	return nil
}

// ClaimDriver registers token as the (non-net) driver of l. A second,
// different token claiming the same target is ErrRedriven. token is an
// opaque identity (typically a *block.Combinational or *block.Sequential
// pointer) used only for equality comparison; signal never dereferences it.
func (l *Logic) ClaimDriver(token interface{}) error {
	c := l.cell.root()
	if c.kind == kindNet {
		return nil
	}
	if c.driver != nil && c.driver != token {
		return ErrRedriven
	}
	c.driver = token
	return nil
}

// Driver returns the opaque token currently claiming to drive l, or nil.
func (l *Logic) Driver() interface{} {
	c := l.cell.root()
	return c.driver
}
