package module

import "github.com/pkg/errors"

// ErrModuleNotBuilt is returned by operations that require a frozen
// hierarchy (ResolvedName, ResolvedSubmoduleName, and synthesis) on a
// Module whose Build has not yet run.
var ErrModuleNotBuilt = errors.New("rivulet/module: module has not been built")

// ErrInvalidHierarchy is returned when a module is added as a submodule of
// itself or of one of its own descendants.
var ErrInvalidHierarchy = errors.New("rivulet/module: module cannot be its own ancestor")

// ErrPortDoesNotExist is returned by Port and ResolvedName lookups for a
// name the module never declared.
var ErrPortDoesNotExist = errors.New("rivulet/module: port does not exist")

// ErrReservedNameUnavailable is returned by Build when a reserved name
// collides with another reserved name in the same scope.
var ErrReservedNameUnavailable = errors.New("rivulet/module: reserved name unavailable")

// ErrAlreadyBuilt is returned by AddInput/AddOutput/AddInOut/AddInternal/
// AddSubmodule once Build has already frozen the module.
var ErrAlreadyBuilt = errors.New("rivulet/module: module is already built")

// ErrInvalidIdentifier is returned when a module, port, internal signal, or
// submodule instance name does not match the sanitised identifier grammar
// ([A-Za-z_][A-Za-z0-9_]*) the synthesizer requires.
var ErrInvalidIdentifier = errors.New("rivulet/module: name is not a valid identifier")

// PortRulesViolation is returned by Build when a signal reachable from this
// module's ports is attributed to a different module without crossing one
// of that module's declared ports. Path records the chain of module names
// from the module whose Build detected the crossing up to the top module
// being built, for diagnostics.
type PortRulesViolation struct {
	Signal string
	Owner  string
	Path   []string
}

func (e *PortRulesViolation) Error() string {
	msg := "rivulet/module: signal " + e.Signal + " crosses into module " + e.Owner + " without a port"
	for _, p := range e.Path {
		msg += " <- " + p
	}
	return msg
}
