package trace

import "github.com/pkg/errors"

// ErrNotBuilt is returned by Hierarchy when asked to describe a module
// that has not yet had Build called on it.
var ErrNotBuilt = errors.New("trace: module not built")
