package module

import "context"

// ExternalModule is a leaf stub standing in for a module instance
// implemented outside this program — a real chip or HDL block reached over
// a hardware-in-the-loop bridge (see package cosim). It is declared with
// the same AddInput/AddOutput/AddInOut calls as any other Module, but its
// ports are driven and observed by the bridge rather than by any
// Combinational or Sequential registered here.
type ExternalModule struct {
	*Module
}

// NewExternalModule wraps a fresh, port-only Module as an external stub.
func NewExternalModule(name string) *ExternalModule {
	return &ExternalModule{Module: New(name)}
}

// Build validates the stub's declared ports and marks it built. It does
// not walk a peer-ownership graph or freeze any signal — there is no
// internal logic here to protect from redrive, since the real driver lives
// outside the process.
func (e *ExternalModule) Build(ctx context.Context) error {
	if e.Module.built {
		return nil
	}
	if e.Module.nameErr != nil {
		return e.Module.nameErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, s := range e.ownSignals() {
		if s.Name() == "" {
			return ErrPortDoesNotExist
		}
	}
	e.Module.built = true
	return nil
}
