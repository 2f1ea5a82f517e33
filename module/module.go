// Package module implements the hierarchical container discipline: named
// port lists, explicit sub-module composition, and the Build graph walk
// that freezes a hierarchy, claims unowned signals, detects illegitimate
// boundary crossings, and uniquifies names.
package module

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/pdxjjb/rivulet/block"
	"github.com/pdxjjb/rivulet/signal"
)

// Port is one declared boundary signal of a Module: Logic is the
// internal-side handle the module's own logic reads or drives.
type Port struct {
	Name  string
	Logic *signal.Logic
}

// Module is a named hierarchical container with three explicit port lists
// (inputs, outputs, inouts). Internal signals and sub-modules are
// registered explicitly via AddInternal/AddSubmodule — Go has no
// ROHD-style reflective field scanning, so Build's graph walk operates over
// these explicit registries and each port's live connectivity rather than
// over implicit struct-field discovery.
type Module struct {
	name         string
	instanceName string
	reservedInst bool
	parent       *Module

	inputs, outputs, inouts []*Port
	byName                  map[string]*Port
	internal                []*signal.Logic
	submodules              []*Module

	combinationals []*block.Combinational
	sequentials    []*block.Sequential

	built bool

	names          map[*signal.Logic]string
	submoduleNames map[*Module]string

	nameErr error
}

// New creates an unbuilt Module named name (the definition/class name used
// by the synthesizer; instance names are assigned by a parent's
// AddSubmodule, or left equal to name for a top-level module). name must
// match the sanitised identifier grammar ([A-Za-z_][A-Za-z0-9_]*); an
// invalid name is recorded and surfaced from the first subsequent
// Add*/Build call, following the teacher's pattern of accumulating
// construction failures rather than threading an error return through a
// constructor whose callers otherwise never fail.
func New(name string) *Module {
	return &Module{
		name:         name,
		instanceName: name,
		byName:       make(map[string]*Port),
		nameErr:      validateIdentifier(name),
	}
}

// OwnerName implements signal.Owner.
func (m *Module) OwnerName() string { return m.instanceName }

// Name returns the module's definition name.
func (m *Module) Name() string { return m.name }

// InstanceName returns the name this module was instanced under in its
// parent (equal to Name for a top-level module).
func (m *Module) InstanceName() string { return m.instanceName }

// ReserveInstanceName marks this module's instance name as reserved: a
// parent's Build never suffixes it; an unreserved sibling with the same
// name is suffixed instead, and Build fails with ErrReservedNameUnavailable
// only when two reserved siblings share a name.
func (m *Module) ReserveInstanceName() { m.reservedInst = true }

func (m *Module) checkMutable() error {
	if m.nameErr != nil {
		return m.nameErr
	}
	if m.built {
		return ErrAlreadyBuilt
	}
	return nil
}

// AddInput declares an input port named name, width bits wide, driven from
// source (an external-side signal outside the module). It returns the
// internal-side Logic; the module's own logic must read only this
// returned handle, never source directly.
func (m *Module) AddInput(name string, source *signal.Logic, width int) (*signal.Logic, error) {
	if err := m.checkMutable(); err != nil {
		return nil, err
	}
	if err := validateIdentifier(name); err != nil {
		return nil, err
	}
	if source.Width() != width {
		return nil, signal.ErrWidthMismatch
	}
	l := signal.New(name, width)
	l.SetRole(signal.RoleInput)
	l.SetOwner(m)
	if err := signal.Connect(l, source); err != nil {
		return nil, err
	}
	m.register(name, l)
	m.inputs = append(m.inputs, &Port{Name: name, Logic: l})
	return l, nil
}

// AddOutput declares an output port named name, width bits wide. It
// returns the internal-side Logic; the module's own logic drives this
// handle, and external logic connects its own wire to it to observe the
// value.
func (m *Module) AddOutput(name string, width int) (*signal.Logic, error) {
	if err := m.checkMutable(); err != nil {
		return nil, err
	}
	if err := validateIdentifier(name); err != nil {
		return nil, err
	}
	l := signal.New(name, width)
	l.SetRole(signal.RoleOutput)
	l.SetOwner(m)
	m.register(name, l)
	m.outputs = append(m.outputs, &Port{Name: name, Logic: l})
	return l, nil
}

// AddInOut declares a bidirectional port named name, width bits wide,
// connected to source. Bidirectional ports are backed by a tri-state net
// so that both the module and its external driver may contribute a value.
func (m *Module) AddInOut(name string, source *signal.Logic, width int) (*signal.Logic, error) {
	if err := m.checkMutable(); err != nil {
		return nil, err
	}
	if err := validateIdentifier(name); err != nil {
		return nil, err
	}
	if source.Width() != width {
		return nil, signal.ErrWidthMismatch
	}
	l := signal.NewNet(name, width)
	l.SetRole(signal.RoleInOut)
	l.SetOwner(m)
	if err := signal.Connect(l, source); err != nil {
		return nil, err
	}
	m.register(name, l)
	m.inouts = append(m.inouts, &Port{Name: name, Logic: l})
	return l, nil
}

// AddInternal declares an internal, non-port signal owned by m.
func (m *Module) AddInternal(name string, width int) (*signal.Logic, error) {
	if err := m.checkMutable(); err != nil {
		return nil, err
	}
	if err := validateIdentifier(name); err != nil {
		return nil, err
	}
	l := signal.New(name, width)
	l.SetOwner(m)
	m.internal = append(m.internal, l)
	return l, nil
}

// AddCombinational registers c as driving part of m's behavior; its
// targets participate in Build's redrive-conflict detection.
func (m *Module) AddCombinational(c *block.Combinational) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	m.combinationals = append(m.combinationals, c)
	return nil
}

// AddSequential registers s as driving part of m's behavior; its targets
// participate in Build's redrive-conflict detection.
func (m *Module) AddSequential(s *block.Sequential) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	m.sequentials = append(m.sequentials, s)
	return nil
}

// Combinationals returns the combinational blocks registered on m.
func (m *Module) Combinationals() []*block.Combinational { return m.combinationals }

// Sequentials returns the sequential blocks registered on m.
func (m *Module) Sequentials() []*block.Sequential { return m.sequentials }

func (m *Module) register(name string, l *signal.Logic) {
	m.byName[name] = &Port{Name: name, Logic: l}
}

// AddSubmodule registers sub as a child instance of m named instanceName.
// It is ErrInvalidHierarchy for sub to be m itself or an ancestor of m.
func (m *Module) AddSubmodule(instanceName string, sub *Module) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	if err := validateIdentifier(instanceName); err != nil {
		return err
	}
	for anc := m; anc != nil; anc = anc.parent {
		if anc == sub {
			return ErrInvalidHierarchy
		}
	}
	sub.parent = m
	sub.instanceName = instanceName
	m.submodules = append(m.submodules, sub)
	return nil
}

// Port looks up a declared port (of any direction) by name.
func (m *Module) Port(name string) (*signal.Logic, error) {
	if p, ok := m.byName[name]; ok {
		return p.Logic, nil
	}
	return nil, ErrPortDoesNotExist
}

// Inputs, Outputs, and Inouts return the module's declared port lists in
// declaration order. Valid before or after Build.
func (m *Module) Inputs() []*Port  { return m.inputs }
func (m *Module) Outputs() []*Port { return m.outputs }
func (m *Module) Inouts() []*Port  { return m.inouts }

// Internal returns the module's explicitly declared internal signals.
func (m *Module) Internal() []*signal.Logic { return m.internal }

// Submodules returns the module's registered child instances.
func (m *Module) Submodules() []*Module { return m.submodules }

// Built reports whether Build has completed on this module.
func (m *Module) Built() bool { return m.built }

// ResolvedName returns the unique, synthesis-safe name Build assigned to
// one of m's own signals (a port or an internal signal). Returns
// ErrModuleNotBuilt before Build runs.
func (m *Module) ResolvedName(l *signal.Logic) (string, error) {
	if !m.built {
		return "", ErrModuleNotBuilt
	}
	if n, ok := m.names[l]; ok {
		return n, nil
	}
	return "", ErrPortDoesNotExist
}

// ResolvedSubmoduleName returns the unique instance name Build assigned to
// one of m's registered children.
func (m *Module) ResolvedSubmoduleName(sub *Module) (string, error) {
	if !m.built {
		return "", ErrModuleNotBuilt
	}
	if n, ok := m.submoduleNames[sub]; ok {
		return n, nil
	}
	return "", ErrPortDoesNotExist
}

// Build walks the module's signal graph, recursively building any
// registered sub-modules first, claims ownership of any reachable signal
// that has none, detects signals that cross into a foreign module's scope
// without a declared port (PortRulesViolation), and assigns every signal
// and sub-module instance a unique name. Build is idempotent: calling it
// again on an already-built module is a no-op.
func (m *Module) Build(ctx context.Context) error {
	if m.built {
		return nil
	}
	if m.nameErr != nil {
		return m.nameErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, sub := range m.submodules {
		if err := sub.Build(ctx); err != nil {
			if pv, ok := err.(*PortRulesViolation); ok {
				pv.Path = append(pv.Path, m.name)
			}
			return err
		}
	}

	registry := m.ownSignals()
	for _, s := range registry {
		for _, peer := range s.Peers() {
			if err := m.checkPeerOwnership(peer); err != nil {
				return err
			}
		}
	}

	for _, c := range m.combinationals {
		for _, target := range c.Targets() {
			if err := target.ClaimDriver(c); err != nil {
				return err
			}
		}
	}
	for _, sq := range m.sequentials {
		for _, target := range sq.Targets() {
			if err := target.ClaimDriver(sq); err != nil {
				return err
			}
		}
	}

	if err := m.uniquifyNames(registry); err != nil {
		return err
	}
	if err := m.uniquifySubmodules(); err != nil {
		return err
	}
	for _, s := range registry {
		s.Freeze()
	}
	m.built = true
	return nil
}

func (m *Module) ownSignals() []*signal.Logic {
	portLogic := func(p *Port, _ int) *signal.Logic { return p.Logic }
	out := lo.Map(m.inputs, portLogic)
	out = append(out, lo.Map(m.outputs, portLogic)...)
	out = append(out, lo.Map(m.inouts, portLogic)...)
	return append(out, m.internal...)
}

func (m *Module) checkPeerOwnership(peer *signal.Logic) error {
	owner := peer.Owner()
	if owner == nil {
		peer.SetOwner(m)
		return nil
	}
	if owner == signal.Owner(m) {
		return nil
	}
	for _, sub := range m.submodules {
		if owner == signal.Owner(sub) {
			if peer.Role() == signal.RoleNone {
				return &PortRulesViolation{Signal: peer.Name(), Owner: sub.name, Path: []string{m.name}}
			}
			return nil
		}
	}
	return &PortRulesViolation{Signal: peer.Name(), Owner: owner.OwnerName(), Path: []string{m.name}}
}

func (m *Module) uniquifyNames(signals []*signal.Logic) error {
	m.names = make(map[*signal.Logic]string, len(signals))
	used := make(map[string]bool)
	reserved := lo.Filter(signals, func(s *signal.Logic, _ int) bool { return s.Reserved() })
	for _, s := range reserved {
		if used[s.Name()] {
			return ErrReservedNameUnavailable
		}
		used[s.Name()] = true
	}
	for _, s := range signals {
		if s.Reserved() {
			m.names[s] = s.Name()
			continue
		}
		m.names[s] = uniquify(s.Name(), used)
	}
	return nil
}

func (m *Module) uniquifySubmodules() error {
	m.submoduleNames = make(map[*Module]string, len(m.submodules))
	used := make(map[string]bool)
	reserved := lo.Filter(m.submodules, func(sub *Module, _ int) bool { return sub.reservedInst })
	for _, sub := range reserved {
		if used[sub.instanceName] {
			return ErrReservedNameUnavailable
		}
		used[sub.instanceName] = true
	}
	for _, sub := range m.submodules {
		if sub.reservedInst {
			m.submoduleNames[sub] = sub.instanceName
			continue
		}
		m.submoduleNames[sub] = uniquify(sub.instanceName, used)
	}
	return nil
}

func uniquify(base string, used map[string]bool) string {
	if !used[base] {
		used[base] = true
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}
