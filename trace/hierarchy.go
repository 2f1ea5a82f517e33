package trace

import (
	"encoding/json"

	"github.com/pdxjjb/rivulet/module"
)

// PortInfo describes one declared port of a module in the introspection
// dump.
type PortInfo struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}

// Hierarchy is the JSON-serializable shape of one module and, recursively,
// its sub-modules: {name, inputs, outputs, subModules}.
type Hierarchy struct {
	Name       string      `json:"name"`
	Instance   string      `json:"instance"`
	Inputs     []PortInfo  `json:"inputs"`
	Outputs    []PortInfo  `json:"outputs"`
	Inouts     []PortInfo  `json:"inouts,omitempty"`
	SubModules []Hierarchy `json:"subModules"`
}

// BuildHierarchy walks m (which must already be Built) and its
// sub-modules into a Hierarchy tree.
func BuildHierarchy(m *module.Module) (Hierarchy, error) {
	if !m.Built() {
		return Hierarchy{}, ErrNotBuilt
	}
	h := Hierarchy{
		Name:     m.Name(),
		Instance: m.InstanceName(),
	}
	for _, p := range m.Inputs() {
		h.Inputs = append(h.Inputs, PortInfo{Name: p.Name, Width: p.Logic.Width()})
	}
	for _, p := range m.Outputs() {
		h.Outputs = append(h.Outputs, PortInfo{Name: p.Name, Width: p.Logic.Width()})
	}
	for _, p := range m.Inouts() {
		h.Inouts = append(h.Inouts, PortInfo{Name: p.Name, Width: p.Logic.Width()})
	}
	for _, sub := range m.Submodules() {
		child, err := BuildHierarchy(sub)
		if err != nil {
			return Hierarchy{}, err
		}
		h.SubModules = append(h.SubModules, child)
	}
	return h, nil
}

// MarshalHierarchy builds and JSON-encodes m's hierarchy in one step.
func MarshalHierarchy(m *module.Module) ([]byte, error) {
	h, err := BuildHierarchy(m)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(h, "", "  ")
}
