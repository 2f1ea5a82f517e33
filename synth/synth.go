// Package synth lowers a built module.Module hierarchy to SystemVerilog
// text: one module definition per distinct definition name (instanced
// wherever it recurs), with always_comb/always_ff blocks structurally
// mirroring each registered Combinational/Sequential block.
package synth

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/pdxjjb/rivulet/block"
	"github.com/pdxjjb/rivulet/module"
	"github.com/pdxjjb/rivulet/signal"
)

// Emit synthesizes top (which must already be built) and every distinct
// sub-module definition it recursively instances, returning SystemVerilog
// source text.
func Emit(top *module.Module) (string, error) {
	if !top.Built() {
		return "", module.ErrModuleNotBuilt
	}
	var buf bytes.Buffer
	emitted := make(map[string]bool)
	if err := emitDefinition(&buf, top, emitted); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func emitDefinition(buf *bytes.Buffer, m *module.Module, emitted map[string]bool) error {
	if emitted[m.Name()] {
		return nil
	}
	distinctChildren := lo.UniqBy(m.Submodules(), func(c *module.Module) string { return c.Name() })
	for _, child := range distinctChildren {
		if err := emitDefinition(buf, child, emitted); err != nil {
			return err
		}
	}
	emitted[m.Name()] = true

	resolve := localResolver(m)

	fmt.Fprintf(buf, "module %s (\n", safeName(m.Name()))
	buf.WriteString(strings.Join(portDecls(m), ",\n"))
	buf.WriteString("\n);\n")

	for _, s := range m.Internal() {
		name, err := m.ResolvedName(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "  logic %s%s;\n", rangeText(s.Width()), safeName(name))
	}

	for _, child := range m.Submodules() {
		lines, err := instanceLines(m, child)
		if err != nil {
			return err
		}
		buf.WriteString(lines)
	}

	for _, c := range m.Combinationals() {
		buf.WriteString("  always_comb begin\n")
		for _, line := range stmtLines(c.Nodes(), resolve, "=", "    ") {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
		buf.WriteString("  end\n")
	}

	for _, sq := range m.Sequentials() {
		edges := make([]string, len(sq.Clocks()))
		for i, cs := range sq.Clocks() {
			edgeWord := "posedge"
			if cs.Edge == block.Negedge {
				edgeWord = "negedge"
			}
			edges[i] = fmt.Sprintf("%s %s", edgeWord, resolve(cs.Clock))
		}
		fmt.Fprintf(buf, "  always_ff @(%s) begin\n", strings.Join(edges, " or "))
		for _, line := range stmtLines(sq.Nodes(), resolve, "<=", "    ") {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
		buf.WriteString("  end\n")
	}

	buf.WriteString("endmodule\n\n")
	return nil
}

func portDecls(m *module.Module) []string {
	var lines []string
	add := func(direction string, ports []*module.Port) {
		for _, p := range ports {
			name, err := m.ResolvedName(p.Logic)
			if err != nil {
				name = p.Name
			}
			lines = append(lines, fmt.Sprintf("  %s logic %s%s", direction, rangeText(p.Logic.Width()), safeName(name)))
		}
	}
	add("input ", m.Inputs())
	add("output", m.Outputs())
	add("inout ", m.Inouts())
	return lines
}

func instanceLines(parent, child *module.Module) (string, error) {
	instName, err := parent.ResolvedSubmoduleName(child)
	if err != nil {
		return "", err
	}
	var conns []string
	addConns := func(ports []*module.Port) error {
		for _, p := range ports {
			local, err := localName(parent, p.Logic)
			if err != nil {
				return err
			}
			conns = append(conns, fmt.Sprintf("    .%s(%s)", safeName(p.Name), local))
		}
		return nil
	}
	if err := addConns(child.Inputs()); err != nil {
		return "", err
	}
	if err := addConns(child.Outputs()); err != nil {
		return "", err
	}
	if err := addConns(child.Inouts()); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "  %s %s (\n", safeName(child.Name()), safeName(instName))
	buf.WriteString(strings.Join(conns, ",\n"))
	buf.WriteString("\n  );\n")
	return buf.String(), nil
}

// localResolver returns a resolver that names every signal reachable from
// m using m's own resolved name for signals m owns.
func localResolver(m *module.Module) resolver {
	return func(l *signal.Logic) string {
		if n, err := localName(m, l); err == nil {
			return n
		}
		return safeName(l.Name())
	}
}

// localName finds, among the Logics sharing l's storage cell, the one
// owned by m, and returns its resolved, keyword-safe name: this is how a
// sub-module's port (owned by the child) is translated to the wire name m
// uses for the same cell at the instantiation site.
func localName(m *module.Module, l *signal.Logic) (string, error) {
	for _, peer := range l.Peers() {
		if peer.Owner() == signal.Owner(m) {
			name, err := m.ResolvedName(peer)
			if err != nil {
				return "", err
			}
			return safeName(name), nil
		}
	}
	return "", fmt.Errorf("rivulet/synth: signal %q has no binding owned by module %s", l.Name(), m.Name())
}

func rangeText(width int) string {
	if width <= 1 {
		return ""
	}
	return fmt.Sprintf("[%d:0] ", width-1)
}

func safeName(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}
