package cond

import (
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// Run interprets nodes in order against ctx. It implements the single
// evaluator shared by every node kind in the closed Node set; callers
// (block.Combinational, block.Sequential, and their SSA variants) differ
// only in the Context they supply.
func Run(nodes []Node, ctx Context) error {
	for _, n := range nodes {
		if err := runOne(n, ctx); err != nil {
			return err
		}
	}
	return nil
}

func runOne(n Node, ctx Context) error {
	switch t := n.(type) {
	case Assign:
		return ctx.Write(t.Target, t.Source.Eval(ctx))
	case If:
		return runOne(IfBlock{Branches: []IfBranch{
			{Cond: t.Cond, Body: t.Then},
			{Cond: nil, Body: t.Else},
		}}, ctx)
	case IfBlock:
		return runIfBlock(t, ctx)
	case Case:
		return runCase(t, ctx)
	default:
		return nil
	}
}

func runIfBlock(b IfBlock, ctx Context) error {
	for _, branch := range b.Branches {
		if branch.Cond == nil {
			return Run(branch.Body, ctx)
		}
		c := branch.Cond.Eval(ctx)
		if !c.IsValid() {
			// An undefined condition drives every signal the whole
			// chain could reach to all-X, per the branch-selection
			// ambiguity rule shared with Case.
			return driveAllX(collectTargets(flattenBranches(b)), ctx)
		}
		if c.BitAt(0) == value.Bit1 {
			return Run(branch.Body, ctx)
		}
	}
	return nil
}

func flattenBranches(b IfBlock) []Node {
	var out []Node
	for _, branch := range b.Branches {
		out = append(out, branch.Body...)
	}
	return out
}

// matchResult is the outcome of comparing a Case select value against one
// item's match value.
type matchResult byte

const (
	noMatch matchResult = iota
	match
	undefined
)

func compareCase(selectV, matchV value.Value, wildcard bool) matchResult {
	if selectV.Width() != matchV.Width() {
		return undefined
	}
	allMatch := true
	for i := 0; i < selectV.Width(); i++ {
		mb := matchV.BitAt(i)
		if wildcard && mb == value.BitZ {
			continue
		}
		sb := selectV.BitAt(i)
		if sb == value.BitX || sb == value.BitZ || mb == value.BitX || mb == value.BitZ {
			return undefined
		}
		if sb != mb {
			allMatch = false
		}
	}
	if allMatch {
		return match
	}
	return noMatch
}

func runCase(c Case, ctx Context) error {
	selectV := c.Select.Eval(ctx)
	targets := collectTargets(append(append([]Node{}, itemBodies(c.Items)...), c.Default...))

	if !selectV.IsValid() {
		return driveAllX(targets, ctx)
	}

	var matched []int
	anyUndefined := false
	for i, item := range c.Items {
		switch compareCase(selectV, item.Match.Eval(ctx), c.Wildcard) {
		case match:
			matched = append(matched, i)
		case undefined:
			anyUndefined = true
		}
	}
	if anyUndefined {
		return driveAllX(targets, ctx)
	}

	switch len(matched) {
	case 0:
		return Run(c.Default, ctx)
	case 1:
		return Run(c.Items[matched[0]].Body, ctx)
	default:
		if c.Kind == CaseUnique {
			return driveAllX(targets, ctx)
		}
		return Run(c.Items[matched[0]].Body, ctx)
	}
}

func itemBodies(items []CaseItem) []Node {
	var out []Node
	for _, it := range items {
		out = append(out, it.Body...)
	}
	return out
}

// driveAllX writes an all-X value of the appropriate width to every target
// signal, used whenever an If/IfBlock condition or a Case select/match is
// undefined and so the set of targets that would have been driven cannot be
// determined.
func driveAllX(targets []*signal.Logic, ctx Context) error {
	for _, t := range targets {
		if err := ctx.Write(t, value.AllX(t.Width())); err != nil {
			return err
		}
	}
	return nil
}

// Targets returns every distinct signal that could be assigned by an
// Assign node reachable within nodes, in first-seen order. Exported for use
// by block.Combinational/block.Sequential when registering driven targets
// for redrive detection.
func Targets(nodes []Node) []*signal.Logic { return collectTargets(nodes) }

// collectTargets walks nodes recursively and returns every distinct signal
// that could be assigned by an Assign node reachable within, in first-seen
// order.
func collectTargets(nodes []Node) []*signal.Logic {
	var out []*signal.Logic
	seen := make(map[*signal.Logic]bool)
	add := func(s *signal.Logic) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	var walk func([]Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			switch t := n.(type) {
			case Assign:
				add(t.Target)
			case If:
				walk(t.Then)
				walk(t.Else)
			case IfBlock:
				for _, b := range t.Branches {
					walk(b.Body)
				}
			case Case:
				for _, it := range t.Items {
					walk(it.Body)
				}
				walk(t.Default)
			}
		}
	}
	walk(nodes)
	return out
}

// Sensitivity collects every signal read (transitively) by nodes, deduped
// in first-seen order, for use as a Combinational block's sensitivity list.
func Sensitivity(nodes []Node) []*signal.Logic {
	var out []*signal.Logic
	seen := make(map[*signal.Logic]bool)
	add := func(sigs []*signal.Logic) {
		for _, s := range sigs {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	var walk func([]Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			switch t := n.(type) {
			case Assign:
				add(t.Source.Reads())
			case If:
				add(t.Cond.Reads())
				walk(t.Then)
				walk(t.Else)
			case IfBlock:
				for _, b := range t.Branches {
					if b.Cond != nil {
						add(b.Cond.Reads())
					}
					walk(b.Body)
				}
			case Case:
				add(t.Select.Reads())
				for _, it := range t.Items {
					add(it.Match.Reads())
					walk(it.Body)
				}
				walk(t.Default)
			}
		}
	}
	walk(nodes)
	return out
}
