// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"fmt"

	"github.com/go-air/d3x/zdd"
)

// CheckSanity checks the structural rules of t without modifying it and
// returns one *Violation per offence.
//
//  - ids are unique
//  - every child reference resolves to a node or a terminal
//  - every node's variable is smaller than its non-terminal children's
//  - there is no cycle
//  - there is exactly one root
func (t *Table) CheckSanity() []error {
	var errs []error
	add := func(rec *zdd.Record, r Rule, format string, args ...interface{}) {
		errs = append(errs, &Violation{
			Node:   rec.ID,
			Line:   rec.Line,
			Rule:   r,
			Detail: fmt.Sprintf(format, args...)})
	}
	idx := t.index()
	for i := range t.Recs {
		rec := &t.Recs[i]
		if j := idx[rec.ID]; j != i {
			add(rec, RuleDuplicate, "also defined at line %d", t.Recs[j].Line)
		}
		for _, c := range [...]zdd.Ref{rec.Lo, rec.Hi} {
			if c.Terminal {
				continue
			}
			j, ok := idx[c.ID]
			if !ok {
				add(rec, RuleDangling, "child %d undefined", c.ID)
				continue
			}
			if cv := t.Recs[j].Var; cv <= rec.Var {
				add(rec, RuleOrder, "variable %s not below child %d variable %s", rec.Var, c.ID, cv)
			}
		}
	}
	for _, i := range t.cycles(idx) {
		rec := &t.Recs[i]
		add(rec, RuleCycle, "node %d reaches itself", rec.ID)
	}
	errs = append(errs, t.checkRoot(idx)...)
	return errs
}

// Validate returns a *ValidationError if CheckSanity finds violations.
func (t *Table) Validate() error {
	errs := t.CheckSanity()
	if len(errs) == 0 {
		return nil
	}
	res := &ValidationError{Violations: make([]*Violation, len(errs))}
	for i, e := range errs {
		res.Violations[i] = e.(*Violation)
	}
	return res
}

const (
	white = iota
	grey
	black
)

// cycles returns the positions of nodes with an edge closing a cycle.
func (t *Table) cycles(idx map[int64]int) []int {
	color := make([]uint8, len(t.Recs))
	var res []int
	var visit func(i int)
	visit = func(i int) {
		color[i] = grey
		rec := &t.Recs[i]
		for _, c := range [...]zdd.Ref{rec.Lo, rec.Hi} {
			if c.Terminal {
				continue
			}
			j, ok := idx[c.ID]
			if !ok {
				continue
			}
			switch color[j] {
			case grey:
				res = append(res, i)
			case white:
				visit(j)
			}
		}
		color[i] = black
	}
	for i := range t.Recs {
		if color[i] == white && idx[t.Recs[i].ID] == i {
			visit(i)
		}
	}
	return res
}

func (t *Table) checkRoot(idx map[int64]int) []error {
	viol := func(id int64, line int, format string, args ...interface{}) []error {
		return []error{&Violation{
			Node:   id,
			Line:   line,
			Rule:   RuleRoot,
			Detail: fmt.Sprintf(format, args...)}}
	}
	switch len(t.Roots) {
	case 0:
	case 1:
		ref := t.Roots[0]
		if ref.Terminal {
			return nil
		}
		if _, ok := idx[ref.ID]; !ok {
			return viol(ref.ID, t.RootLines[0], "root undefined")
		}
		return nil
	default:
		return viol(t.Roots[1].ID, t.RootLines[1], "%d root pragmas", len(t.Roots))
	}
	if len(t.Recs) == 0 {
		return nil
	}
	tops := t.unreferenced()
	switch len(tops) {
	case 1:
		return nil
	case 0:
		return viol(t.Recs[0].ID, t.Recs[0].Line, "every node is referenced")
	}
	rec := &t.Recs[tops[1]]
	return viol(rec.ID, rec.Line, "%d unreferenced nodes, first is %d", len(tops), t.Recs[tops[0]].ID)
}
