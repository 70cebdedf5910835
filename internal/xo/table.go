// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"github.com/go-air/d3x/z"
	"github.com/go-air/d3x/zdd"
)

// Table is the node table of a diagram as loaded, before validation.
//
// Table implements zdd.Vis so it can be filled by zdd.Read.
type Table struct {
	Recs      []zdd.Record
	Roots     []zdd.Ref
	RootLines []int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Node implements zdd.Vis.
func (t *Table) Node(rec *zdd.Record) {
	t.Recs = append(t.Recs, *rec)
}

// Root implements zdd.Vis.
func (t *Table) Root(ref zdd.Ref, line int) {
	t.Roots = append(t.Roots, ref)
	t.RootLines = append(t.RootLines, line)
}

// Eof implements zdd.Vis.
func (t *Table) Eof() {}

// Vars returns the ranking of the variables occurring in t.
func (t *Table) Vars() *z.Vars {
	vs := make([]z.Var, len(t.Recs))
	for i := range t.Recs {
		vs[i] = t.Recs[i].Var
	}
	return z.NewVars(vs)
}

// NumVars returns the number of distinct variables in t.
func (t *Table) NumVars() int {
	seen := make(map[z.Var]struct{}, 64)
	for i := range t.Recs {
		seen[t.Recs[i].Var] = struct{}{}
	}
	return len(seen)
}

// index maps ids to the position of their first record.
func (t *Table) index() map[int64]int {
	res := make(map[int64]int, len(t.Recs))
	for i := range t.Recs {
		id := t.Recs[i].ID
		if _, ok := res[id]; !ok {
			res[id] = i
		}
	}
	return res
}

// RootRef returns the root reference and whether it is determined.  A table
// without nodes and pragmas has root zdd.RejectRef.
func (t *Table) RootRef() (zdd.Ref, bool) {
	switch len(t.Roots) {
	case 0:
	case 1:
		return t.Roots[0], true
	default:
		return zdd.Ref{}, false
	}
	if len(t.Recs) == 0 {
		return zdd.RejectRef, true
	}
	tops := t.unreferenced()
	if len(tops) != 1 {
		return zdd.Ref{}, false
	}
	return zdd.NodeRef(t.Recs[tops[0]].ID), true
}

// unreferenced returns the positions of the records whose id no record
// references.
func (t *Table) unreferenced() []int {
	refd := make(map[int64]bool, len(t.Recs))
	for i := range t.Recs {
		rec := &t.Recs[i]
		if !rec.Lo.Terminal {
			refd[rec.Lo.ID] = true
		}
		if !rec.Hi.Terminal {
			refd[rec.Hi.ID] = true
		}
	}
	var res []int
	for i := range t.Recs {
		if !refd[t.Recs[i].ID] {
			res = append(res, i)
		}
	}
	return res
}

// Builder is an inter.Builder filling a Table.  Node identities returned
// by Node are the arena indices the nodes will have in a Store built from
// the table.
type Builder struct {
	T *Table
}

// NewBuilder creates a Builder on an empty table.
func NewBuilder() *Builder {
	return &Builder{T: NewTable()}
}

// Node implements inter.Builder.
func (b *Builder) Node(v z.Var, lo, hi z.Node) z.Node {
	n := z.Node(len(b.T.Recs) + 2)
	b.T.Recs = append(b.T.Recs, zdd.Record{
		ID:  int64(n),
		Var: v,
		Lo:  nodeRef(lo),
		Hi:  nodeRef(hi)})
	return n
}

// Root implements inter.Builder.
func (b *Builder) Root(n z.Node) {
	b.T.Roots = append(b.T.Roots[:0], nodeRef(n))
	b.T.RootLines = append(b.T.RootLines[:0], 0)
}

func nodeRef(n z.Node) zdd.Ref {
	if n.IsTerminal() {
		return zdd.Ref{Terminal: true, ID: int64(n)}
	}
	return zdd.NodeRef(int64(n))
}
