// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"fmt"

	"github.com/go-air/d3x/z"
	"github.com/go-air/d3x/zdd"
)

// Store holds the nodes of a validated diagram in an arena together with
// the mutable active structure explored by the search.
//
// Topology (Level, Lo, Hi, IDs) never changes once built.  The active set
// is the set of nodes reachable from Root; each active node is linked into
// the list of its level and Refs counts its active parents, the root edge
// included.  Detach and Redirect are the only mutations, and each pushes an
// undo record onto a Trail.
type Store struct {
	Vars  *z.Vars
	Level []z.Level
	Lo    []z.Node
	Hi    []z.Node
	IDs   []int64

	Root   z.Node
	Active []bool
	Refs   []int32
	Links

	nActive  int
	initRoot z.Node

	// counts detaches since the last readStats
	stUpdates int64
	// called on every detach, for tests
	onDetach func(n z.Node)
}

// NewStore builds a Store from t.  NewStore returns a *ValidationError
// if t is not sane.
func NewStore(t *Table) (*Store, error) {
	if e := t.Validate(); e != nil {
		return nil, e
	}
	idx := t.index()
	N := len(t.Recs) + 2
	vars := t.Vars()
	st := &Store{
		Vars:   vars,
		Level:  make([]z.Level, N),
		Lo:     make([]z.Node, N),
		Hi:     make([]z.Node, N),
		IDs:    make([]int64, N),
		Active: make([]bool, N),
		Refs:   make([]int32, N)}
	node := func(ref zdd.Ref) z.Node {
		if ref.Terminal {
			return ref.Node()
		}
		return z.Node(idx[ref.ID] + 2)
	}
	for _, n := range [...]z.Node{z.Reject, z.Accept} {
		st.Level[n] = z.LevelInf
		st.Lo[n] = n
		st.Hi[n] = n
		st.IDs[n] = -1
	}
	for i := range t.Recs {
		rec := &t.Recs[i]
		n := z.Node(i + 2)
		lvl, _ := vars.Level(rec.Var)
		st.Level[n] = lvl
		st.Lo[n] = node(rec.Lo)
		st.Hi[n] = node(rec.Hi)
		st.IDs[n] = rec.ID
	}
	root, _ := t.RootRef()
	st.initRoot = node(root)
	st.Links.init(N, vars.Len())
	st.Reset()
	return st, nil
}

// Len returns the number of arena slots, terminals included.
func (st *Store) Len() int {
	return len(st.Level)
}

// NumActive returns the number of active non-terminal nodes.
func (st *Store) NumActive() int {
	return st.nActive
}

// Reset makes the active set the nodes reachable from the initial root,
// linked in arena order.
func (st *Store) Reset() {
	N := st.Len()
	st.Links.clear()
	for i := range st.Active {
		st.Active[i] = false
		st.Refs[i] = 0
	}
	st.nActive = 0
	st.Root = st.initRoot
	if st.Root.IsTerminal() {
		return
	}
	st.Refs[st.Root] = 1
	st.Active[st.Root] = true
	st.markReachable()
	for i := 2; i < N; i++ {
		n := z.Node(i)
		if !st.Active[n] {
			continue
		}
		st.Links.push(n, st.Level[n])
		st.nActive++
	}
}

func (st *Store) markReachable() {
	stack := []z.Node{st.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range [...]z.Node{st.Lo[n], st.Hi[n]} {
			if c.IsTerminal() {
				continue
			}
			st.Refs[c]++
			if !st.Active[c] {
				st.Active[c] = true
				stack = append(stack, c)
			}
		}
	}
}

// Detach removes n from the active structure, then releases its children.
// Each node detached pushes one undo record and counts one update.
func (st *Store) Detach(n z.Node, tr *Trail) {
	if n.IsTerminal() || !st.Active[n] {
		panic(invariantf("detach of inactive node %s", n))
	}
	st.Links.unlink(n)
	st.Active[n] = false
	st.nActive--
	tr.push(undo{op: opDetach, n: n})
	st.stUpdates++
	if st.onDetach != nil {
		st.onDetach(n)
	}
	st.release(st.Lo[n], tr)
	st.release(st.Hi[n], tr)
}

// Redirect repoints the root edge to `to`.  The old root is detached if
// `to` was its only active parent.
func (st *Store) Redirect(to z.Node, tr *Trail) {
	from := st.Root
	if !to.IsTerminal() {
		if !st.Active[to] {
			panic(invariantf("redirect %s to inactive node %s", from, to))
		}
		st.Refs[to]++
	}
	st.Root = to
	tr.push(undo{op: opRedirect, n: from, to: to})
	st.release(from, tr)
}

func (st *Store) release(n z.Node, tr *Trail) {
	if n.IsTerminal() {
		return
	}
	st.Refs[n]--
	switch {
	case st.Refs[n] == 0:
		st.Detach(n, tr)
	case st.Refs[n] < 0:
		panic(invariantf("negative in-degree at %s", n))
	}
}

// reattach undoes Detach(n).
func (st *Store) reattach(n z.Node) {
	if st.Active[n] {
		panic(invariantf("reattach of active node %s", n))
	}
	st.Links.relink(n)
	st.Active[n] = true
	st.nActive++
	for _, c := range [...]z.Node{st.Lo[n], st.Hi[n]} {
		if !c.IsTerminal() {
			st.Refs[c]++
		}
	}
}

// unredirect undoes a Redirect from `from` to `to`.
func (st *Store) unredirect(from, to z.Node) {
	if st.Root != to {
		panic(invariantf("undo redirect %s->%s with root %s", from, to, st.Root))
	}
	st.Root = from
	if !from.IsTerminal() {
		st.Refs[from]++
	}
	if !to.IsTerminal() {
		st.Refs[to]--
	}
}

// CheckActive checks the active structure against the reachability
// from Root and returns the inconsistencies found.
func (st *Store) CheckActive() []error {
	var errs []error
	N := st.Len()
	refs := make([]int32, N)
	seen := make([]bool, N)
	if !st.Root.IsTerminal() {
		refs[st.Root]++
		seen[st.Root] = true
		stack := []z.Node{st.Root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, c := range [...]z.Node{st.Lo[n], st.Hi[n]} {
				if c.IsTerminal() {
					continue
				}
				refs[c]++
				if !seen[c] {
					seen[c] = true
					stack = append(stack, c)
				}
			}
		}
	}
	n := 0
	for i := 2; i < N; i++ {
		m := z.Node(i)
		if seen[m] != st.Active[m] {
			errs = append(errs, fmt.Errorf("%s: active %t reachable %t", m, st.Active[m], seen[m]))
		}
		if seen[m] {
			n++
			if refs[m] != st.Refs[m] {
				errs = append(errs, fmt.Errorf("%s: refs %d != %d", m, st.Refs[m], refs[m]))
			}
		}
	}
	if n != st.nActive {
		errs = append(errs, fmt.Errorf("%d active nodes counted as %d", n, st.nActive))
	}
	errs = append(errs, st.Links.check(st.Active, st.Level)...)
	return errs
}

// readStats moves the update count of st into s.
func (st *Store) readStats(s *Stats) {
	s.Updates += st.stUpdates
	st.stUpdates = 0
}
