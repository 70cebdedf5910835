// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/go-air/d3x/z"

type undoOp uint8

const (
	opDetach undoOp = iota
	opRedirect
)

type undo struct {
	op undoOp
	n  z.Node
	to z.Node
}

// Trail is the undo log of a Store.  Search frames take a Mark before
// mutating and go Back to it before returning, so each frame owns the
// records above its mark.
type Trail struct {
	D  []undo
	st *Store

	stMax int
}

// NewTrail creates a trail for st.
func NewTrail(st *Store) *Trail {
	return &Trail{
		D:  make([]undo, 0, st.Len()),
		st: st}
}

// Len returns the number of records on the trail.
func (t *Trail) Len() int {
	return len(t.D)
}

// Mark returns the current position of the trail.
func (t *Trail) Mark() int {
	return len(t.D)
}

func (t *Trail) push(u undo) {
	t.D = append(t.D, u)
	if len(t.D) > t.stMax {
		t.stMax = len(t.D)
	}
}

// Back undoes the records above mark, most recent first.
func (t *Trail) Back(mark int) {
	if mark > len(t.D) {
		panic(invariantf("back to %d above trail length %d", mark, len(t.D)))
	}
	st := t.st
	for i := len(t.D) - 1; i >= mark; i-- {
		u := &t.D[i]
		switch u.op {
		case opDetach:
			st.reattach(u.n)
		case opRedirect:
			st.unredirect(u.n, u.to)
		}
	}
	t.D = t.D[:mark]
}

func (t *Trail) readStats(s *Stats) {
	if t.stMax > s.MaxTrail {
		s.MaxTrail = t.stMax
	}
	t.stMax = 0
}
