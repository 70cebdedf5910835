// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/go-air/d3x/z"

type memoEntry struct {
	ok    bool
	count int64
	sufs  [][]z.Var
}

// Memo caches the outcome of searching below a root.  Since the sub
// diagram below a node is determined by the node, the arena index is the
// key.  A Memo is valid for one search of one Store.
type Memo struct {
	D []memoEntry

	stHits    int64
	stMisses  int64
	stEntries int
}

// NewMemo creates a memo for a store with n arena slots.
func NewMemo(n int) *Memo {
	return &Memo{D: make([]memoEntry, n)}
}

// Lookup returns the number of solutions below n and, if they were
// stored, the solutions as suffixes.
func (m *Memo) Lookup(n z.Node) (count int64, sufs [][]z.Var, ok bool) {
	e := &m.D[n]
	if !e.ok {
		m.stMisses++
		return 0, nil, false
	}
	m.stHits++
	return e.count, e.sufs, true
}

// Store records the outcome of a complete search below n.
func (m *Memo) Store(n z.Node, count int64, sufs [][]z.Var) {
	e := &m.D[n]
	if !e.ok {
		m.stEntries++
	}
	e.ok = true
	e.count = count
	e.sufs = sufs
}

// Reset forgets all entries.
func (m *Memo) Reset() {
	for i := range m.D {
		m.D[i] = memoEntry{}
	}
	m.stEntries = 0
}

// Len returns the number of entries.
func (m *Memo) Len() int {
	return m.stEntries
}

func (m *Memo) readStats(st *Stats) {
	st.MemoHits += m.stHits
	m.stHits = 0
	st.MemoMisses += m.stMisses
	m.stMisses = 0
	st.MemoEntries = m.stEntries
}
