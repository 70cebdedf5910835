// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"github.com/google/go-cmp/cmp"

	"github.com/go-air/d3x/z"
)

// Snapshot is a copy of the mutable state of a Store.
type Snapshot struct {
	Root    z.Node
	Next    []z.Node
	Prev    []z.Node
	Active  []bool
	Refs    []int32
	NActive int
}

// Snapshot copies the mutable state of st.
func (st *Store) Snapshot() *Snapshot {
	return &Snapshot{
		Root:    st.Root,
		Next:    append([]z.Node(nil), st.Next...),
		Prev:    append([]z.Node(nil), st.Prev...),
		Active:  append([]bool(nil), st.Active...),
		Refs:    append([]int32(nil), st.Refs...),
		NActive: st.nActive}
}

// Diff returns a description of the differences between s and o, or ""
// if they are identical.
func (s *Snapshot) Diff(o *Snapshot) string {
	return cmp.Diff(s, o)
}
