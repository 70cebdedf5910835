// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package zdd

import (
	"fmt"

	"github.com/go-air/d3x/z"
)

// Ref is a child reference as it appears in a file: either a terminal
// or the id of another node.
type Ref struct {
	Terminal bool
	// ID is 0 or 1 for terminals, a node id otherwise.
	ID int64
}

var (
	// RejectRef refers to the rejecting terminal.
	RejectRef = Ref{Terminal: true, ID: 0}
	// AcceptRef refers to the accepting terminal.
	AcceptRef = Ref{Terminal: true, ID: 1}
)

// NodeRef returns a reference to the node with identifier id.
func NodeRef(id int64) Ref {
	return Ref{ID: id}
}

// Node returns the terminal z.Node for a terminal reference and z.NodeNull
// otherwise.
func (r Ref) Node() z.Node {
	if !r.Terminal {
		return z.NodeNull
	}
	if r.ID == 0 {
		return z.Reject
	}
	return z.Accept
}

func (r Ref) String() string {
	if r.Terminal {
		return fmt.Sprintf("T %d", r.ID)
	}
	return fmt.Sprintf("N %d", r.ID)
}

// Record is one node line.
type Record struct {
	ID   int64
	Var  z.Var
	Lo   Ref
	Hi   Ref
	Line int
}

func (r *Record) String() string {
	return fmt.Sprintf("%d %d %s %s", r.ID, int32(r.Var), r.Lo, r.Hi)
}
