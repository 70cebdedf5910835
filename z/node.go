// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Node is the index of a node in an arena.
type Node uint32

const (
	// Reject is the terminal denoting the empty family.
	Reject Node = 0
	// Accept is the terminal denoting the family holding only the empty set.
	Accept Node = 1
	// NodeNull is never a valid node.
	NodeNull Node = 0xffffffff
)

// IsTerminal returns whether n is Reject or Accept.
func (n Node) IsTerminal() bool {
	return n <= Accept
}

func (n Node) String() string {
	switch n {
	case Reject:
		return "⊥"
	case Accept:
		return "⊤"
	case NodeNull:
		return "n?"
	}
	return fmt.Sprintf("n%d", uint32(n))
}
