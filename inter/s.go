// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "github.com/go-air/d3x/z"

// Deadline is an oracle polled by a search.  Once Expired returns true
// the search unwinds and reports a partial result.
//
// A Deadline may be shared by searches running in different goroutines
// and so Expired must be safe for concurrent use.
type Deadline interface {
	Expired() bool
}

// Builder encapsulates something to which diagram nodes can be added.
//
// Nodes must be added children first: lo and hi are either terminals
// or nodes previously returned by Node.  Builders do not reduce: adding a
// node whose hi child is z.Reject adds that node.
type Builder interface {
	// Node adds a node labelled v and returns its identity.
	Node(v z.Var, lo, hi z.Node) z.Node

	// Root designates n as the root.
	Root(n z.Node)
}

// Result is the outcome of one search.
type Result struct {
	// Nodes is the number of search tree nodes visited.
	Nodes int64
	// Solutions is the number of solutions found.
	Solutions int64
	// Updates is the number of detach operations applied.
	Updates int64
	// Models holds the solutions when they are collected, each as the
	// ascending included variables.
	Models [][]z.Var
	// TimedOut is set when the deadline expired before the search
	// completed; the counters are then those accumulated so far.
	TimedOut bool
}

// Searcher encapsulates an exhaustive search over a diagram.
type Searcher interface {
	// Search enumerates solutions until done or until d expires.  d may
	// be nil, meaning no deadline.  An error is returned only for
	// internal defects; a timeout is reported in the Result.
	Search(d Deadline) (Result, error)
}
