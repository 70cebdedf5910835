// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package d3x enumerates the sets of a family given as a zero-suppressed
// decision diagram, by dancing links style backtracking over the diagram
// nodes.
//
// A diagram is read with Parse or Load, checked with Validate and
// enumerated with Search:
//
//  d, err := d3x.Load("family.zdd")
//  if err != nil {
//          ...
//  }
//  if err := d.Validate(); err != nil {
//          ...
//  }
//  res, err := d.Search(d3x.Timeout(time.Minute), d3x.DefaultOptions())
//
// Search counts the search tree nodes visited, the solutions found and the
// detach operations applied.  Result.TimedOut reports a search cut short by
// its deadline.
//
// Package gen builds diagrams of common families through a Builder.
package d3x
