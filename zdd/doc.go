// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package zdd reads and writes zero-suppressed decision diagrams in a line
// oriented text format.
//
// Each non-blank line which does not start with '.' describes one node
//
//  <id> <var> <lo-label> <lo-target> <hi-label> <hi-target>
//
// where a label is 'T' for a terminal (target 0 rejects, 1 accepts) or 'N'
// for a reference to another node by id.  Labels are case insensitive.
//
// Lines starting with '.' are comments, except
//
//  .root <label> <target>
//
// which names the root of the diagram.  Without it, the root is the node
// which no other node references.
package zdd
