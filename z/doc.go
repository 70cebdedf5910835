// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the identity types shared by the d3x packages.
//
// A Var is a variable as it appears in a diagram file, a Level is the dense
// rank of a Var among all the variables of a diagram, and a Node is the index
// of a node in a node arena.  The two terminals occupy the first two arena
// slots: Reject at 0 and Accept at 1.
package z
