// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package xo holds the node store, validator and backtracking search
// behind package d3x.
package xo
