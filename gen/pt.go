// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/z"
)

// PartVar returns the variable stating that element i is in part j, for a
// partition into k parts.
func PartVar(i, j, k int) z.Var {
	return z.Var(i*k + j + 1)
}

// Partition generates the assignments of n elements to k parts, each
// element in exactly one part.  Every set of the result holds
// PartVar(i, j, k) for exactly one j per element i.  There are k^n sets.
func Partition(dst inter.Builder, n, k int) z.Node {
	b := newZb(dst)
	next := z.Accept
	if k <= 0 && n > 0 {
		next = z.Reject
	}
	for i := n - 1; i >= 0 && k > 0; i-- {
		// chooses exactly one part for element i, then continues with next
		acc := z.Reject
		for j := k - 1; j >= 0; j-- {
			acc = b.mk(PartVar(i, j, k), acc, next)
		}
		next = acc
	}
	return b.root(next)
}
