// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/z"
)

// MaxGraphNodes is the largest graph Independent accepts.
const MaxGraphNodes = 64

// Independent generates the independent sets of the graph g, given as
// symmetric edge lists over nodes [0..len(g)).  Node i is variable i+1.
// Independent panics if g has more than MaxGraphNodes nodes.
func Independent(dst inter.Builder, g [][]int) z.Node {
	n := len(g)
	if n > MaxGraphNodes {
		panic("graph too large")
	}
	// below[i]: neighbours of i smaller than i
	// front[i]: nodes < i with a neighbour >= i
	below := make([]uint64, n)
	front := make([]uint64, n+1)
	for i, es := range g {
		for _, j := range es {
			if j < i {
				below[i] |= 1 << uint(j)
			}
		}
	}
	for i := 0; i <= n; i++ {
		for j := 0; j < i; j++ {
			for _, k := range g[j] {
				if k >= i {
					front[i] |= 1 << uint(j)
					break
				}
			}
		}
	}
	b := newZb(dst)
	type key struct {
		i    int
		mask uint64
	}
	memo := make(map[key]z.Node)
	var f func(i int, mask uint64) z.Node
	f = func(i int, mask uint64) z.Node {
		if i == n {
			return z.Accept
		}
		k := key{i, mask}
		if res, ok := memo[k]; ok {
			return res
		}
		lo := f(i+1, mask&front[i+1])
		hi := z.Reject
		if mask&below[i] == 0 {
			hi = f(i+1, (mask|1<<uint(i))&front[i+1])
		}
		res := b.mk(z.Var(i+1), lo, hi)
		memo[k] = res
		return res
	}
	return b.root(f(0, 0))
}

// RandIndependent generates the independent sets of RandGraph(n, m).
func RandIndependent(dst inter.Builder, n, m int) z.Node {
	return Independent(dst, RandGraph(n, m))
}

type edge struct {
	a, b int
}

// RandGraph creates a simple (undirected) random graph with n nodes and m
// edges.  If m > n*(n-1)/2, RandGraph returns nil.
//
// The result is in the form of an edge list, namely each node is idenitified
// by an integer in [0..n) and the edgelist for node i is result[i], which is a
// list of edges.  There are no multi-edges, no self edges, and sampling is
// done without replacement, using the package rng.
func RandGraph(n, m int) [][]int {
	if m > n*(n-1)/2 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	ns := make([][]int, n)

	es := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			es = append(es, edge{i, j})
		}
	}

	for i := 0; i < m; i++ {
		el := len(es)
		j := rng.Intn(el)
		e := es[j]
		ns[e.a] = append(ns[e.a], e.b)
		el--
		es[j], es[el] = es[el], es[j]
		es = es[:el]
	}
	// make it symmetric
	for i, es := range ns {
		for _, j := range es {
			if j < i {
				ns[j] = append(ns[j], i)
			}
		}
	}
	return ns
}
