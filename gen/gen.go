// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/z"
)

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

type triple struct {
	v      z.Var
	lo, hi z.Node
}

// zb adds reduced nodes to a builder: no node has a rejecting hi child and
// no two nodes have the same variable and children.
type zb struct {
	dst  inter.Builder
	uniq map[triple]z.Node
}

func newZb(dst inter.Builder) *zb {
	return &zb{
		dst:  dst,
		uniq: make(map[triple]z.Node, 128)}
}

func (b *zb) mk(v z.Var, lo, hi z.Node) z.Node {
	if hi == z.Reject {
		return lo
	}
	k := triple{v, lo, hi}
	if n, ok := b.uniq[k]; ok {
		return n
	}
	n := b.dst.Node(v, lo, hi)
	b.uniq[k] = n
	return n
}

func (b *zb) root(n z.Node) z.Node {
	b.dst.Root(n)
	return n
}

// Singletons generates {{1}, {2}, ..., {n}}.
func Singletons(dst inter.Builder, n int) z.Node {
	b := newZb(dst)
	acc := z.Reject
	for i := n; i >= 1; i-- {
		acc = b.mk(z.Var(i), acc, z.Accept)
	}
	return b.root(acc)
}

// PowerSet generates all 2^n subsets of {1..n}.
func PowerSet(dst inter.Builder, n int) z.Node {
	b := newZb(dst)
	acc := z.Accept
	for i := n; i >= 1; i-- {
		acc = b.mk(z.Var(i), acc, acc)
	}
	return b.root(acc)
}

// KSubsets generates the subsets of {1..n} with exactly k elements.
func KSubsets(dst inter.Builder, n, k int) z.Node {
	b := newZb(dst)
	if k < 0 {
		return b.root(z.Reject)
	}
	// row[r] is the diagram for the variables above i needing r more.
	row := make([]z.Node, k+1)
	for r := range row {
		row[r] = z.Reject
	}
	row[0] = z.Accept
	for i := n; i >= 1; i-- {
		nxt := make([]z.Node, k+1)
		for r := 0; r <= k; r++ {
			hi := z.Reject
			if r > 0 {
				hi = row[r-1]
			}
			nxt[r] = b.mk(z.Var(i), row[r], hi)
		}
		row = nxt
	}
	return b.root(row[k])
}

// Path generates the independent sets of the path 1 - 2 - ... - n, the
// subsets of {1..n} without two consecutive numbers.
func Path(dst inter.Builder, n int) z.Node {
	b := newZb(dst)
	// next, next2 are the diagrams starting at i+1, i+2
	next, next2 := z.Accept, z.Accept
	for i := n; i >= 1; i-- {
		cur := b.mk(z.Var(i), next, next2)
		next, next2 = cur, next
	}
	return b.root(next)
}

// Family generates the family holding exactly the sets in sets.  Sets
// may be given in any order, with repetitions.
func Family(dst inter.Builder, sets [][]z.Var) z.Node {
	b := newZb(dst)
	norm := make([][]z.Var, 0, len(sets))
	for _, s := range sets {
		c := append([]z.Var(nil), s...)
		sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
		j := 0
		for i, v := range c {
			if i > 0 && v == c[j-1] {
				continue
			}
			c[j] = v
			j++
		}
		norm = append(norm, c[:j])
	}
	return b.root(b.family(norm))
}

// family builds the diagram of sets, which are sorted without duplicate
// elements.
func (b *zb) family(sets [][]z.Var) z.Node {
	if len(sets) == 0 {
		return z.Reject
	}
	top := z.VarNull
	hasEmpty := false
	for _, s := range sets {
		if len(s) == 0 {
			hasEmpty = true
			continue
		}
		if top == z.VarNull || s[0] < top {
			top = s[0]
		}
	}
	if top == z.VarNull {
		if hasEmpty {
			return z.Accept
		}
		return z.Reject
	}
	var los, his [][]z.Var
	for _, s := range sets {
		if len(s) != 0 && s[0] == top {
			his = append(his, s[1:])
			continue
		}
		los = append(los, s)
	}
	return b.mk(top, b.family(los), b.family(his))
}
