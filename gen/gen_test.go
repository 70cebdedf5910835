// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"

	"github.com/go-air/d3x/z"
)

// tb is a builder which checks the nodes it is given.
type tb struct {
	t    *testing.T
	vs   []z.Var
	los  []z.Node
	his  []z.Node
	root z.Node
}

func newTb(t *testing.T) *tb {
	return &tb{t: t, root: z.NodeNull}
}

func (b *tb) Node(v z.Var, lo, hi z.Node) z.Node {
	if hi == z.Reject {
		b.t.Errorf("unreduced node %s", v)
	}
	for _, c := range []z.Node{lo, hi} {
		if c.IsTerminal() {
			continue
		}
		if int(c)-2 >= len(b.vs) {
			b.t.Errorf("child %s added after parent", c)
			continue
		}
		if b.vs[c-2] <= v {
			b.t.Errorf("order: %s above %s", v, b.vs[c-2])
		}
	}
	b.vs = append(b.vs, v)
	b.los = append(b.los, lo)
	b.his = append(b.his, hi)
	return z.Node(len(b.vs) + 1)
}

func (b *tb) Root(n z.Node) {
	b.root = n
}

func (b *tb) count() int64 {
	memo := map[z.Node]int64{z.Reject: 0, z.Accept: 1}
	var f func(n z.Node) int64
	f = func(n z.Node) int64 {
		if c, ok := memo[n]; ok {
			return c
		}
		c := f(b.los[n-2]) + f(b.his[n-2])
		memo[n] = c
		return c
	}
	if b.root == z.NodeNull {
		b.t.Fatalf("no root")
	}
	return f(b.root)
}

// sets returns the family as bitmasks over variables < 64.
func (b *tb) sets() map[uint64]bool {
	res := map[uint64]bool{}
	var f func(n z.Node, acc uint64)
	f = func(n z.Node, acc uint64) {
		switch n {
		case z.Reject:
			return
		case z.Accept:
			res[acc] = true
			return
		}
		f(b.los[n-2], acc)
		f(b.his[n-2], acc|1<<uint(b.vs[n-2]))
	}
	f(b.root, 0)
	return res
}

func binom(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	r := int64(1)
	for i := 1; i <= k; i++ {
		r = r * int64(n-k+i) / int64(i)
	}
	return r
}

func TestSingletons(t *testing.T) {
	for n := 0; n < 20; n++ {
		b := newTb(t)
		Singletons(b, n)
		if c := b.count(); c != int64(n) {
			t.Errorf("singletons %d: %d sets", n, c)
		}
		if len(b.vs) != n {
			t.Errorf("singletons %d: %d nodes", n, len(b.vs))
		}
	}
}

func TestPowerSet(t *testing.T) {
	for n := 0; n < 40; n++ {
		b := newTb(t)
		PowerSet(b, n)
		if c := b.count(); c != int64(1)<<uint(n) {
			t.Errorf("powerset %d: %d sets", n, c)
		}
	}
}

func TestKSubsets(t *testing.T) {
	for n := 0; n < 16; n++ {
		for k := -1; k <= n+1; k++ {
			b := newTb(t)
			KSubsets(b, n, k)
			if c := b.count(); c != binom(n, k) {
				t.Errorf("%d-subsets of %d: %d != %d", k, n, c, binom(n, k))
			}
		}
	}
}

func TestPath(t *testing.T) {
	fib := []int64{1, 2}
	for n := 0; n < 40; n++ {
		if n >= 2 {
			fib = append(fib, fib[n-1]+fib[n-2])
		}
		b := newTb(t)
		Path(b, n)
		if c := b.count(); c != fib[n] {
			t.Errorf("path %d: %d != %d", n, c, fib[n])
		}
	}
}

func TestPartition(t *testing.T) {
	for n := 0; n < 6; n++ {
		for k := 1; k < 5; k++ {
			b := newTb(t)
			Partition(b, n, k)
			want := int64(1)
			for i := 0; i < n; i++ {
				want *= int64(k)
			}
			if c := b.count(); c != want {
				t.Errorf("partition %d/%d: %d != %d", n, k, c, want)
			}
		}
	}
}

func TestFamily(t *testing.T) {
	sets := [][]z.Var{{3, 1}, {1, 3}, {}, {2}, {5, 5, 2}}
	b := newTb(t)
	Family(b, sets)
	got := b.sets()
	want := map[uint64]bool{
		1<<1 | 1<<3: true,
		0:           true,
		1 << 2:      true,
		1<<2 | 1<<5: true}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for s := range want {
		if !got[s] {
			t.Errorf("missing %b", s)
		}
	}
	b = newTb(t)
	Family(b, nil)
	if b.root != z.Reject {
		t.Errorf("empty family root %s", b.root)
	}
}

func TestRandFamily(t *testing.T) {
	Seed(44)
	for i := 0; i < 20; i++ {
		b := newTb(t)
		RandFamily(b, 12, 30)
		c := b.count()
		if c < 1 || c > 30 {
			t.Errorf("random family with %d sets", c)
		}
		if int64(len(b.sets())) != c {
			t.Errorf("count %d != %d sets", c, len(b.sets()))
		}
	}
}

func TestRandSetSizes(t *testing.T) {
	Seed(46)
	rs := NewRandSetter(5, 9)
	rs.SetMinSize(3)
	rs.SetMaxSize(3)
	var set []z.Var
	for i := 0; i < 50; i++ {
		set = rs.RandSet(set)
		if len(set) != 3 {
			t.Errorf("set %v: expected 3 elements, actual %d", set, len(set))
		}
		for _, v := range set {
			if v < 1 || v > 9 {
				t.Errorf("set %v: variable %s out of range", set, v)
			}
		}
	}
	rs.SetMinSize(0)
	rs.SetMaxSize(0)
	if set = rs.RandSet(set); len(set) != 0 {
		t.Errorf("expected empty set, actual %v", set)
	}
}

func TestIndependent(t *testing.T) {
	Seed(45)
	for i := 0; i < 10; i++ {
		n, m := 10, 3*i
		g := RandGraph(n, m)
		b := newTb(t)
		Independent(b, g)
		want := int64(0)
		for s := uint64(0); s < 1<<uint(n); s++ {
			ok := true
			for a, es := range g {
				for _, c := range es {
					if s&(1<<uint(a)) != 0 && s&(1<<uint(c)) != 0 {
						ok = false
					}
				}
			}
			if ok {
				want++
			}
		}
		if c := b.count(); c != want {
			t.Errorf("independent sets %d/%d: %d != %d", n, m, c, want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		g, ok := Lookup(name)
		if !ok {
			t.Errorf("%s not found", name)
			continue
		}
		b := newTb(t)
		g(b, 5, 2)
		if b.root == z.NodeNull {
			t.Errorf("%s set no root", name)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Errorf("found nope")
	}
}
