// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"fmt"

	"github.com/go-air/d3x/z"
)

// Links keeps one circular doubly linked list per level.  Nodes and list
// headers share the Next and Prev arrays: slots below H are nodes, slot
// H+l is the header of level l.
//
// unlink leaves the pointers of the unlinked node untouched so that relink
// restores it in O(1), provided unlinks and relinks are strictly nested.
type Links struct {
	Next []z.Node
	Prev []z.Node
	H    int
}

func (l *Links) init(n, levels int) {
	l.H = n
	l.Next = make([]z.Node, n+levels)
	l.Prev = make([]z.Node, n+levels)
	l.clear()
}

func (l *Links) clear() {
	for i := 0; i < l.H; i++ {
		l.Next[i] = z.NodeNull
		l.Prev[i] = z.NodeNull
	}
	for i := l.H; i < len(l.Next); i++ {
		l.Next[i] = z.Node(i)
		l.Prev[i] = z.Node(i)
	}
}

// NumLevels returns the number of lists.
func (l *Links) NumLevels() int {
	return len(l.Next) - l.H
}

func (l *Links) header(lvl z.Level) z.Node {
	return z.Node(l.H + int(lvl))
}

// push appends n to the list of lvl.
func (l *Links) push(n z.Node, lvl z.Level) {
	h := l.header(lvl)
	last := l.Prev[h]
	l.Next[last] = n
	l.Prev[n] = last
	l.Next[n] = h
	l.Prev[h] = n
}

func (l *Links) unlink(n z.Node) {
	next, prev := l.Next[n], l.Prev[n]
	l.Next[prev] = next
	l.Prev[next] = prev
}

func (l *Links) relink(n z.Node) {
	l.Next[l.Prev[n]] = n
	l.Prev[l.Next[n]] = n
}

// Empty returns whether the list of lvl is empty.
func (l *Links) Empty(lvl z.Level) bool {
	h := l.header(lvl)
	return l.Next[h] == h
}

// Single returns the node of the list of lvl if it holds exactly one,
// z.NodeNull otherwise.
func (l *Links) Single(lvl z.Level) z.Node {
	h := l.header(lvl)
	n := l.Next[h]
	if n == h || l.Next[n] != h {
		return z.NodeNull
	}
	return n
}

// MinLevel returns the smallest level at or above from with a non-empty
// list, or z.LevelInf.
func (l *Links) MinLevel(from z.Level) z.Level {
	L := z.Level(l.NumLevels())
	for lvl := from; lvl < L; lvl++ {
		if !l.Empty(lvl) {
			return lvl
		}
	}
	return z.LevelInf
}

// Each calls f on each node in the list of lvl.
func (l *Links) Each(lvl z.Level, f func(n z.Node)) {
	h := l.header(lvl)
	for n := l.Next[h]; n != h; n = l.Next[n] {
		f(n)
	}
}

func (l *Links) check(active []bool, level []z.Level) []error {
	var errs []error
	listed := make([]int, l.H)
	for lvl := 0; lvl < l.NumLevels(); lvl++ {
		h := l.header(z.Level(lvl))
		steps := 0
		for n := l.Next[h]; n != h; n = l.Next[n] {
			if int(n) >= l.H || n.IsTerminal() {
				errs = append(errs, fmt.Errorf("level %d lists bad slot %d", lvl, n))
				break
			}
			if l.Next[l.Prev[n]] != n || l.Prev[l.Next[n]] != n {
				errs = append(errs, fmt.Errorf("%s: broken links", n))
			}
			if level[n] != z.Level(lvl) {
				errs = append(errs, fmt.Errorf("%s at %s listed at level %d", n, level[n], lvl))
			}
			listed[n]++
			steps++
			if steps > l.H {
				errs = append(errs, fmt.Errorf("level %d list does not end", lvl))
				break
			}
		}
	}
	for i := 2; i < l.H; i++ {
		want := 0
		if active[i] {
			want = 1
		}
		if listed[i] != want {
			errs = append(errs, fmt.Errorf("%s listed %d times, active %t", z.Node(i), listed[i], active[i]))
		}
	}
	return errs
}
