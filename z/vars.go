// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"bytes"
	"fmt"
	"sort"
)

// Vars maps the variables of a diagram to dense levels and back.
//
// Levels preserve variable order: if u < v then Level(u) < Level(v).
type Vars struct {
	toLevel map[Var]Level
	toVar   []Var
}

// NewVars creates a Vars ranking the distinct variables in vs.  vs may
// contain duplicates and need not be sorted.
func NewVars(vs []Var) *Vars {
	seen := make(map[Var]struct{}, len(vs))
	uniq := make([]Var, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	res := &Vars{
		toLevel: make(map[Var]Level, len(uniq)),
		toVar:   uniq}
	for i, v := range uniq {
		res.toLevel[v] = Level(i)
	}
	return res
}

// Len returns the number of distinct variables.
func (vs *Vars) Len() int {
	return len(vs.toVar)
}

// Level returns the level of v and whether v is known.
func (vs *Vars) Level(v Var) (Level, bool) {
	l, ok := vs.toLevel[v]
	return l, ok
}

// Var returns the variable at level l.  Var panics if l is out of range.
func (vs *Vars) Var(l Level) Var {
	return vs.toVar[l]
}

func (vs *Vars) String() string {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("[")
	for i, v := range vs.toVar {
		if i != 0 {
			buf.WriteString(" ")
		}
		fmt.Fprintf(buf, "%s:%s", v, Level(i))
	}
	buf.WriteString("]")
	return buf.String()
}
