// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"bytes"
	"fmt"
	"time"
)

// Stats holds the counters of one search.
type Stats struct {
	Nodes       int64
	Solutions   int64
	Updates     int64
	Pruned      int64
	MemoHits    int64
	MemoMisses  int64
	MemoEntries int
	MaxDepth    int
	MaxTrail    int
	Polls       int64
	Dur         time.Duration
}

// NewStats creates a zeroed Stats.
func NewStats() *Stats {
	return &Stats{}
}

// Reset zeroes st.
func (st *Stats) Reset() {
	*st = Stats{}
}

func (st *Stats) String() string {
	buf := bytes.NewBuffer(nil)
	row := func(name string, v interface{}) {
		fmt.Fprintf(buf, "c %-16s %v\n", name, v)
	}
	row("nodes", st.Nodes)
	row("solutions", st.Solutions)
	row("updates", st.Updates)
	row("pruned", st.Pruned)
	if st.MemoHits+st.MemoMisses > 0 {
		row("memo hits", st.MemoHits)
		row("memo misses", st.MemoMisses)
		row("memo entries", st.MemoEntries)
	}
	row("max depth", st.MaxDepth)
	row("max trail", st.MaxTrail)
	row("polls", st.Polls)
	row("duration", st.Dur)
	return buf.String()
}
