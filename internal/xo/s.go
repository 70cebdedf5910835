// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/z"
	"github.com/go-air/d3x/zdd"
)

// Options configure a search.
type Options struct {
	// Memoize caches the outcome below each node.
	Memoize bool
	// Collect keeps the solutions, not just their number.
	Collect bool
	// PollEvery is the number of search calls between deadline polls.
	PollEvery int
	// Paranoid checks the active structure around every branch.
	Paranoid bool
	// Monitor, if non-nil, receives stats during the search, at most once
	// per MonitorEvery.
	Monitor      func(*Stats)
	MonitorEvery time.Duration
}

// S enumerates the solutions of a diagram by destructive backtracking
// over a Store.
//
// Each search call branches on the smallest active level, which holds
// only the current root.  The exclude branch redirects the root to its lo
// child and the include branch to its hi child; the resulting detaches
// are undone before the call returns, leaving the Store as it was.
type S struct {
	St    *Store
	Trail *Trail
	Memo  *Memo

	opts     Options
	control  *Ctl
	path     []z.Var
	models   [][]z.Var
	depth    int
	timedOut bool

	stats Stats
}

// NewS creates a search engine over st.
func NewS(st *Store, opts Options) *S {
	s := &S{
		St:    st,
		Trail: NewTrail(st),
		opts:  opts,
		path:  make([]z.Var, 0, st.Vars.Len())}
	if opts.Memoize {
		s.Memo = NewMemo(st.Len())
	}
	return s
}

// NewSZdd creates a search engine from a diagram in the zdd format.
func NewSZdd(r io.Reader, opts Options) (*S, error) {
	t := NewTable()
	if e := zdd.Read(r, t); e != nil {
		return nil, errors.Wrap(e, "reading zdd")
	}
	st, e := NewStore(t)
	if e != nil {
		return nil, e
	}
	return NewS(st, opts), nil
}

func (s *S) String() string {
	return fmt.Sprintf("<xo@%d/%d>", s.depth, s.Trail.Len())
}

// Search implements inter.Searcher.
//
// Search returns an *InvariantError if the active structure is found
// inconsistent, in which case the Store is reset.
func (s *S) Search(d inter.Deadline) (res inter.Result, err error) {
	start := time.Now()
	s.begin(d)
	var snap *Snapshot
	if s.opts.Paranoid {
		snap = s.St.Snapshot()
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		s.Trail.D = s.Trail.D[:0]
		s.St.Reset()
		res, err = inter.Result{}, ie
	}()
	s.search(0)
	if s.Trail.Len() != 0 {
		panic(invariantf("%d undo records left after search", s.Trail.Len()))
	}
	if snap != nil {
		if diff := snap.Diff(s.St.Snapshot()); diff != "" {
			panic(invariantf("store not restored after search:\n%s", diff))
		}
	}
	s.sync()
	s.stats.Dur = time.Since(start)
	res = inter.Result{
		Nodes:     s.stats.Nodes,
		Solutions: s.stats.Solutions,
		Updates:   s.stats.Updates,
		Models:    s.models,
		TimedOut:  s.timedOut}
	return res, nil
}

// Stats returns the counters of the last search.
func (s *S) Stats() Stats {
	s.sync()
	return s.stats
}

func (s *S) begin(d inter.Deadline) {
	if s.Trail.Len() != 0 {
		s.Trail.D = s.Trail.D[:0]
		s.St.Reset()
	}
	s.stats.Reset()
	s.St.readStats(NewStats())
	s.Trail.readStats(NewStats())
	if s.Memo != nil {
		s.Memo.Reset()
		s.Memo.readStats(NewStats())
	}
	s.path = s.path[:0]
	s.models = nil
	s.depth = 0
	s.timedOut = false
	s.control = NewCtl(d, s.opts.PollEvery)
	if s.opts.Monitor != nil {
		s.control.stFunc = func(st *Stats) {
			s.sync()
			*st = s.stats
		}
		s.control.Monitor(s.opts.Monitor, s.opts.MonitorEvery)
	}
}

// sync moves the counters kept by the parts of s into s.stats.
func (s *S) sync() {
	s.St.readStats(&s.stats)
	s.Trail.readStats(&s.stats)
	if s.Memo != nil {
		s.Memo.readStats(&s.stats)
	}
	if s.control != nil {
		s.control.readStats(&s.stats)
	}
}

func (s *S) search(from z.Level) {
	s.stats.Nodes++
	if !s.control.Tick() {
		s.timedOut = true
	}
	if s.timedOut {
		return
	}
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.stats.MaxDepth {
		s.stats.MaxDepth = s.depth
	}
	st := s.St
	root := st.Root
	if root.IsTerminal() {
		if st.nActive != 0 {
			panic(invariantf("%d active nodes under terminal root %s", st.nActive, root))
		}
		if root == z.Accept {
			s.solution()
		}
		return
	}
	lvl := st.MinLevel(from)
	if lvl != st.Level[root] {
		panic(invariantf("root %s at %s, first active level %s", root, st.Level[root], lvl))
	}
	if n := st.Single(lvl); n != root {
		panic(invariantf("level %s holds %s, not just root %s", lvl, n, root))
	}
	lo, hi := st.Lo[root], st.Hi[root]
	s.branch(lo, lvl+1)
	if s.timedOut {
		return
	}
	if hi == z.Reject {
		s.stats.Pruned++
		return
	}
	s.path = append(s.path, st.Vars.Var(lvl))
	s.branch(hi, lvl+1)
	s.path = s.path[:len(s.path)-1]
}

func (s *S) branch(to z.Node, next z.Level) {
	var snap *Snapshot
	if s.opts.Paranoid {
		snap = s.St.Snapshot()
	}
	mark := s.Trail.Mark()
	s.St.Redirect(to, s.Trail)
	if snap != nil {
		if errs := s.St.CheckActive(); len(errs) != 0 {
			panic(invariantf("after redirect to %s: %s", to, errs[0]))
		}
	}
	s.descend(to, next)
	s.Trail.Back(mark)
	if snap != nil {
		if diff := snap.Diff(s.St.Snapshot()); diff != "" {
			panic(invariantf("undo of branch to %s did not restore store:\n%s", to, diff))
		}
	}
}

func (s *S) descend(to z.Node, next z.Level) {
	if s.Memo == nil || to.IsTerminal() {
		s.search(next)
		return
	}
	if count, sufs, ok := s.Memo.Lookup(to); ok {
		s.stats.Solutions += count
		if s.opts.Collect {
			for _, suf := range sufs {
				s.models = append(s.models, s.model(suf))
			}
		}
		return
	}
	n0, m0, plen := s.stats.Solutions, len(s.models), len(s.path)
	s.search(next)
	if s.timedOut {
		return
	}
	var sufs [][]z.Var
	if s.opts.Collect {
		sufs = make([][]z.Var, len(s.models)-m0)
		for i, m := range s.models[m0:] {
			sufs[i] = m[plen:]
		}
	}
	s.Memo.Store(to, s.stats.Solutions-n0, sufs)
}

func (s *S) solution() {
	s.stats.Solutions++
	if s.opts.Collect {
		s.models = append(s.models, s.model(nil))
	}
}

func (s *S) model(suf []z.Var) []z.Var {
	res := make([]z.Var, 0, len(s.path)+len(suf))
	res = append(res, s.path...)
	return append(res, suf...)
}
