// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/z"
)

// RandFamily generates a family of m random subsets of {1..n}, each with
// at most n elements.  Repeated sets are kept once.
func RandFamily(dst inter.Builder, n, m int) z.Node {
	rs := NewRandSetter(n, z.Var(n))
	sets := make([][]z.Var, m)
	for i := range sets {
		sets[i] = rs.RandSet(nil)
	}
	return Family(dst, sets)
}

// RandSearcher creates an inter.Searcher which just returns a result from
// Search within a random period of time chosen from [0..d).  The result
// has a random number of solutions.  If the deadline passed to Search
// expires first, the result is timed out.
//
// This is useful for testing applications using inter.Searcher.
func RandSearcher(d time.Duration) inter.Searcher {
	return RandSearcherr(d, rand.NewSource(33))
}

func RandSearcherr(d time.Duration, src rand.Source) inter.Searcher {
	return &randSearcher{
		dur:  d,
		rand: rand.New(src)}
}

type randSearcher struct {
	mu   sync.Mutex
	dur  time.Duration
	rand *rand.Rand
}

func (r *randSearcher) Search(d inter.Deadline) (inter.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := inter.Result{}
	ns := r.dur.Nanoseconds()
	if ns <= 0 {
		ns = 1
	}
	w := time.Duration(r.rand.Int63n(ns))
	alarm := time.After(w * time.Nanosecond)
	poll := time.NewTicker(100 * time.Microsecond)
	defer poll.Stop()
	for {
		res.Nodes++
		select {
		case <-alarm:
			res.Solutions = r.rand.Int63n(res.Nodes + 1)
			res.Updates = 2 * res.Nodes
			return res, nil
		case <-poll.C:
			if d != nil && d.Expired() {
				res.TimedOut = true
				return res, nil
			}
		}
	}
}

func (r *randSearcher) String() string {
	return fmt.Sprintf("*randSearcher[%s]", r.dur)
}
