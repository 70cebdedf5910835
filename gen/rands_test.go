// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"
	"time"
)

type expired bool

func (e expired) Expired() bool { return bool(e) }

func TestRandSearcher(t *testing.T) {
	s := RandSearcher(time.Millisecond)
	for i := 0; i < 10; i++ {
		start := time.Now()
		r, e := s.Search(nil)
		if e != nil {
			t.Fatal(e)
		}
		if r.TimedOut {
			t.Errorf("timed out without deadline")
		}
		if r.Solutions > r.Nodes {
			t.Errorf("%d solutions from %d nodes", r.Solutions, r.Nodes)
		}
		d := time.Since(start)
		if d > 2*time.Millisecond {
			// the CI builders can't handle this.
			t.Logf("took too long %s\n", d)
		}
	}
	s = RandSearcher(time.Hour)
	r, _ := s.Search(expired(true))
	if !r.TimedOut {
		t.Errorf("expired deadline ignored")
	}
}
