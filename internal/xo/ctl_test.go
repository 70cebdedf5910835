// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"testing"
	"time"
)

func TestCtlPoll(t *testing.T) {
	d := &countdown{n: 3}
	c := NewCtl(d, 10)
	ticks := 0
	for c.Tick() {
		ticks++
		if ticks > 1000 {
			t.Fatal("deadline never expired")
		}
	}
	// polls at ticks 1, 10 and 20; the third expires and returns false
	if ticks != 19 {
		t.Errorf("ticks %d != 19", ticks)
	}
	if !c.Expired() || c.Tick() {
		t.Errorf("expired ctl ticked")
	}
	st := NewStats()
	c.readStats(st)
	if st.Polls != 3 {
		t.Errorf("polls %d", st.Polls)
	}
}

func TestCtlNoDeadline(t *testing.T) {
	c := NewCtl(nil, 0)
	for i := 0; i < 10*PollEvery; i++ {
		if !c.Tick() {
			t.Fatalf("stopped without deadline")
		}
	}
	st := NewStats()
	c.readStats(st)
	if st.Polls != 11 {
		t.Errorf("polls %d != 11", st.Polls)
	}
}

func TestCtlFirstTickPolls(t *testing.T) {
	c := NewCtl(&countdown{n: 1}, PollEvery)
	if c.Tick() {
		t.Errorf("expired deadline not seen on first tick")
	}
	st := NewStats()
	c.readStats(st)
	if st.Polls != 1 {
		t.Errorf("polls %d != 1", st.Polls)
	}
}

func TestCtlMonitorRate(t *testing.T) {
	c := NewCtl(nil, 1)
	c.stFunc = func(st *Stats) { st.Nodes = 7 }
	calls := 0
	c.Monitor(func(st *Stats) {
		calls++
		if st.Nodes != 7 {
			t.Errorf("monitor got %d nodes", st.Nodes)
		}
	}, time.Hour)
	for i := 0; i < 1000; i++ {
		c.Tick()
	}
	if calls != 1 {
		t.Errorf("monitor called %d times in an hour", calls)
	}
}
