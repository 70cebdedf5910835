// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/go-air/d3x/inter"
)

// PollEvery is the default number of search calls between two polls of
// the deadline.
const PollEvery = 1024

// Ctl connects a search to its deadline and monitor.
//
// The search calls Tick once per search tree node; on the first tick and
// every `every` ticks Ctl polls the deadline and, at most at the monitor rate, hands a Stats copy
// to the monitor.
type Ctl struct {
	deadline inter.Deadline
	every    int64
	ticks    int64
	expired  bool

	monitor func(*Stats)
	limiter *rate.Limiter
	stFunc  func(*Stats)

	stPolls int64
}

// NewCtl creates a Ctl polling d every `every` ticks.  d may be nil.
func NewCtl(d inter.Deadline, every int) *Ctl {
	if every <= 0 {
		every = PollEvery
	}
	return &Ctl{
		deadline: d,
		every:    int64(every)}
}

// Monitor arranges for f to be called with the current stats at most once
// per interval, at poll time.
func (c *Ctl) Monitor(f func(*Stats), interval time.Duration) {
	c.monitor = f
	if interval <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	c.limiter = rate.NewLimiter(rate.Every(interval), 1)
}

// Tick counts one search call and returns false once the deadline has
// expired.
func (c *Ctl) Tick() bool {
	if c.expired {
		return false
	}
	c.ticks++
	if c.ticks != 1 && c.ticks%c.every != 0 {
		return true
	}
	c.stPolls++
	if c.deadline != nil && c.deadline.Expired() {
		c.expired = true
	}
	if c.monitor != nil && c.stFunc != nil && c.limiter.Allow() {
		st := NewStats()
		c.stFunc(st)
		c.monitor(st)
	}
	return !c.expired
}

// Expired returns whether a poll found the deadline expired.
func (c *Ctl) Expired() bool {
	return c.expired
}

func (c *Ctl) readStats(st *Stats) {
	st.Polls += c.stPolls
	c.stPolls = 0
}
