// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"sync"
	"time"
)

// Stopwatch accumulates elapsed time over start/stop spans and checks it
// against an optional time bound.
//
// Stopwatch implements inter.Deadline and is safe for concurrent use.
type Stopwatch struct {
	mu      sync.Mutex
	start   time.Time
	running bool
	acc     time.Duration
	bound   time.Duration
}

// NewStopwatch creates a stopped Stopwatch with time bound d.  A
// non-positive d means no bound.
func NewStopwatch(d time.Duration) *Stopwatch {
	return &Stopwatch{bound: d}
}

// Start starts a span.  Starting a running stopwatch has no effect.
func (w *Stopwatch) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.start = time.Now()
	w.running = true
}

// Stop ends the running span and adds it to the accumulated time.
func (w *Stopwatch) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.acc += time.Since(w.start)
	w.running = false
}

// Reset stops w and clears the accumulated time.  The bound is kept.
func (w *Stopwatch) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.acc = 0
	w.running = false
}

// Elapsed returns the accumulated time, including the running span if
// any.
func (w *Stopwatch) Elapsed() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.elapsed()
}

func (w *Stopwatch) elapsed() time.Duration {
	d := w.acc
	if w.running {
		d += time.Since(w.start)
	}
	return d
}

func (w *Stopwatch) SetTimeBound(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bound = d
}

func (w *Stopwatch) TimeBound() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bound
}

// TimeBoundBroken returns whether w has a bound and the elapsed time
// exceeds it.
func (w *Stopwatch) TimeBoundBroken() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bound > 0 && w.elapsed() > w.bound
}

// Expired implements inter.Deadline.
func (w *Stopwatch) Expired() bool {
	return w.TimeBoundBroken()
}

func (w *Stopwatch) String() string {
	return fmt.Sprintf("stopwatch[%s/%s]", w.Elapsed(), w.TimeBound())
}
