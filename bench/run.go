// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/go-air/d3x"
)

// Batch describes the search of a list of diagram files.
type Batch struct {
	Paths   []string
	Options d3x.Options
	// Timeout bounds the search of each file; zero means none.
	Timeout time.Duration
	// Jobs is the number of files searched at once.
	Jobs int
	// Open prepares each file; nil means LoadSearcher.
	Open    Opener
	Log     logrus.FieldLogger
	Metrics *Metrics
	Console *Console

	// InstRuns holds the outcomes, indexed as Paths, after Run.
	InstRuns []*InstRun
}

// NewBatch creates a batch over paths with the settings of c.
func NewBatch(paths []string, c *Config) *Batch {
	return &Batch{
		Paths:   paths,
		Options: c.Options(),
		Timeout: c.Timeout.Duration,
		Jobs:    c.Jobs}
}

func (b *Batch) Len() int {
	return len(b.Paths)
}

// Run searches every file of b and writes one row per file to out, in
// the order of b.Paths.  Files which fail are reported as such and do not
// stop the batch.  Run returns an error if out cannot be written or if a
// search found an internal defect, in which case files not yet started
// are skipped.
func (b *Batch) Run(ctx context.Context, out *CSVWriter) error {
	if e := out.WriteHeader(); e != nil {
		return errors.Wrap(e, "write header")
	}
	n := len(b.Paths)
	b.InstRuns = make([]*InstRun, n)
	if n == 0 {
		return nil
	}
	if b.Console != nil {
		b.Console.Start()
	}
	jobs := b.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	var mu sync.Mutex
	next := 0
	emit := func(ir *InstRun) error {
		mu.Lock()
		defer mu.Unlock()
		b.InstRuns[ir.Index] = ir
		for next < n && b.InstRuns[next] != nil {
			r := b.InstRuns[next]
			next++
			b.report(r)
			if e := out.Write(r); e != nil {
				return errors.Wrap(e, "write row")
			}
		}
		return nil
	}
	for i, p := range b.Paths {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			ir, fatal := NewInstRun(gctx, i, p, b.Open, b.Options, b.Timeout)
			if e := emit(ir); e != nil {
				return e
			}
			if fatal != nil {
				return errors.Wrapf(fatal, "%s", p)
			}
			return nil
		})
	}
	return g.Wait()
}

func (b *Batch) report(ir *InstRun) {
	if b.Console != nil {
		b.Console.Report(ir)
	}
	b.Metrics.observe(ir)
	if b.Log == nil {
		return
	}
	l := b.Log.WithFields(logrus.Fields{
		"file":   ir.Name(),
		"index":  ir.Index,
		"status": ir.Status.String(),
		"vars":   ir.Vars,
	})
	if ir.Status == Failed {
		l.WithError(ir.Err).Warn("diagram failed")
		return
	}
	l.WithFields(logrus.Fields{
		"nodes":     ir.Result.Nodes,
		"solutions": ir.Result.Solutions,
		"updates":   ir.Result.Updates,
		"duration":  ir.Dur,
	}).Debug("diagram searched")
}
