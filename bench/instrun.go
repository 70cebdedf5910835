// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-air/d3x"
	"github.com/go-air/d3x/inter"
)

// Status is the outcome of the search of one file.
type Status int

const (
	Success Status = iota
	Timeout
	Failed
)

func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Timeout:
		return "TIMEOUT"
	case Failed:
		return "FAILED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Opener prepares the searcher of a diagram file and returns the number
// of variables of the diagram.
type Opener func(path string, opts d3x.Options) (s inter.Searcher, vars int, err error)

// LoadSearcher is the default Opener: it loads and validates the diagram
// at path.
func LoadSearcher(path string, opts d3x.Options) (inter.Searcher, int, error) {
	d, e := d3x.Load(path)
	if e != nil {
		return nil, 0, e
	}
	s, e := d.Searcher(opts)
	if e != nil {
		return nil, d.NumVars(), e
	}
	return s, d.NumVars(), nil
}

// InstRun is the outcome of the search of one file of a batch.
type InstRun struct {
	Index  int
	Path   string
	// Vars is the number of variables of the diagram, 0 if it was not
	// loaded.
	Vars   int
	Result d3x.Result
	// Dur is the search time; loading and validation are not included.
	Dur    time.Duration
	Status Status
	Err    error
}

// Name returns the file name of ir, without directory.
func (ir *InstRun) Name() string {
	return filepath.Base(ir.Path)
}

// Row returns the CSV record of ir.
func (ir *InstRun) Row() []string {
	if ir.Status == Failed {
		return []string{ir.Name(), "-", "-", "-", "-", ir.Status.String()}
	}
	return []string{
		ir.Name(),
		strconv.FormatInt(ir.Result.Nodes, 10),
		strconv.FormatInt(ir.Result.Solutions, 10),
		strconv.FormatInt(ir.Result.Updates, 10),
		fmt.Sprintf("%.3f", ir.Dur.Seconds()),
		ir.Status.String()}
}

func (ir *InstRun) String() string {
	if ir.Err != nil {
		return fmt.Sprintf("%s: %s: %s", ir.Name(), ir.Status, ir.Err)
	}
	return fmt.Sprintf("%s: %s: %d solutions", ir.Name(), ir.Status, ir.Result.Solutions)
}

// NewInstRun opens and searches the file at path, bounding the search by
// timeout and ctx.  The returned error is non-nil only for a fatal
// search error; any other problem is recorded in the InstRun as Failed.
func NewInstRun(ctx context.Context, i int, path string, open Opener, opts d3x.Options, timeout time.Duration) (*InstRun, error) {
	ir := &InstRun{Index: i, Path: path}
	if open == nil {
		open = LoadSearcher
	}
	s, vars, e := open(path, opts)
	ir.Vars = vars
	if e != nil {
		ir.fail(e)
		return ir, nil
	}
	sw := NewStopwatch(timeout)
	sw.Start()
	res, e := s.Search(&ctxDeadline{ctx: ctx, d: sw})
	sw.Stop()
	ir.Dur = sw.Elapsed()
	if e != nil {
		ir.fail(e)
		if d3x.IsFatal(e) {
			return ir, e
		}
		return ir, nil
	}
	ir.Result = res
	if res.TimedOut {
		ir.Status = Timeout
	} else {
		ir.Status = Success
	}
	return ir, nil
}

func (ir *InstRun) fail(e error) {
	ir.Status = Failed
	ir.Err = e
}

type ctxDeadline struct {
	ctx context.Context
	d   inter.Deadline
}

func (c *ctxDeadline) Expired() bool {
	return c.ctx.Err() != nil || c.d.Expired()
}
