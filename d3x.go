// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package d3x

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/internal/xo"
	"github.com/go-air/d3x/z"
	"github.com/go-air/d3x/zdd"
)

type (
	// Result is the outcome of a search.
	Result = inter.Result
	// Stats holds the detailed counters of a search.
	Stats = xo.Stats
	// FormatError reports a line which does not parse.
	FormatError = zdd.FormatError
	// ValidationError reports the structural violations of a diagram.
	ValidationError = xo.ValidationError
	// Violation identifies a node breaking a structural rule.
	Violation = xo.Violation
	// InvariantError reports an internal defect found during search.
	InvariantError = xo.InvariantError
)

// IOError reports a diagram source which could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "io error on " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Options configure a search.
type Options struct {
	// Memoize reuses the outcome below diagram nodes seen before.
	Memoize bool
	// Collect keeps every solution in Result.Models.
	Collect bool
	// PollEvery is the number of search tree nodes between deadline polls.
	PollEvery int
	// Paranoid checks the node store around every branch.  Slow.
	Paranoid bool
	// Monitor, if non-nil, is called with running stats at most once per
	// MonitorEvery.
	Monitor      func(*Stats)
	MonitorEvery time.Duration
}

// DefaultOptions returns the options used by the command line.
func DefaultOptions() Options {
	return Options{
		Memoize:      true,
		PollEvery:    xo.PollEvery,
		MonitorEvery: time.Second}
}

func (o Options) xo() xo.Options {
	return xo.Options{
		Memoize:      o.Memoize,
		Collect:      o.Collect,
		PollEvery:    o.PollEvery,
		Paranoid:     o.Paranoid,
		Monitor:      o.Monitor,
		MonitorEvery: o.MonitorEvery}
}

// Diagram is a loaded decision diagram.
//
// A Diagram may be searched repeatedly but not concurrently.
type Diagram struct {
	t     *xo.Table
	st    *xo.Store
	valid error
	check bool
	stats Stats
}

// Parse reads a diagram from r.  Parse returns a *FormatError for a
// malformed line.
func Parse(r io.Reader) (*Diagram, error) {
	t := xo.NewTable()
	if e := zdd.Read(r, t); e != nil {
		return nil, e
	}
	return &Diagram{t: t}, nil
}

// Load reads the diagram in the file at path.  Load returns an *IOError
// if the file cannot be opened or read and a *FormatError for a malformed
// line.
func Load(path string) (*Diagram, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, &IOError{Path: path, Err: e}
	}
	defer f.Close()
	d, e := Parse(f)
	if e != nil {
		var fe *FormatError
		if errors.As(e, &fe) {
			return nil, errors.Wrap(e, path)
		}
		return nil, &IOError{Path: path, Err: e}
	}
	return d, nil
}

// NumVars returns the number of distinct variables of d.
func (d *Diagram) NumVars() int {
	return d.t.NumVars()
}

// NumNodes returns the number of non-terminal nodes of d.
func (d *Diagram) NumNodes() int {
	return len(d.t.Recs)
}

// Validate checks the structure of d.  Validate returns nil or a
// *ValidationError.
func (d *Diagram) Validate() error {
	if !d.check {
		d.valid = d.t.Validate()
		d.check = true
	}
	return d.valid
}

// Searcher returns a searcher over d.
func (d *Diagram) Searcher(opts Options) (inter.Searcher, error) {
	s, e := d.s(opts)
	if e != nil {
		return nil, e
	}
	return s, nil
}

func (d *Diagram) s(opts Options) (*xo.S, error) {
	if e := d.Validate(); e != nil {
		return nil, e
	}
	if d.st == nil {
		st, e := xo.NewStore(d.t)
		if e != nil {
			return nil, e
		}
		d.st = st
	}
	return xo.NewS(d.st, opts.xo()), nil
}

// Search enumerates the solutions of d.  The deadline dl may be nil.
//
// Search returns a *ValidationError if d is not valid and an
// *InvariantError if the search state was found inconsistent.  When dl
// expires, Search returns the partial counts with TimedOut set and a nil
// error.
func (d *Diagram) Search(dl inter.Deadline, opts Options) (Result, error) {
	s, e := d.s(opts)
	if e != nil {
		return Result{}, e
	}
	res, e := s.Search(dl)
	d.stats = s.Stats()
	return res, e
}

// Stats returns the detailed counters of the last search of d.
func (d *Diagram) Stats() Stats {
	return d.stats
}

// Write writes d in the format read by Parse.
func (d *Diagram) Write(w io.Writer) error {
	root, ok := d.t.RootRef()
	if !ok {
		return errors.New("diagram has no root")
	}
	return zdd.Write(w, d.t.Recs, root)
}

// Builder builds diagrams node by node.  Builder implements
// inter.Builder.
type Builder struct {
	b *xo.Builder
}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{b: xo.NewBuilder()}
}

// Node implements inter.Builder.
func (b *Builder) Node(v z.Var, lo, hi z.Node) z.Node {
	return b.b.Node(v, lo, hi)
}

// Root implements inter.Builder.
func (b *Builder) Root(n z.Node) {
	b.b.Root(n)
}

// Diagram returns the diagram built so far.  b must not be used
// afterwards.
func (b *Builder) Diagram() *Diagram {
	return &Diagram{t: b.b.T}
}

// IsFatal returns whether e should stop a batch: an internal defect
// rather than a problem with one input.
func IsFatal(e error) bool {
	var ie *InvariantError
	return errors.As(e, &ie)
}
