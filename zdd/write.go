// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package zdd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Writer writes diagrams in the format read by Read.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Comment writes a comment line.
func (w *Writer) Comment(format string, args ...interface{}) {
	w.printf(". "+format+"\n", args...)
}

// Node writes one node line.  Nodes should be written children first.
func (w *Writer) Node(rec *Record) {
	w.printf("%d %d %s %s\n", rec.ID, int32(rec.Var), rec.Lo, rec.Hi)
}

// Root writes the root pragma.
func (w *Writer) Root(ref Ref) {
	w.printf(".root %s\n", ref)
}

// Flush flushes buffered output and returns the first error encountered
// since w was created.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if e := w.w.Flush(); e != nil {
		w.err = errors.Wrap(e, "flush")
	}
	return w.err
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	if _, e := fmt.Fprintf(w.w, format, args...); e != nil {
		w.err = errors.Wrap(e, "write")
	}
}

// Write writes recs followed by the root pragma for root.
func Write(dst io.Writer, recs []Record, root Ref) error {
	w := NewWriter(dst)
	for i := range recs {
		w.Node(&recs[i])
	}
	w.Root(root)
	return w.Flush()
}
