// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"encoding/csv"
	"io"
)

// Header is the first CSV record of a batch.
var Header = []string{"Filename", "Nodes", "sols", "Updates", "Time(s)", "Status"}

// CSVWriter writes InstRuns as CSV records.  Each record is flushed as
// it is written.
type CSVWriter struct {
	w *csv.Writer
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (c *CSVWriter) WriteHeader() error {
	return c.write(Header)
}

func (c *CSVWriter) Write(ir *InstRun) error {
	return c.write(ir.Row())
}

func (c *CSVWriter) write(rec []string) error {
	if e := c.w.Write(rec); e != nil {
		return e
	}
	c.w.Flush()
	return c.w.Error()
}
