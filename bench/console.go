// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console prints the progress of a batch.
type Console struct {
	w       io.Writer
	n       int
	success *color.Color
	timeout *color.Color
	failed  *color.Color
}

// NewConsole creates a Console for a batch of n files writing to w.
// Statuses are coloured when w is a terminal.
func NewConsole(w io.Writer, n int) *Console {
	c := &Console{
		w:       w,
		n:       n,
		success: color.New(color.FgGreen),
		timeout: color.New(color.FgYellow),
		failed:  color.New(color.FgRed, color.Bold)}
	for _, x := range []*color.Color{c.success, c.timeout, c.failed} {
		if isTerminal(w) {
			x.EnableColor()
		} else {
			x.DisableColor()
		}
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start prints the number of files of the batch.
func (c *Console) Start() {
	fmt.Fprintf(c.w, "Processing %d files...\n", c.n)
}

// Report prints the outcome of ir.
func (c *Console) Report(ir *InstRun) {
	fmt.Fprintf(c.w, "Processing [%d/%d]: %s...\n", ir.Index+1, c.n, ir.Name())
	switch ir.Status {
	case Success:
		fmt.Fprintf(c.w, "  -> %s: %d solutions, %d ms, %d vars\n", c.success.Sprint(ir.Status),
			ir.Result.Solutions, ir.Dur.Milliseconds(), ir.Vars)
	case Timeout:
		fmt.Fprintf(c.w, "  -> %s: %d solutions so far, %d ms, %d vars\n", c.timeout.Sprint(ir.Status),
			ir.Result.Solutions, ir.Dur.Milliseconds(), ir.Vars)
	default:
		fmt.Fprintf(c.w, "  -> %s: %s\n", c.failed.Sprint(ir.Status), ir.Err)
	}
}

// Done prints the end of the batch.
func (c *Console) Done(out string) {
	fmt.Fprintf(c.w, "Batch processing completed!\n")
	if out != "" {
		fmt.Fprintf(c.w, "Results saved to: %s\n", out)
	}
}
