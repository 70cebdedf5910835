// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench runs the search over batches of diagram files.
//
// A batch selects the diagram files of a directory, searches each one
// under a per file time bound, possibly several at once, and reports one
// InstRun per file.  InstRuns are written as CSV rows in selection order
// with the header
//
//	Filename,Nodes,sols,Updates,Time(s),Status
//
// A file which cannot be read, parsed or validated is reported FAILED and
// the batch continues.  A file whose time bound expired is reported
// TIMEOUT with the counters reached.  An internal defect found by the
// search stops the batch.
package bench
