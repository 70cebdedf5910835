// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package zdd

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/d3x/z"
)

// Vis is a visitor of the contents of a diagram file.
//
// Node is called once per node line in file order, Root once per .root
// pragma and Eof once after the last line was read without error.
type Vis interface {
	Node(rec *Record)
	Root(ref Ref, line int)
	Eof()
}

const maxLine = 1 << 20

// Read reads a diagram from r, calling back vis.
//
// Read returns a *FormatError if a line does not parse and a wrapped
// error from r if reading fails.
func Read(r io.Reader, vis Vis) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	rec := &Record{}
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text[0] == '.' {
			if e := readPragma(text, line, vis); e != nil {
				return e
			}
			continue
		}
		if e := parseRecord(text, line, rec); e != nil {
			return e
		}
		vis.Node(rec)
	}
	if e := scanner.Err(); e != nil {
		return errors.Wrapf(e, "reading line %d", line+1)
	}
	vis.Eof()
	return nil
}

func readPragma(text string, line int, vis Vis) error {
	fields := strings.Fields(text)
	if fields[0] != ".root" {
		return nil
	}
	if len(fields) != 3 {
		return &FormatError{Line: line, Text: text, Msg: ".root takes a label and a target"}
	}
	ref, msg := parseRef(fields[1], fields[2])
	if msg != "" {
		return &FormatError{Line: line, Text: text, Msg: msg}
	}
	vis.Root(ref, line)
	return nil
}

func parseRecord(text string, line int, rec *Record) error {
	fields := strings.Fields(text)
	if len(fields) != 6 {
		return &FormatError{Line: line, Text: text, Msg: "expected 6 fields"}
	}
	id, e := strconv.ParseInt(fields[0], 10, 64)
	if e != nil || id < 0 {
		return &FormatError{Line: line, Text: text, Msg: "bad node id"}
	}
	v, e := strconv.ParseInt(fields[1], 10, 32)
	if e != nil || v < 0 || v == math.MaxInt32 {
		return &FormatError{Line: line, Text: text, Msg: "bad variable"}
	}
	lo, msg := parseRef(fields[2], fields[3])
	if msg != "" {
		return &FormatError{Line: line, Text: text, Msg: "lo: " + msg}
	}
	hi, msg := parseRef(fields[4], fields[5])
	if msg != "" {
		return &FormatError{Line: line, Text: text, Msg: "hi: " + msg}
	}
	rec.ID = id
	rec.Var = z.Var(v)
	rec.Lo = lo
	rec.Hi = hi
	rec.Line = line
	return nil
}

func parseRef(label, target string) (Ref, string) {
	n, e := strconv.ParseInt(target, 10, 64)
	if e != nil || n < 0 {
		return Ref{}, "bad target"
	}
	switch label {
	case "T", "t":
		if n > 1 {
			return Ref{}, "terminal target must be 0 or 1"
		}
		return Ref{Terminal: true, ID: n}, ""
	case "N", "n":
		return NodeRef(n), ""
	default:
		return Ref{}, "bad label"
	}
}
