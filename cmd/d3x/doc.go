// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command d3x enumerates the solutions of zero-suppressed decision
// diagrams with dancing links.
//
//	⎣ ⇨ d3x -h
//	Usage:
//	  d3x [-z file | -d dir [-o file]] [flags]
//	  d3x [command]
//
//	Available Commands:
//	  gen         Writes a generated diagram
//
//	Flags:
//	      --config file     read batch settings from a YAML file
//	      --debug           use debug log level
//	  -d, --dir dir         search every diagram file in dir
//	      --ext strings     extensions of the files selected in batch mode (default [.zdd,.txt])
//	  -j, --jobs int        number of diagrams searched at once (default 1)
//	      --memo            reuse the solutions below diagram nodes seen before (default true)
//	      --metrics addr    serve prometheus metrics on addr (eg :9090) while the batch runs
//	      --model           output the solutions (single file mode)
//	      --mon duration    if non-zero, log statistics at this interval while searching
//	  -o, --output file     write the batch CSV to file (default stdout)
//	      --paranoid        check the node store around every branch (slow)
//	      --pattern string  select only files whose name matches this pattern
//	      --poll int        search tree nodes between time bound checks (default 1024)
//	      --stats           print statistics after searching
//	      --timeout         search time bound per diagram, 0 for none
//	  -z, --zdd file        search the diagram in file
//
// With -z, d3x searches one diagram and prints
//
//	num nodes N, num solutions S, num updates U, time: T msecs
//
// exiting with status 1 if the file cannot be read or the diagram is
// invalid.
//
// With -d, d3x searches the .zdd and .txt files of a directory and
// writes one CSV row per file
//
//	Filename,Nodes,sols,Updates,Time(s),Status
//	a.zdd,5,2,5,0.000,SUCCESS
//	b.zdd,-,-,-,-,FAILED
//
// Files which fail do not change the exit status.  d3x exits with status
// 1 if the directory or the output cannot be opened, and after -h.
package main
