// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"time"
)

// Total returns the number of runs for which filt holds.  nil entries,
// for files never started, are not counted.
func Total(runs []*InstRun, filt func(ir *InstRun) bool) int {
	ttl := 0
	for _, ir := range runs {
		if ir != nil && filt(ir) {
			ttl++
		}
	}
	return ttl
}

func StatusTotal(runs []*InstRun, s Status) int {
	return Total(runs, func(ir *InstRun) bool { return ir.Status == s })
}

// SolveRate gives the number of completed searches per unit of search
// time.  Timed out searches count their time but not as completed.
func SolveRate(runs []*InstRun, unit time.Duration) float64 {
	dur := SearchTime(runs)
	if dur == 0 {
		return 0
	}
	return float64(StatusTotal(runs, Success)) / (float64(dur) / float64(unit))
}

// SearchTime returns the total search time of runs.
func SearchTime(runs []*InstRun) time.Duration {
	var d time.Duration
	for _, ir := range runs {
		if ir != nil {
			d += ir.Dur
		}
	}
	return d
}

// Summary aggregates the runs of a batch.
type Summary struct {
	Files     int
	Success   int
	Timeout   int
	Failed    int
	// MaxVars is the largest number of variables of a loaded diagram.
	MaxVars   int
	Nodes     int64
	Solutions int64
	Updates   int64
	Dur       time.Duration
}

// Summarize aggregates runs.  Failed runs count toward Files and Failed
// only.
func Summarize(runs []*InstRun) *Summary {
	s := &Summary{
		Success: StatusTotal(runs, Success),
		Timeout: StatusTotal(runs, Timeout),
		Failed:  StatusTotal(runs, Failed),
		Dur:     SearchTime(runs)}
	for _, ir := range runs {
		if ir == nil {
			continue
		}
		s.Files++
		if ir.Vars > s.MaxVars {
			s.MaxVars = ir.Vars
		}
		if ir.Status == Failed {
			continue
		}
		s.Nodes += ir.Result.Nodes
		s.Solutions += ir.Result.Solutions
		s.Updates += ir.Result.Updates
	}
	return s
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d files: %d success, %d timeout, %d failed; up to %d vars; %d nodes, %d solutions, %d updates in %s",
		s.Files, s.Success, s.Timeout, s.Failed, s.MaxVars, s.Nodes, s.Solutions, s.Updates, s.Dur)
}
