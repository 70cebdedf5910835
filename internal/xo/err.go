// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"fmt"
	"strings"
)

// Rule names a structural rule of diagrams.
type Rule string

const (
	RuleDuplicate Rule = "duplicate id"
	RuleDangling  Rule = "dangling reference"
	RuleOrder     Rule = "ordering"
	RuleCycle     Rule = "cycle"
	RuleRoot      Rule = "root"
)

// Violation identifies a node breaking a rule.
type Violation struct {
	Node   int64
	Line   int
	Rule   Rule
	Detail string
}

func (v *Violation) Error() string {
	if v.Line == 0 {
		return fmt.Sprintf("node %d: %s: %s", v.Node, v.Rule, v.Detail)
	}
	return fmt.Sprintf("line %d: node %d: %s: %s", v.Line, v.Node, v.Rule, v.Detail)
}

// ValidationError collects the violations found in a diagram.
type ValidationError struct {
	Violations []*Violation
}

func (e *ValidationError) Error() string {
	switch len(e.Violations) {
	case 0:
		return "invalid diagram"
	case 1:
		return "invalid diagram: " + e.Violations[0].Error()
	}
	parts := make([]string, 0, 3)
	for i, v := range e.Violations {
		if i == 2 {
			parts = append(parts, fmt.Sprintf("and %d more", len(e.Violations)-2))
			break
		}
		parts = append(parts, v.Error())
	}
	return "invalid diagram: " + strings.Join(parts, "; ")
}

// Has returns whether some violation breaks rule r.
func (e *ValidationError) Has(r Rule) bool {
	for _, v := range e.Violations {
		if v.Rule == r {
			return true
		}
	}
	return false
}

// InvariantError reports an inconsistency of the search state.  It
// indicates a defect, never bad input.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "internal invariant violated: " + e.Msg
}

func invariantf(format string, args ...interface{}) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}
