// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Var is a variable index as written in a diagram file.
type Var int32

// VarNull is never a valid variable.
const VarNull Var = -1

func (v Var) String() string {
	return fmt.Sprintf("v%d", int32(v))
}

// Level is the rank of a variable among the variables of one diagram,
// counting from 0 for the smallest variable.
type Level int32

// LevelInf is the level of the terminals: below every variable.
const LevelInf Level = 0x7fffffff

func (l Level) String() string {
	if l == LevelInf {
		return "l∞"
	}
	return fmt.Sprintf("l%d", int32(l))
}
