// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/d3x/z"
)

// RandSetter draws random sets of variables.  The size of each set is
// uniform in [min..max], set with SetMinSize and SetMaxSize.
type RandSetter interface {
	SetMinSize(s int)
	SetMaxSize(s int)
	RandSet(dst []z.Var) []z.Var
}

// NewRandSetter creates a RandSetter producing sets of at most maxSize
// variables from [1..maxVar].
func NewRandSetter(maxSize int, maxVar z.Var) RandSetter {
	return &sets{
		minSize: 0,
		maxSize: maxSize,
		maxVar:  maxVar}
}

type sets struct {
	minSize int
	maxSize int
	maxVar  z.Var
}

func (c *sets) SetMinSize(s int) {
	c.minSize = s
}

func (c *sets) SetMaxSize(s int) {
	c.maxSize = s
}

// RandSet returns a random set of variables in dst, possibly with
// repetitions.  It uses the package rng.
func (c *sets) RandSet(dst []z.Var) []z.Var {
	mu.Lock()
	defer mu.Unlock()
	dst = dst[:0]
	sz := c.minSize + rng.Intn(c.maxSize-c.minSize+1)
	for i := 0; i < sz; i++ {
		dst = append(dst, z.Var(rng.Intn(int(c.maxVar))+1))
	}
	return dst
}
