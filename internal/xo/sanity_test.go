// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/d3x/gen"
	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/zdd"
)

func readTable(t *testing.T, text string) *Table {
	t.Helper()
	tab := NewTable()
	require.NoError(t, zdd.Read(strings.NewReader(text), tab))
	return tab
}

func TestSanityValid(t *testing.T) {
	gens := []func(b inter.Builder){
		func(b inter.Builder) { gen.Singletons(b, 10) },
		func(b inter.Builder) { gen.PowerSet(b, 10) },
		func(b inter.Builder) { gen.KSubsets(b, 10, 4) },
		func(b inter.Builder) { gen.Path(b, 20) },
		func(b inter.Builder) { gen.Partition(b, 4, 3) },
		func(b inter.Builder) { gen.RandFamily(b, 10, 40) },
		func(b inter.Builder) { gen.RandIndependent(b, 12, 20) }}
	for i, g := range gens {
		b := NewBuilder()
		g(b)
		assert.Empty(t, b.T.CheckSanity(), "generator %d", i)
		assert.NoError(t, b.T.Validate(), "generator %d", i)
	}
	for _, text := range []string{
		"",
		".root T 1\n",
		".root T 0\n",
		"3 2 T 0 T 1\n2 1 N 3 T 1\n",
		"3 2 T 0 T 1\n2 1 N 3 T 1\n9 5 T 0 T 1\n.root N 2\n"} {
		assert.Empty(t, readTable(t, text).CheckSanity(), "%q", text)
	}
}

type violationCase struct {
	text string
	rule Rule
	node int64
}

var violationCases = []violationCase{
	{"3 2 T 0 T 1\n3 1 N 3 T 1\n", RuleDuplicate, 3},
	{"3 2 T 0 T 1\n2 1 N 4 T 1\n", RuleDangling, 2},
	{"3 1 T 0 T 1\n2 1 N 3 T 1\n", RuleOrder, 2},
	{"3 2 T 0 T 1\n2 3 N 3 T 1\n", RuleOrder, 2},
	{"2 1 N 3 T 1\n3 2 N 4 T 1\n4 3 T 0 N 3\n.root N 2\n", RuleCycle, 4},
	{"3 2 T 0 T 1\n2 1 T 0 T 1\n", RuleRoot, 2},
	{"3 2 T 0 T 1\n.root N 4\n", RuleRoot, 4},
	{"3 2 T 0 T 1\n.root N 3\n.root T 1\n", RuleRoot, 1},
	{"2 1 N 3 T 1\n3 2 N 2 T 1\n", RuleRoot, 2}}

func TestSanityViolations(t *testing.T) {
	for _, c := range violationCases {
		tab := readTable(t, c.text)
		errs := tab.CheckSanity()
		require.NotEmpty(t, errs, "%q", c.text)
		found := false
		for _, e := range errs {
			v := e.(*Violation)
			if v.Rule == c.rule && v.Node == c.node {
				found = true
			}
		}
		assert.True(t, found, "%q: no %s violation at %d in %v", c.text, c.rule, c.node, errs)

		e := tab.Validate()
		var ve *ValidationError
		require.True(t, errors.As(e, &ve), "%q", c.text)
		assert.True(t, ve.Has(c.rule))
		_, se := NewStore(tab)
		assert.Error(t, se)
	}
}

func TestSanityCycleWithoutPragma(t *testing.T) {
	// every node referenced: no root, and a cycle
	tab := readTable(t, "2 1 N 3 T 1\n3 2 N 2 T 1\n")
	e := tab.Validate()
	var ve *ValidationError
	require.True(t, errors.As(e, &ve))
	assert.True(t, ve.Has(RuleCycle))
	assert.True(t, ve.Has(RuleOrder))
	assert.True(t, ve.Has(RuleRoot))
	assert.Contains(t, e.Error(), "invalid diagram")
}

func TestNumVars(t *testing.T) {
	tab := readTable(t, "3 7 T 0 T 1\n4 7 T 1 T 1\n2 1 N 3 N 4\n")
	assert.Equal(t, 2, tab.NumVars())
	assert.Equal(t, 0, NewTable().NumVars())
}
