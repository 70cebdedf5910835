// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"sort"

	"github.com/go-air/d3x/inter"
	"github.com/go-air/d3x/z"
)

// Generator generates a family with size parameters n and k into dst and
// returns its root.  Generators ignore k when they take one parameter.
type Generator func(dst inter.Builder, n, k int) z.Node

var generators = map[string]Generator{
	"singletons": func(dst inter.Builder, n, _ int) z.Node {
		return Singletons(dst, n)
	},
	"powerset": func(dst inter.Builder, n, _ int) z.Node {
		return PowerSet(dst, n)
	},
	"ksubsets": KSubsets,
	"path": func(dst inter.Builder, n, _ int) z.Node {
		return Path(dst, n)
	},
	"partition":   Partition,
	"random":      RandFamily,
	"independent": RandIndependent}

// Lookup returns the generator called name.
func Lookup(name string) (Generator, bool) {
	g, ok := generators[name]
	return g, ok
}

// Names returns the generator names in order.
func Names() []string {
	res := make([]string, 0, len(generators))
	for k := range generators {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
