// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/d3x"
	"github.com/go-air/d3x/gen"
)

type genOptions struct {
	output string
	seed   int64
}

func newGenCmd(o *options) *cobra.Command {
	g := &genOptions{}
	cmd := &cobra.Command{
		Use:   "gen family n [k]",
		Short: "Writes a generated diagram",
		Long: "gen writes the diagram of a generated family.  Families are\n\n\t" +
			strings.Join(gen.Names(), "\n\t") + "\n\n" +
			"ksubsets and partition take k; random and independent take k as the\n" +
			"number of sets or edges.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(o, args)
		},
	}
	cmd.Flags().StringVarP(&g.output, "output", "o", "-", "write the diagram to `file`")
	cmd.Flags().Int64Var(&g.seed, "seed", 0, "random seed for the random families, 0 for the default")
	return cmd
}

func (g *genOptions) run(o *options, args []string) error {
	fam, ok := gen.Lookup(args[0])
	if !ok {
		return errors.Errorf("unknown family %q, want one of %s", args[0], strings.Join(gen.Names(), ", "))
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return errors.Errorf("invalid n %q", args[1])
	}
	k := 0
	if len(args) == 3 {
		k, err = strconv.Atoi(args[2])
		if err != nil {
			return errors.Errorf("invalid k %q", args[2])
		}
	}
	if args[0] == "independent" && n > gen.MaxGraphNodes {
		return errors.Errorf("independent takes at most %d vertices", gen.MaxGraphNodes)
	}
	if g.seed != 0 {
		gen.Seed(g.seed)
	}
	b := d3x.NewBuilder()
	fam(b, n, k)
	d := b.Diagram()

	var w io.Writer = o.stdout
	if g.output != "-" {
		f, err := os.Create(g.output)
		if err != nil {
			return errors.Wrap(err, "cannot open output")
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, ". %s %s\n", args[0], strings.Join(args[1:], " "))
	if err := d.Write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{
		"family": args[0],
		"vars":   d.NumVars(),
		"nodes":  d.NumNodes(),
	}).Debug("generated")
	return nil
}
