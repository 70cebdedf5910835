// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-air/d3x"
	"github.com/go-air/d3x/bench"
	"github.com/go-air/d3x/z"
)

type options struct {
	zdd      string
	dir      string
	output   string
	config   string
	timeout  time.Duration
	memo     bool
	model    bool
	stats    bool
	mon      time.Duration
	paranoid bool
	poll     int
	jobs     int
	exts     []string
	pattern  string
	metrics  string
	debug    bool

	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
	helped bool
}

func newOptions(stdout, stderr io.Writer) *options {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &options{stdout: stdout, stderr: stderr, log: log}
}

func newRootCmd(o *options) *cobra.Command {
	def := bench.DefaultConfig()
	cmd := &cobra.Command{
		Use:           "d3x [-z file | -d dir [-o file]]",
		Short:         "Enumerates the solutions of zero-suppressed decision diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.debug {
				o.log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			switch {
			case o.dir != "":
				return o.runBatch(ctx, cfg)
			case o.zdd != "":
				return o.runFile(cfg)
			default:
				o.help(cmd)
				return nil
			}
		},
	}
	cmd.SetOut(o.stdout)
	cmd.SetErr(o.stderr)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		o.help(c)
	})

	f := cmd.Flags()
	f.StringVarP(&o.zdd, "zdd", "z", "", "search the diagram in `file`")
	f.StringVarP(&o.dir, "dir", "d", "", "search every diagram file in `dir`")
	f.StringVarP(&o.output, "output", "o", "", "write the batch CSV to `file` (default stdout)")
	f.StringVar(&o.config, "config", "", "read batch settings from a YAML `file`")
	f.DurationVar(&o.timeout, "timeout", def.Timeout.Duration, "search time bound per diagram, 0 for none")
	f.BoolVar(&o.memo, "memo", def.Memo, "reuse the solutions below diagram nodes seen before")
	f.BoolVar(&o.model, "model", def.Collect, "output the solutions (single file mode)")
	f.BoolVar(&o.stats, "stats", false, "print statistics after searching")
	f.DurationVar(&o.mon, "mon", 0, "if non-zero, log statistics at this interval while searching")
	f.BoolVar(&o.paranoid, "paranoid", false, "check the node store around every branch (slow)")
	f.IntVar(&o.poll, "poll", def.Poll, "search tree nodes between time bound checks")
	f.IntVarP(&o.jobs, "jobs", "j", def.Jobs, "number of diagrams searched at once")
	f.StringSliceVar(&o.exts, "ext", def.Exts, "extensions of the files selected in batch mode")
	f.StringVar(&o.pattern, "pattern", "", "select only files whose name matches this pattern")
	f.StringVar(&o.metrics, "metrics", "", "serve prometheus metrics on `addr` (eg :9090) while the batch runs")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.MarkFlagsMutuallyExclusive("zdd", "dir")

	cmd.AddCommand(newGenCmd(o))
	return cmd
}

func (o *options) help(cmd *cobra.Command) {
	o.helped = true
	fmt.Fprint(o.stderr, cmd.UsageString())
	if cmd.HasParent() {
		return
	}
	fmt.Fprint(o.stderr, usageExamples)
}

const usageExamples = `
Examples:
  d3x -z path/to/file.zdd
  d3x -d path/to/dir -o results.csv
  d3x gen ksubsets 20 5 -o k.zdd
`

// loadConfig reads the config file, if any, and applies the flags set
// explicitly over it.
func (o *options) loadConfig(fs *pflag.FlagSet) (*bench.Config, error) {
	cfg := bench.DefaultConfig()
	if o.config != "" {
		var err error
		cfg, err = bench.ReadConfig(o.config)
		if err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.Timeout.Duration = o.timeout
		case "memo":
			cfg.Memo = o.memo
		case "model":
			cfg.Collect = o.model
		case "poll":
			cfg.Poll = o.poll
		case "jobs":
			cfg.Jobs = o.jobs
		case "ext":
			cfg.Exts = o.exts
		case "pattern":
			cfg.Pattern = o.pattern
		}
	})
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	o.log.Debugf("config timeout=%s memo=%t poll=%d jobs=%d exts=%s",
		cfg.Timeout, cfg.Memo, cfg.Poll, cfg.Jobs, strings.Join(cfg.Exts, ","))
	return cfg, nil
}

func (o *options) searchOptions(cfg *bench.Config) d3x.Options {
	opts := cfg.Options()
	opts.Paranoid = o.paranoid
	if o.mon > 0 {
		opts.MonitorEvery = o.mon
		opts.Monitor = func(st *d3x.Stats) {
			o.log.WithFields(logrus.Fields{
				"nodes":     st.Nodes,
				"solutions": st.Solutions,
				"updates":   st.Updates,
				"depth":     st.MaxDepth,
			}).Info("searching")
		}
	}
	return opts
}

func (o *options) runFile(cfg *bench.Config) error {
	d, err := d3x.Load(o.zdd)
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		fmt.Fprintln(o.stderr, "initial zdd is invalid")
		var ve *d3x.ValidationError
		if errors.As(err, &ve) {
			for _, v := range ve.Violations {
				o.log.WithField("node", v.Node).WithField("line", v.Line).Error(v.Detail)
			}
		}
		return err
	}
	o.log.WithFields(logrus.Fields{
		"vars":  d.NumVars(),
		"nodes": d.NumNodes(),
	}).Debug("load files done")
	opts := o.searchOptions(cfg)
	start := time.Now()
	res, err := d.Search(d3x.Timeout(cfg.Timeout.Duration), opts)
	dur := time.Since(start)
	if err != nil {
		return err
	}
	fmt.Fprintf(o.stdout, "num nodes %d, num solutions %d, num updates %d, time: %d msecs\n",
		res.Nodes, res.Solutions, res.Updates, dur.Milliseconds())
	if res.TimedOut {
		fmt.Fprintf(o.stdout, "timed out after %s\n", cfg.Timeout)
	}
	if opts.Collect {
		for _, m := range res.Models {
			writeModel(o.stdout, m)
		}
	}
	if o.stats {
		st := d.Stats()
		fmt.Fprint(o.stdout, st.String())
	}
	return nil
}

func writeModel(w io.Writer, m []z.Var) {
	var sb strings.Builder
	sb.WriteString("v")
	for _, v := range m {
		fmt.Fprintf(&sb, " %d", v)
	}
	sb.WriteString(" 0\n")
	io.WriteString(w, sb.String())
}
