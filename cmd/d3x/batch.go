// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-air/d3x/bench"
)

func (o *options) runBatch(ctx context.Context, cfg *bench.Config) error {
	paths, err := bench.MatchSelect(cfg.Pattern, o.dir, cfg.Exts...)
	if err != nil {
		return err
	}
	var (
		out     io.Writer = o.stdout
		outName           = "stdout"
		console io.Writer = o.stdout
	)
	if o.output == "" || o.output == "-" {
		console = o.stderr
	} else {
		f, err := os.Create(o.output)
		if err != nil {
			return errors.Wrap(err, "cannot open output")
		}
		defer f.Close()
		out = f
		outName = o.output
	}
	fmt.Fprintf(console, "=== ZDD Batch Processing ===\nInput directory: %s\nOutput file: %s\n\n", o.dir, outName)
	if len(paths) == 0 {
		o.log.WithField("dir", o.dir).Warn("No ZDD files found in directory")
	}

	b := bench.NewBatch(paths, cfg)
	b.Options = o.searchOptions(cfg)
	b.Log = o.log
	b.Console = bench.NewConsole(console, len(paths))
	if o.metrics != "" {
		stop, err := o.serveMetrics(b)
		if err != nil {
			return err
		}
		defer stop()
	}
	err = b.Run(ctx, bench.NewCSVWriter(out))
	if len(paths) != 0 {
		b.Console.Done(outName)
	}
	if o.stats {
		fmt.Fprintf(console, "%s\n", bench.Summarize(b.InstRuns))
	}
	return err
}

func (o *options) serveMetrics(b *bench.Batch) (func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m, err := bench.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	b.Metrics = m
	srv := &http.Server{
		Addr:    o.metrics,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			o.log.WithError(err).Error("metrics server")
		}
	}()
	o.log.WithField("addr", o.metrics).Info("serving metrics")
	return func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			o.log.WithError(err).Warn("metrics server shutdown")
		}
	}, nil
}
