// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

const StatusLabel = "status"

// Metrics counts the outcomes of a batch.
type Metrics struct {
	Files     *prometheus.CounterVec
	Nodes     prometheus.Counter
	Solutions prometheus.Counter
	Updates   prometheus.Counter
	Seconds   prometheus.Histogram
}

// NewMetrics creates batch metrics registered with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "d3x_files_total",
				Help: "Number of diagram files processed, by status",
			},
			[]string{StatusLabel},
		),
		Nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "d3x_search_nodes_total",
			Help: "Number of search tree nodes visited",
		}),
		Solutions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "d3x_solutions_total",
			Help: "Number of solutions found",
		}),
		Updates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "d3x_updates_total",
			Help: "Number of node detach operations",
		}),
		Seconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "d3x_search_seconds",
			Help:    "Search time per diagram file",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.Files, m.Nodes, m.Solutions, m.Updates, m.Seconds} {
		if e := reg.Register(c); e != nil {
			return nil, e
		}
	}
	for _, s := range []Status{Success, Timeout, Failed} {
		m.Files.WithLabelValues(s.String())
	}
	return m, nil
}

func (m *Metrics) observe(ir *InstRun) {
	if m == nil {
		return
	}
	m.Files.WithLabelValues(ir.Status.String()).Inc()
	if ir.Status == Failed {
		return
	}
	m.Nodes.Add(float64(ir.Result.Nodes))
	m.Solutions.Add(float64(ir.Result.Solutions))
	m.Updates.Add(float64(ir.Result.Updates))
	m.Seconds.Observe(ir.Dur.Seconds())
}
