// Package metrics exposes report estimates as Prometheus metrics on a
// private registry. The CLI has no scrape endpoint; the registry is written
// to a node-exporter textfile instead.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/matchtime/internal/estimate"
)

const namespace = "matchtime"

// Recorder implements report.Observer and records every cell.
type Recorder struct {
	registry *prometheus.Registry
	cells    prometheus.Counter
	seconds  prometheus.Histogram
	trials   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_total",
			Help:      "Number of report cells computed.",
		}),
		seconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expected_seconds",
			Help:      "Expected wall-clock seconds to find a match, per cell.",
			// 1s, 1m, 1h, 2.5d, 150d, 24y
			Buckets: prometheus.ExponentialBuckets(1, 60, 6),
		}),
		trials: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "expected_trials",
			Help:      "Expected number of trials to find a match.",
		}, []string{"length", "probability"}),
	}
	r.registry.MustRegister(r.cells, r.seconds, r.trials)
	return r
}

// ObserveCell records one computed cell.
func (r *Recorder) ObserveCell(cell estimate.Cell) {
	r.cells.Inc()
	r.seconds.Observe(cell.Seconds)
	r.trials.WithLabelValues(
		strconv.Itoa(cell.Length),
		strconv.FormatFloat(cell.Probability, 'f', -1, 64),
	).Set(cell.Trials)
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current metrics to path in the Prometheus text
// exposition format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
