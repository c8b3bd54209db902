// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics exports conversion run statistics in the Prometheus text
// format. A Recorder owns a private registry so that one process can write
// a metrics file per run for the node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdiddy/you-radio/internal/convert"
)

// Recorder collects metrics for conversion runs.
type Recorder struct {
	registry *prometheus.Registry

	files           *prometheus.CounterVec
	entries         prometheus.Counter
	runs            prometheus.Counter
	lastRunTime     prometheus.Gauge
	lastRunDuration prometheus.Gauge
	lastRunSuccess  prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "you_radio_files_total",
				Help: "Total number of station documents processed",
			},
			[]string{"status"}, // "converted", "failed"
		),
		entries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "you_radio_playlist_entries_total",
				Help: "Total number of playlist entries written",
			},
		),
		runs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "you_radio_runs_total",
				Help: "Total number of conversion runs",
			},
		),
		lastRunTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "you_radio_last_run_timestamp_seconds",
				Help: "Unix timestamp of the last conversion run",
			},
		),
		lastRunDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "you_radio_last_run_duration_seconds",
				Help: "Duration of the last conversion run in seconds",
			},
		),
		lastRunSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "you_radio_last_run_success",
				Help: "Whether the last conversion run had no failed files (1 = yes, 0 = no)",
			},
		),
	}

	r.registry.MustRegister(
		r.files,
		r.entries,
		r.runs,
		r.lastRunTime,
		r.lastRunDuration,
		r.lastRunSuccess,
	)
	return r
}

// Observe records one finished run.
func (r *Recorder) Observe(result convert.BatchResult) {
	r.runs.Inc()
	r.files.WithLabelValues("converted").Add(float64(result.Converted))
	r.files.WithLabelValues("failed").Add(float64(result.Failed))
	r.entries.Add(float64(result.Entries()))
	r.lastRunTime.Set(float64(result.FinishedAt.Unix()))
	r.lastRunDuration.Set(result.Duration().Seconds())
	if result.HasFailures() {
		r.lastRunSuccess.Set(0)
	} else {
		r.lastRunSuccess.Set(1)
	}
}

// Registry returns the registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
