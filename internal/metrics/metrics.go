package metrics

/*
hostfileconverter — merges hosts-style blocklists into DNS blocker configs
Copyright (C) 2025  Pepijn van der Stap <rxtls@vanderstap.info>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus metrics for one conversion run.
// The converter is a one-shot CLI, so instead of serving /metrics the
// registry is dumped to a node_exporter textfile at the end of the run.
type Metrics struct {
	registry *prometheus.Registry
	enabled  bool

	// Input metrics
	LinesRead      *prometheus.CounterVec
	RelevantLines  *prometheus.CounterVec
	DomainLines    *prometheus.CounterVec
	KeptDomains    *prometheus.CounterVec
	DeniedDomains  *prometheus.CounterVec
	SourceFiles    prometheus.Gauge
	SourceDuration *prometheus.HistogramVec

	// Output metrics
	UniqueDomains    prometheus.Gauge
	OutputBytes      prometheus.Gauge
	OutputRecords    *prometheus.GaugeVec
	RunDuration      prometheus.Gauge
	LastRunTimestamp prometheus.Gauge
	DenylistEntries  prometheus.Gauge
}

// New creates a Metrics instance backed by its own registry. When enabled is
// false every recording method is a no-op and WriteTextfile does nothing.
func New(enabled bool) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	buckets := []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

	return &Metrics{
		registry: registry,
		enabled:  enabled,

		LinesRead: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hostfileconverter_lines_read_total",
				Help: "Raw lines read per source file",
			},
			[]string{"source"},
		),
		RelevantLines: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hostfileconverter_relevant_lines_total",
				Help: "Lines that were neither blank nor comments",
			},
			[]string{"source"},
		),
		DomainLines: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hostfileconverter_domain_lines_total",
				Help: "Relevant lines a domain could be extracted from",
			},
			[]string{"source"},
		),
		KeptDomains: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hostfileconverter_kept_domains_total",
				Help: "Domains that passed the denylist, duplicates included",
			},
			[]string{"source"},
		),
		DeniedDomains: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hostfileconverter_denied_domains_total",
				Help: "Domains dropped because they are on the denylist",
			},
			[]string{"source"},
		),
		SourceFiles: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hostfileconverter_source_files",
				Help: "Number of source files merged in the last run",
			},
		),
		SourceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hostfileconverter_source_read_duration_seconds",
				Help:    "Time spent reading and parsing one source file",
				Buckets: buckets,
			},
			[]string{"source"},
		),

		UniqueDomains: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hostfileconverter_unique_domains",
				Help: "Unique domains written to the output file",
			},
		),
		OutputBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hostfileconverter_output_bytes",
				Help: "Size of the output file in bytes",
			},
		),
		OutputRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hostfileconverter_output_records",
				Help: "Records written to the output file, by format",
			},
			[]string{"format"},
		),
		RunDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hostfileconverter_run_duration_seconds",
				Help: "Wall time of the last run",
			},
		),
		LastRunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hostfileconverter_last_run_timestamp_seconds",
				Help: "Unix time the last run finished",
			},
		),
		DenylistEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hostfileconverter_denylist_entries",
				Help: "Entries on the active denylist",
			},
		),
	}
}

// IsEnabled returns whether metrics collection is enabled
func (m *Metrics) IsEnabled() bool {
	return m != nil && m.enabled
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SourceCounts is the per-file tally recorded by RecordSource.
type SourceCounts struct {
	Lines    int64
	Relevant int64
	Domains  int64
	Kept     int64
	Denied   int64
}

// RecordSource adds one source file's counters.
func (m *Metrics) RecordSource(source string, c SourceCounts, elapsed time.Duration) {
	if !m.IsEnabled() {
		return
	}

	m.LinesRead.WithLabelValues(source).Add(float64(c.Lines))
	m.RelevantLines.WithLabelValues(source).Add(float64(c.Relevant))
	m.DomainLines.WithLabelValues(source).Add(float64(c.Domains))
	m.KeptDomains.WithLabelValues(source).Add(float64(c.Kept))
	m.DeniedDomains.WithLabelValues(source).Add(float64(c.Denied))
	m.SourceDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// RecordOutput sets the gauges describing the written file.
func (m *Metrics) RecordOutput(format string, unique int, records, bytes int64) {
	if !m.IsEnabled() {
		return
	}

	m.UniqueDomains.Set(float64(unique))
	m.OutputRecords.WithLabelValues(format).Set(float64(records))
	m.OutputBytes.Set(float64(bytes))
}

// RecordRun stores run-level values once the run is over.
func (m *Metrics) RecordRun(sources, denylist int, elapsed time.Duration, finished time.Time) {
	if !m.IsEnabled() {
		return
	}

	m.SourceFiles.Set(float64(sources))
	m.DenylistEntries.Set(float64(denylist))
	m.RunDuration.Set(elapsed.Seconds())
	m.LastRunTimestamp.Set(float64(finished.Unix()))
}

// WriteTextfile writes the registry in text exposition format to path, the
// layout node_exporter's textfile collector expects. The write goes through a
// temporary file and a rename, so a scrape never sees a partial file.
func (m *Metrics) WriteTextfile(path string) error {
	if !m.IsEnabled() || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
