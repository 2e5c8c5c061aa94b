// Package metric provides Prometheus metrics for the geochart model layer:
// resolve passes, index rebuilds, region lookups, and selection changes,
// labeled by component instance.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup result label values.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Metrics contains all model-level metrics (not host-specific)
type Metrics struct {
	ResolvePasses        *prometheus.CounterVec
	ResolveFailures      *prometheus.CounterVec
	ResolvedRegions      *prometheus.GaugeVec
	IndexRebuildDuration *prometheus.HistogramVec
	RegionLookups        *prometheus.CounterVec
	SelectionChanges     *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all model metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ResolvePasses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "geochart",
				Subsystem: "resolve",
				Name:      "passes_total",
				Help:      "Total number of region resolution passes",
			},
			[]string{"component", "map"},
		),

		ResolveFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "geochart",
				Subsystem: "resolve",
				Name:      "failures_total",
				Help:      "Total number of failed region resolution passes",
			},
			[]string{"component", "map"},
		),

		ResolvedRegions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "geochart",
				Subsystem: "resolve",
				Name:      "regions",
				Help:      "Number of regions in the current resolved set",
			},
			[]string{"component", "map"},
		),

		IndexRebuildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "geochart",
				Subsystem: "index",
				Name:      "rebuild_duration_seconds",
				Help:      "Region index rebuild duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"component"},
		),

		RegionLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "geochart",
				Subsystem: "index",
				Name:      "lookups_total",
				Help:      "Total number of region model lookups by result (hit or miss)",
			},
			[]string{"component", "result"},
		),

		SelectionChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "geochart",
				Subsystem: "selection",
				Name:      "changes_total",
				Help:      "Total number of selection state changes by operation",
			},
			[]string{"component", "operation"},
		),
	}
}

// RecordResolvePass increments the resolve pass counter and records the size
// of the resolved region set.
func (m *Metrics) RecordResolvePass(component, mapName string, regions int) {
	m.ResolvePasses.WithLabelValues(component, mapName).Inc()
	m.ResolvedRegions.WithLabelValues(component, mapName).Set(float64(regions))
}

// RecordResolveFailure increments the resolve failure counter
func (m *Metrics) RecordResolveFailure(component, mapName string) {
	m.ResolveFailures.WithLabelValues(component, mapName).Inc()
}

// RecordIndexRebuild records the duration of an index rebuild
func (m *Metrics) RecordIndexRebuild(component string, duration time.Duration) {
	m.IndexRebuildDuration.WithLabelValues(component).Observe(duration.Seconds())
}

// RecordRegionLookup increments the lookup counter with a hit/miss result
func (m *Metrics) RecordRegionLookup(component, result string) {
	m.RegionLookups.WithLabelValues(component, result).Inc()
}

// RecordSelectionChange increments the selection change counter
func (m *Metrics) RecordSelectionChange(component, operation string) {
	m.SelectionChanges.WithLabelValues(component, operation).Inc()
}
