package provisioning

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup results recorded by the network lookup phase.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// Metrics collects per-run counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	lookups  *prometheus.CounterVec
	created  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration prometheus.Gauge
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgprov",
			Name:      "network_lookups_total",
			Help:      "Remote network lookups by result.",
		}, []string{"result"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgprov",
			Name:      "resources_created_total",
			Help:      "Resources created, by address kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgprov",
			Name:      "resource_failures_total",
			Help:      "Resource creations that failed, by address kind.",
		}, []string{"kind"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tgprov",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last provisioning run.",
		}),
	}
	m.registry.MustRegister(m.lookups, m.created, m.failures, m.duration)
	return m
}

// Registry returns the registry holding the run metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLookup counts a lookup with the given result.
func (m *Metrics) RecordLookup(result string) {
	m.lookups.WithLabelValues(result).Inc()
}

// RecordCreated counts a created resource.
func (m *Metrics) RecordCreated(kind string) {
	m.created.WithLabelValues(kind).Inc()
}

// RecordFailure counts a failed creation.
func (m *Metrics) RecordFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

// ObserveRun records the run duration.
func (m *Metrics) ObserveRun(d time.Duration) {
	m.duration.Set(d.Seconds())
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
