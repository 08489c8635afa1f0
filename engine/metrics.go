package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathsearch/search"
)

// Outcome label values.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Metrics are the Prometheus collectors updated by an Engine.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cost     *prometheus.HistogramVec
}

// NewMetrics registers the engine collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathsearch",
			Subsystem: "engine",
			Name:      "searches_total",
			Help:      "Total number of searches, per algorithm and outcome (found/not_found/error)",
		}, []string{"algorithm", "outcome"}),
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathsearch",
			Subsystem: "engine",
			Name:      "expanded_nodes_total",
			Help:      "Total number of nodes expanded, per algorithm",
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathsearch",
			Subsystem: "engine",
			Name:      "search_duration_seconds",
			Help:      "Wall time per search, per algorithm",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		cost: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathsearch",
			Subsystem: "engine",
			Name:      "path_cost",
			Help:      "Cost of found paths, per algorithm",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(alg Algorithm, res search.Result, err error, seconds float64) {
	if m == nil {
		return
	}
	label := alg.String()
	m.duration.WithLabelValues(label).Observe(seconds)
	switch {
	case err != nil:
		m.searches.WithLabelValues(label, outcomeError).Inc()
		return
	case res.Found:
		m.searches.WithLabelValues(label, outcomeFound).Inc()
		m.cost.WithLabelValues(label).Observe(float64(res.Cost))
	default:
		m.searches.WithLabelValues(label, outcomeNotFound).Inc()
	}
	m.expanded.WithLabelValues(label).Add(float64(res.Expanded))
}
