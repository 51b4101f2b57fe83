package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResolverRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resolver_request_duration_seconds",
			Help:    "Duration of a single backend call made by the endpoint resolver",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation", "target", "outcome"},
	)

	ResolverFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_fallbacks_total",
			Help: "Total number of operations that fell back to the secondary target",
		},
		[]string{"operation"},
	)

	ResolverFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_failures_total",
			Help: "Total number of operations where both targets failed",
		},
		[]string{"operation"},
	)
)
