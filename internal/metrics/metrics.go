// Package metrics defines Prometheus metrics for amazon-catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "amazon_catalog"

// Request pipeline metrics.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of signed API requests dispatched.",
	}, []string{"operation"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API round trips in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of calls served from the memoized last exchange.",
	})
)

// Failure metrics.
var (
	TransportErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transport_errors_total",
		Help:      "Total number of requests that failed before a response arrived.",
	})

	APIErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of responses with HTTP status 400 or above.",
	})
)
