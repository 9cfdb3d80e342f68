// Package metrics builds the console's Prometheus collectors that are
// registered through the application container.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal counts requests rejected by the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "console",
		Name:      "rate_limit_exceeded_total",
		Help:      "Total number of HTTP requests rejected by rate limiting.",
	})
}

// NewServiceFailuresTotal counts branch/yard service failures surfaced to
// the user as error flashes, labelled by entity and operation.
func NewServiceFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "console",
		Name:      "service_failures_total",
		Help:      "Total number of failed branch and yard service calls.",
	}, []string{"entity", "op"})
}
