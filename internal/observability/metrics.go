package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AccountsCreated     = promauto.NewCounter(prometheus.CounterOpts{Namespace: "wingman", Name: "accounts_created_total", Help: "Total accounts created"})
	RideRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{Namespace: "wingman", Name: "ride_requests_created_total", Help: "Total ride requests created"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "wingman", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wingman",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
