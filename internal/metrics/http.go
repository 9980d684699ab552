package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ff_ledger",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Total number of API requests.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ff_ledger",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "API request duration in seconds.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"method", "route"})
)

// ObserveHTTPRequest records one served API request.
// route is the matched route template, so path parameters do not explode label cardinality.
func ObserveHTTPRequest(method, route string, status int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}
