package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_ops",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status code.",
		},
		[]string{"method", "path", "status"},
	)

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_ops",
			Name:      "operations_total",
			Help:      "Lifecycle operations by name and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	resolverInconsistencies = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_ops",
			Name:      "resolver_double_bookings_total",
			Help:      "Rooms observed with more than one active booking.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, operations, resolverInconsistencies)
	})
}

func IncHTTP(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

func IncOperation(operation, outcome string) {
	operations.WithLabelValues(operation, outcome).Inc()
}

func AddDoubleBookings(n int) {
	resolverInconsistencies.Add(float64(n))
}
