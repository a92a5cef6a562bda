package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "africgo_frontend",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Total number of backend API calls.",
	}, []string{"call", "status"})

	backendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "africgo_frontend",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Backend API call latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"call", "status"})
)

func observeBackendCall(name string, status int, elapsed time.Duration) {
	labels := prometheus.Labels{
		"call":   name,
		"status": strconv.Itoa(status),
	}
	backendRequestsTotal.With(labels).Inc()
	backendRequestDuration.With(labels).Observe(elapsed.Seconds())
}
