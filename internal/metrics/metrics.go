package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Auth
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"}, // success|invalid_credentials|error
	)
	AuthRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Requests rejected by the auth middleware",
		},
		[]string{"reason"},
	)

	// Hashing worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestLatency)
		prometheus.MustRegister(LoginAttempts)
		prometheus.MustRegister(AuthRejections)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
