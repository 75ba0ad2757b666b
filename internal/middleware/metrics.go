package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/storefront-backend/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// HTTPMetrics records latency and a request counter per route pattern and
// logs one line per request.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		status := strconv.Itoa(rec.status)
		elapsed := time.Since(start)
		metrics.RequestLatency.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
		metrics.RequestsTotal.WithLabelValues(route, r.Method, status).Inc()

		slog.Info("http",
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"dur_ms", elapsed.Milliseconds(),
			"request_id", RequestIDFrom(r.Context()),
		)
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if patt := rc.RoutePattern(); patt != "" {
			return patt
		}
	}
	return "unmatched"
}
