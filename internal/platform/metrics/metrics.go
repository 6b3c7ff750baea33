// Copyright (c) 2026 Featherworks. All rights reserved.

// Package metrics exposes Prometheus instrumentation for the HTTP layer.
//
// A single registry-backed middleware records request counts and latency;
// the /metrics endpoint serves the standard Prometheus exposition format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aviary",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed, by method and status.",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aviary",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency distribution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// Middleware instruments every request with count and latency metrics.
//
// Paths are deliberately not used as a label: the admin registry's
// per-record URLs would explode the cardinality.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrapped, request)

			requestsTotal.WithLabelValues(request.Method, strconv.Itoa(wrapped.status)).Inc()
			requestDuration.WithLabelValues(request.Method).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
