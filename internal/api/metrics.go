package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lifeflow",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests served, by method, route pattern and status code.",
}, []string{"method", "route", "code"})

var httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "lifeflow",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency, by method and route pattern.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})
