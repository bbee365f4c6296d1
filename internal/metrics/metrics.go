// Package metrics collects and exposes Prometheus metrics for the admin API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records per-request metrics.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authDenied      *prometheus.CounterVec
}

// NewCollector creates a Collector with its own registry and registers the
// metrics on it.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_admin_http_requests_total",
			Help: "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "converter_admin_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_admin_auth_denied_total",
			Help: "Requests rejected by the authorization middleware, by status code.",
		}, []string{"status_code"}),
	}
	registry.MustRegister(c.requestsTotal, c.requestDuration, c.authDenied)
	return c
}

// Middleware returns a gin handler that records request count and latency.
// The route label uses the matched route pattern, not the raw path, to keep
// label cardinality bounded.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		status := ctx.Writer.Status()
		code := strconv.Itoa(status)

		c.requestsTotal.WithLabelValues(method, route, code).Inc()
		c.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			c.authDenied.WithLabelValues(code).Inc()
		}
	}
}

// Handler returns the /metrics scrape handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
