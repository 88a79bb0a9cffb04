package prometheus

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements MetricsCollector using Prometheus. It owns its own
// registry so the exposition contains only gateway metrics.
type Collector struct {
	registry *prometheus.Registry

	requestCount   *prometheus.CounterVec
	requestLatency prometheus.Histogram
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		requestCount: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "request_count",
				Help: "Total request count partitioned by HTTP status class",
			},
			[]string{"status_class", "route"},
		),
		requestLatency: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "request_latency_seconds",
				Help:    "Request latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.2, 0.5, 1, 2, 5},
			},
		),
	}

	// Pre-create the uncaught series so the counter family is present in the
	// exposition before any traffic arrives.
	c.requestCount.WithLabelValues(StatusClass(http.StatusInternalServerError), "uncaught")

	return c
}

// IncRequest increments the request counter for the status/route pair
func (c *Collector) IncRequest(status int, route string) {
	c.requestCount.WithLabelValues(StatusClass(status), route).Inc()
}

// ObserveLatency records one request latency sample
func (c *Collector) ObserveLatency(d time.Duration) {
	c.requestLatency.Observe(d.Seconds())
}

// Handler returns the metrics exposition handler for this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// StatusClass returns the metrics label for an HTTP status code, e.g. "2xx"
func StatusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
