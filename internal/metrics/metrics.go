// Package metrics records request timings and error counts for a CLI run.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the metrics of one process on a private registry.
// It satisfies transport.Observer and api.ErrorObserver.
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	transportErrors prometheus.Counter
	apiErrors       *prometheus.CounterVec
}

// New creates a Collector with its own registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vk_transport_request_duration_seconds",
			Help:    "Duration of HTTP requests sent to VK, by status code.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"code"}),
		transportErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "vk_transport_errors_total",
			Help: "Requests that failed before a response was received.",
		}),
		apiErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vk_api_errors_total",
			Help: "Error objects returned by the API, by error code.",
		}, []string{"code"}),
	}
}

// ObserveRequest records one finished transport request.
func (c *Collector) ObserveRequest(statusCode int, duration time.Duration, err error) {
	if err != nil {
		c.transportErrors.Inc()
		return
	}
	c.requestDuration.WithLabelValues(strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// ObserveAPIError records one API error code.
func (c *Collector) ObserveAPIError(code int) {
	c.apiErrors.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the metrics in the text exposition format used by the
// node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
