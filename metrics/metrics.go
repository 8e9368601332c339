// Package metrics exposes decorator pass progress as prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/comptime/transform"
)

const namespace = "comptime"

// Collector records decorator applications and file transforms; it implements transform.Observer
type Collector struct {
	registry         *prometheus.Registry
	decorators       *prometheus.CounterVec
	files            *prometheus.CounterVec
	duration         prometheus.Histogram
	lastRunTimestamp prometheus.Gauge
}

// New creates a collector registered with its own registry
func New() *Collector {
	ret := &Collector{
		registry: prometheus.NewRegistry(),
		decorators: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decorators_applied_total",
				Help:      "Total number of decorator applications by result kind",
			},
			[]string{"decorator", "result"},
		),
		files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_transformed_total",
				Help:      "Total number of transformed files by status",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "file_transform_duration_seconds",
				Help:      "Duration of single file transforms",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
		lastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last completed transform run",
			},
		),
	}
	ret.registry.MustRegister(ret.decorators, ret.files, ret.duration, ret.lastRunTimestamp)
	return ret
}

// DecoratorApplied implements transform.Observer
func (c *Collector) DecoratorApplied(name string, kind transform.ResultKind) {
	c.decorators.WithLabelValues(name, kind.String()).Inc()
}

// FileTransformed implements transform.Observer
func (c *Collector) FileTransformed(path string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.files.WithLabelValues(status).Inc()
	c.duration.Observe(elapsed.Seconds())
}

// RunCompleted records the completion time of a run
func (c *Collector) RunCompleted(at time.Time) {
	c.lastRunTimestamp.Set(float64(at.Unix()))
}

// Registry returns the collector registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an http handler serving collected metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
