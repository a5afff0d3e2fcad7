package pebble

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/threadkit/core"
	"github.com/hupe1980/threadkit/logging"
)

// Metrics exposes per-operation counters and latency histograms for the
// store. Register once per process; instances share the registerer's state.
type Metrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics builds store metrics registered with reg (use
// prometheus.DefaultRegisterer for the process-wide registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "threadkit",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and outcome.",
		}, []string{"op", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "threadkit",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// WithMetrics attaches metrics to a store opened via Open.
func WithMetrics(m *Metrics) func(o *Options) {
	return func(o *Options) { o.Metrics = m }
}

// WithLogger attaches a logger to a store opened via Open.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

func (m *Metrics) observe(op string, dur time.Duration, err error) {
	status := "ok"
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	m.ops.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(dur.Seconds())
}
