package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gobag components.
type Registry struct {
	// Task Queue Metrics
	TaskQueueWorkers *prometheus.GaugeVec
	TaskQueueBusy    *prometheus.GaugeVec
	TaskQueueBacklog *prometheus.GaugeVec
	ItemsProcessed   *prometheus.CounterVec
	ItemsPanicked    *prometheus.CounterVec
	HandlerDuration  *prometheus.HistogramVec

	// Feeder Metrics
	FeederTicks *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gobag components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		TaskQueueWorkers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobag",
				Subsystem: "taskqueue",
				Name:      "workers",
				Help:      "Number of workers in the task queue",
			},
			[]string{"queue_name"},
		),

		TaskQueueBusy: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobag",
				Subsystem: "taskqueue",
				Name:      "busy_workers",
				Help:      "Number of workers currently running the handler",
			},
			[]string{"queue_name"},
		),

		TaskQueueBacklog: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobag",
				Subsystem: "taskqueue",
				Name:      "backlog_items",
				Help:      "Number of items waiting in the backlog",
			},
			[]string{"queue_name"},
		),

		ItemsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobag",
				Subsystem: "taskqueue",
				Name:      "items_processed_total",
				Help:      "Total number of items handled to completion",
			},
			[]string{"queue_name"},
		),

		ItemsPanicked: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobag",
				Subsystem: "taskqueue",
				Name:      "items_panicked_total",
				Help:      "Total number of handler invocations that panicked",
			},
			[]string{"queue_name"},
		),

		HandlerDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gobag",
				Subsystem: "taskqueue",
				Name:      "handler_duration_seconds",
				Help:      "Time spent in the handler per item",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"queue_name"},
		),

		FeederTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobag",
				Subsystem: "feeder",
				Name:      "ticks_total",
				Help:      "Total number of scheduled pushes performed",
			},
			[]string{"feeder_name"},
		),
	}
}
