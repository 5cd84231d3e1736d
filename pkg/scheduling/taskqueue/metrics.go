package taskqueue

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gobag/pkg/metrics"
)

// MetricsTaskQueue wraps a TaskQueue with Prometheus metrics
// collection. The queue contract is unchanged; the handler is
// decorated to observe durations, completions and panics.
type MetricsTaskQueue[T any] struct {
	queue    *TaskQueue[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a task queue with metrics enabled on a fresh
// registry, so multiple metrics-enabled queues do not collide.
func NewWithMetrics[T any](workers int, name string, handler func(T)) *MetricsTaskQueue[T] {
	registry := prometheus.NewRegistry()
	return NewWithMetricsConfig(workers, name, handler, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
}

// NewWithMetricsConfig creates a task queue with custom metrics
// configuration. With metrics disabled the handler runs undecorated.
func NewWithMetricsConfig[T any](workers int, name string, handler func(T), config metrics.Config) *MetricsTaskQueue[T] {
	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	mq := &MetricsTaskQueue[T]{
		name:     name,
		registry: registry,
		enabled:  config.Enabled,
	}

	wrapped := handler
	if config.Enabled {
		wrapped = mq.instrument(handler)
	}
	mq.queue = New(workers, wrapped)

	mq.updateGauges()
	return mq
}

// instrument decorates the handler to record per-item metrics.
func (mq *MetricsTaskQueue[T]) instrument(handler func(T)) func(T) {
	return func(item T) {
		start := time.Now()
		defer func() {
			mq.registry.HandlerDuration.WithLabelValues(mq.name).Observe(time.Since(start).Seconds())
			if r := recover(); r != nil {
				mq.registry.ItemsPanicked.WithLabelValues(mq.name).Inc()
				// Re-raise so the worker's isolation still applies.
				panic(r)
			}
			mq.registry.ItemsProcessed.WithLabelValues(mq.name).Inc()
		}()

		handler(item)
	}
}

func (mq *MetricsTaskQueue[T]) updateGauges() {
	if !mq.enabled {
		return
	}

	mq.registry.TaskQueueWorkers.WithLabelValues(mq.name).Set(float64(mq.queue.Size()))
	mq.registry.TaskQueueBusy.WithLabelValues(mq.name).Set(float64(mq.queue.BusyWorkers()))
	mq.registry.TaskQueueBacklog.WithLabelValues(mq.name).Set(float64(mq.queue.Len()))
}

// Push adds an item to the backlog for processing.
func (mq *MetricsTaskQueue[T]) Push(item T) {
	mq.queue.Push(item)
	mq.updateGauges()
}

// IsEmpty reports whether the backlog is empty.
func (mq *MetricsTaskQueue[T]) IsEmpty() bool {
	return mq.queue.IsEmpty()
}

// IsBusy reports whether any worker is inside the handler.
func (mq *MetricsTaskQueue[T]) IsBusy() bool {
	return mq.queue.IsBusy()
}

// Len returns the number of items waiting in the backlog.
func (mq *MetricsTaskQueue[T]) Len() int {
	length := mq.queue.Len()
	if mq.enabled {
		mq.registry.TaskQueueBacklog.WithLabelValues(mq.name).Set(float64(length))
	}
	return length
}

// Size returns the number of workers in the queue.
func (mq *MetricsTaskQueue[T]) Size() int {
	return mq.queue.Size()
}

// BusyWorkers returns the number of workers inside the handler.
func (mq *MetricsTaskQueue[T]) BusyWorkers() int {
	busy := mq.queue.BusyWorkers()
	if mq.enabled {
		mq.registry.TaskQueueBusy.WithLabelValues(mq.name).Set(float64(busy))
	}
	return busy
}

// Wait blocks until the queue has drained; see TaskQueue.Wait.
func (mq *MetricsTaskQueue[T]) Wait() {
	mq.queue.Wait()
	mq.updateGauges()
}

// Stop cancels all workers and blocks until they have exited.
func (mq *MetricsTaskQueue[T]) Stop() {
	mq.queue.Stop()
	mq.updateGauges()
}

// MetricsEnabled returns true if metrics are currently collected.
func (mq *MetricsTaskQueue[T]) MetricsEnabled() bool {
	return mq.enabled
}
