/*
Package feeder pushes items into a task queue on a cron schedule.

A Feeder owns a cron runner and any number of entries; each entry has a
schedule and a produce function, and on every tick the produced item is
pushed into the feeder's target. Schedules use the standard cron format
with a seconds field, plus @descriptors such as @hourly and
@every 30s.

	q := taskqueue.New(2, handle)
	f, _ := feeder.New[job](q)
	f.Add("@every 1m", nextJob)
	f.Start()
	defer f.Stop()

Stopping the feeder stops the ticking only; the target queue keeps
running until stopped separately.
*/
package feeder

import (
	"fmt"

	"github.com/robfig/cron/v3"

	gberrors "github.com/vnykmshr/gobag/pkg/common/errors"
	"github.com/vnykmshr/gobag/pkg/common/validation"
	"github.com/vnykmshr/gobag/pkg/metrics"
)

// Target is the push side of a task queue. Both taskqueue.TaskQueue
// and taskqueue.MetricsTaskQueue satisfy it.
type Target[T any] interface {
	Push(item T)
}

// EntryID identifies a scheduled entry within a feeder.
type EntryID = cron.EntryID

// Feeder produces items into a Target on cron schedules.
type Feeder[T any] struct {
	target   Target[T]
	cron     *cron.Cron
	name     string
	registry *metrics.Registry
	enabled  bool
}

// New creates a feeder for the given target. The feeder does not tick
// until Start is called.
func New[T any](target Target[T]) (*Feeder[T], error) {
	return NewWithMetricsConfig(target, "", metrics.Config{})
}

// NewWithMetrics creates a feeder that counts ticks under the given
// name in the default metrics registry.
func NewWithMetrics[T any](target Target[T], name string) (*Feeder[T], error) {
	return NewWithMetricsConfig(target, name, metrics.Config{Enabled: true})
}

// NewWithMetricsConfig creates a feeder with custom metrics
// configuration.
func NewWithMetricsConfig[T any](target Target[T], name string, config metrics.Config) (*Feeder[T], error) {
	if err := validation.ValidateNotNil("feeder", "target", target); err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	return &Feeder[T]{
		target:   target,
		cron:     cron.New(cron.WithParser(parser)),
		name:     name,
		registry: registry,
		enabled:  config.Enabled,
	}, nil
}

// Add schedules produce to run on the given cron schedule; each tick
// pushes the produced item into the target. Entries may be added
// before or after Start.
func (f *Feeder[T]) Add(schedule string, produce func() T) (EntryID, error) {
	if schedule == "" {
		return 0, gberrors.NewValidationError("feeder", "schedule", schedule, "cannot be empty")
	}
	if produce == nil {
		return 0, gberrors.NewValidationError("feeder", "produce", nil, "cannot be nil")
	}

	id, err := f.cron.AddFunc(schedule, func() {
		f.target.Push(produce())
		if f.enabled {
			f.registry.FeederTicks.WithLabelValues(f.name).Inc()
		}
	})
	if err != nil {
		return 0, fmt.Errorf("feeder: invalid schedule %q: %w", schedule, err)
	}
	return id, nil
}

// Remove cancels a scheduled entry. Removing an unknown entry is a
// no-op.
func (f *Feeder[T]) Remove(id EntryID) {
	f.cron.Remove(id)
}

// Entries returns the identifiers of all scheduled entries.
func (f *Feeder[T]) Entries() []EntryID {
	entries := f.cron.Entries()
	ids := make([]EntryID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// Start begins ticking. Starting an already started feeder is a no-op.
func (f *Feeder[T]) Start() {
	f.cron.Start()
}

// Stop halts ticking and blocks until in-flight produce calls have
// completed. The target is left running.
func (f *Feeder[T]) Stop() {
	<-f.cron.Stop().Done()
}
