/*
Package gobag provides generic data structures and concurrency utilities
for Go applications.

Data Structures (pkg/structures, pkg/graph, pkg/props):
  - stack: Generic LIFO stack
  - queue: Generic two-stack FIFO queue
  - syncqueue: Shared, lock-guarded FIFO for cross-goroutine use
  - graph: Directed graph with typed nodes and edges, keyed by opaque IDs
  - props: Typed property bag and tagged value wrapper

Events (pkg/events):
  - signal: Reactive value with change callbacks
  - bus: Publish/subscribe fan-out bus and stop-propagation handler chain

Scheduling (pkg/scheduling):
  - taskqueue: Fixed worker pool draining a shared backlog
  - feeder: Cron-driven producer for a task queue

Example usage:

	import (
		"github.com/vnykmshr/gobag/pkg/scheduling/taskqueue"
	)

	q := taskqueue.New(4, func(job string) {
		process(job)
	})
	defer q.Stop()

	q.Push("job-1")
	q.Push("job-2")
	q.Wait()
*/
package gobag
