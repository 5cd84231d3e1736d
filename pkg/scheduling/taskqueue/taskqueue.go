package taskqueue

import (
	"sync"
	"time"

	"github.com/vnykmshr/gobag/pkg/structures/syncqueue"
)

// waitInterval is how often Wait re-checks the drain condition.
const waitInterval = 100 * time.Millisecond

// TaskQueue processes pushed items concurrently with a fixed set of
// workers sharing one backlog. All methods are safe for concurrent
// use.
type TaskQueue[T any] struct {
	workers []*Worker[T]
	backlog *syncqueue.SharedQueue[T]

	stopOnce sync.Once
}

// New creates a task queue with the given number of workers, each
// invoking handler once per item. The handler is shared by all
// workers and must be safe to call from multiple goroutines.
//
// New never fails. A worker count of zero produces a queue that
// accepts pushes but never processes them; see the package
// documentation before relying on that.
func New[T any](workers int, handler func(T)) *TaskQueue[T] {
	backlog := syncqueue.New[T]()

	q := &TaskQueue[T]{
		workers: make([]*Worker[T], 0, workers),
		backlog: backlog,
	}
	for i := 0; i < workers; i++ {
		q.workers = append(q.workers, NewWorker(backlog, handler))
	}
	return q
}

// Push adds an item to the backlog for processing. It never fails and
// may be called from any number of goroutines, including while workers
// are mid-handler.
func (q *TaskQueue[T]) Push(item T) {
	q.backlog.Push(item)
}

// IsEmpty reports whether the backlog held no pending items at the
// instant of the check. Items currently inside a handler do not count;
// combine with IsBusy (or use Wait) to detect full quiescence.
func (q *TaskQueue[T]) IsEmpty() bool {
	return q.backlog.IsEmpty()
}

// IsBusy reports whether any worker was inside the handler at the
// instant of the check.
func (q *TaskQueue[T]) IsBusy() bool {
	for _, w := range q.workers {
		if w.IsBusy() {
			return true
		}
	}
	return false
}

// BusyWorkers returns the number of workers inside the handler at the
// instant of the check.
func (q *TaskQueue[T]) BusyWorkers() int {
	busy := 0
	for _, w := range q.workers {
		if w.IsBusy() {
			busy++
		}
	}
	return busy
}

// Len returns the number of items waiting in the backlog.
func (q *TaskQueue[T]) Len() int {
	return q.backlog.Len()
}

// Size returns the number of workers in the queue.
func (q *TaskQueue[T]) Size() int {
	return len(q.workers)
}

// Wait blocks until the backlog is empty and no worker is busy at the
// same polling instant. It is a best-effort drain barrier: a push
// racing with Wait may be picked up before Wait returns, but a push
// arriving after the final check is not waited for.
func (q *TaskQueue[T]) Wait() {
	for !q.IsEmpty() || q.IsBusy() {
		time.Sleep(waitInterval)
	}
}

// Stop cancels all workers and blocks until their goroutines have
// exited. In-flight handler calls are waited out; items still queued
// are dropped unprocessed. Stop is idempotent; pushes after Stop are
// accepted but never processed.
func (q *TaskQueue[T]) Stop() {
	q.stopOnce.Do(func() {
		// Signal everyone first so workers wind down in parallel,
		// then join one by one.
		for _, w := range q.workers {
			w.Cancel()
		}
		for _, w := range q.workers {
			w.Stop()
		}
	})
}
