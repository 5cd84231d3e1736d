/*
Package syncqueue provides an unbounded FIFO queue guarded by a mutex,
intended to be shared across goroutines.

A *SharedQueue is a handle: every goroutine holding the pointer operates
on the same underlying sequence, and the sequence lives until the last
handle is unreachable. Critical sections are bounded - no user code runs
while the lock is held - so Push and Pop only ever block on lock
contention.

Ordering: each operation is linearized at the lock, so items pushed
earlier by a single producer are observed no later than that producer's
later items. No ordering is guaranteed across producers beyond the
lock's serialization point.
*/
package syncqueue

import (
	"sync"

	"github.com/vnykmshr/gobag/pkg/structures/queue"
)

// SharedQueue is an unbounded FIFO safe for concurrent use by any
// number of producers and consumers.
type SharedQueue[T any] struct {
	mu    sync.Mutex
	items *queue.Queue[T]
}

// New creates an empty shared queue.
func New[T any]() *SharedQueue[T] {
	return &SharedQueue[T]{
		items: queue.New[T](),
	}
}

// Push appends an item at the tail. It never fails.
func (q *SharedQueue[T]) Push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.Push(item)
}

// Pop removes and returns the item at the head.
// It reports false if the queue is empty; it never blocks waiting for
// an item to arrive.
func (q *SharedQueue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Pop()
}

// IsEmpty reports whether the queue held no items at the instant of the
// check. The answer may be stale by the time the caller acts on it.
func (q *SharedQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.IsEmpty()
}

// Len returns the number of queued items at the instant of the check.
func (q *SharedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}
