// Package queue provides a generic FIFO queue built from two stacks.
package queue

import (
	"github.com/vnykmshr/gobag/pkg/structures"
	"github.com/vnykmshr/gobag/pkg/structures/stack"
)

// Queue is a first-in-first-out container implemented with two stacks:
// pushes land on the backlog stack, pops are served from the items
// stack, and the backlog is flipped over only when the items stack runs
// dry. Each element is moved at most once, so push and pop are
// amortized O(1).
//
// Queue is not safe for concurrent use; see syncqueue for the shared
// variant.
type Queue[T any] struct {
	items   *stack.Stack[T]
	backlog *stack.Stack[T]
}

var _ structures.LinearData[int] = (*Queue[int])(nil)

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		items:   stack.New[T](),
		backlog: stack.New[T](),
	}
}

// Push adds an item to the back of the queue.
func (q *Queue[T]) Push(item T) {
	q.backlog.Push(item)
}

// Pop removes and returns the item at the front of the queue.
// It reports false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	q.flip()
	return q.items.Pop()
}

// Peek returns the item at the front of the queue without removing it.
// It reports false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	q.flip()
	return q.items.Peek()
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.items.IsEmpty() && q.backlog.IsEmpty()
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.items.Len() + q.backlog.Len()
}

// flip moves the backlog onto the items stack, reversing it into FIFO
// order. Only runs when the items stack is empty so existing order is
// preserved.
func (q *Queue[T]) flip() {
	if !q.items.IsEmpty() {
		return
	}
	for {
		item, ok := q.backlog.Pop()
		if !ok {
			return
		}
		q.items.Push(item)
	}
}
