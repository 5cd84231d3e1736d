// Package stack provides a generic LIFO stack.
package stack

import (
	"github.com/vnykmshr/gobag/pkg/structures"
)

// Stack is a slice-backed last-in-first-out container.
// The zero value is not usable; create stacks with New.
type Stack[T any] struct {
	items []T
}

var _ structures.LinearData[int] = (*Stack[int])(nil)

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds an item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the item at the top of the stack.
// It reports false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero // release the reference for GC
	s.items = s.items[:last]
	return item, true
}

// Peek returns the item at the top of the stack without removing it.
// It reports false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
