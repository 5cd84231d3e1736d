package bus

import "sync"

// Chain delivers a message to handlers in subscription order and stops
// at the first handler that consumes it (returns true).
type Chain[T any] struct {
	mu       sync.RWMutex
	handlers []func(T) bool
}

// NewChain creates a chain with no handlers.
func NewChain[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Subscribe registers a handler. A handler returns true to consume the
// message and stop propagation, false to pass it along.
func (c *Chain[T]) Subscribe(handler func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Publish walks the handlers in order until one consumes the message.
// It reports whether any handler did.
func (c *Chain[T]) Publish(message T) bool {
	c.mu.RLock()
	handlers := make([]func(T) bool, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.RUnlock()

	for _, handler := range handlers {
		if handler(message) {
			return true
		}
	}
	return false
}

// Subscribers returns the number of registered handlers.
func (c *Chain[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.handlers)
}
