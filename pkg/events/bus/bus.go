/*
Package bus provides in-process publish/subscribe primitives.

Bus fans every published message out to all subscribers; Chain passes a
message through handlers in order until one consumes it. Both are safe
for concurrent use, and handlers run synchronously on the publishing
goroutine.
*/
package bus

import "sync"

// Bus delivers every published message to all subscribed handlers, in
// subscription order.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers []func(T)
}

// New creates a bus with no subscribers.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler for all future messages.
// Handlers cannot be removed.
func (b *Bus[T]) Subscribe(handler func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers the message to every handler, in subscription
// order, on the calling goroutine. Handlers subscribed during delivery
// see only later messages.
func (b *Bus[T]) Publish(message T) {
	b.mu.RLock()
	handlers := make([]func(T), len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(message)
	}
}

// Subscribers returns the number of registered handlers.
func (b *Bus[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
