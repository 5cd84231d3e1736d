/*
Package signal provides a thread-safe reactive value with change
callbacks.

A Signal holds a single value that any goroutine may read or replace;
listeners registered with Listen are invoked on every Set with the
value that was written. A *Signal is a shared handle: every holder of
the pointer observes the same state.

	counter := signal.New(0)
	counter.Listen(func(v int) { fmt.Println("now", v) })
	counter.Set(42)

Listeners run on the goroutine that calls Set, outside the signal's
lock, in registration order. A listener must not assume the value it
receives is still current; concurrent Sets may interleave.
*/
package signal

import "sync"

// Signal is a shared reactive value of type T.
type Signal[T any] struct {
	mu        sync.Mutex
	value     T
	listeners []func(T)
}

// New creates a signal holding the initial value.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and notifies all listeners with the value
// written. Listeners registered during notification see only later
// updates.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	listeners := make([]func(T), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listen := range listeners {
		listen(value)
	}
}

// Listen registers a callback invoked on every subsequent Set.
// Listeners cannot be removed.
func (s *Signal[T]) Listen(fn func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
