package taskqueue

import (
	"fmt"
	"sync"
	"time"

	"github.com/vnykmshr/gobag/pkg/structures/syncqueue"
)

// idleInterval is how long a worker sleeps between poll attempts.
// Cancellation is observed once per loop iteration, so it also bounds
// cancellation latency while a worker is idle.
const idleInterval = 10 * time.Millisecond

// flag is a lock-guarded boolean cell shared between a worker's
// goroutine and its owner.
type flag struct {
	mu  sync.Mutex
	set bool
}

func (f *flag) get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

func (f *flag) put(v bool) {
	f.mu.Lock()
	f.set = v
	f.mu.Unlock()
}

// Worker is a single background goroutine polling a shared backlog and
// invoking the handler once per item. Workers are created by TaskQueue
// but can be used standalone for one-off drain loops.
type Worker[T any] struct {
	busy     flag
	canceled flag
	done     chan struct{}
}

// NewWorker starts a worker goroutine that polls backlog and passes
// each popped item to handler. The worker runs until canceled.
func NewWorker[T any](backlog *syncqueue.SharedQueue[T], handler func(T)) *Worker[T] {
	w := &Worker[T]{
		done: make(chan struct{}),
	}
	go w.run(backlog, handler)
	return w
}

func (w *Worker[T]) run(backlog *syncqueue.SharedQueue[T], handler func(T)) {
	defer close(w.done)

	for {
		if w.canceled.get() {
			return
		}

		if item, ok := backlog.Pop(); ok {
			w.busy.put(true)
			// A failed item is dropped; the worker survives.
			_ = invoke(handler, item)
			w.busy.put(false)
		}

		time.Sleep(idleInterval)
	}
}

// invoke runs the handler for one item, converting a panic into an
// error so a failing item cannot take down the worker goroutine.
func invoke[T any](handler func(T), item T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()

	handler(item)
	return nil
}

// IsBusy reports whether the worker is currently inside the handler.
func (w *Worker[T]) IsBusy() bool {
	return w.busy.get()
}

// IsCanceled reports whether the worker has been asked to stop.
func (w *Worker[T]) IsCanceled() bool {
	return w.canceled.get()
}

// IsFinished reports whether the worker's goroutine has exited.
func (w *Worker[T]) IsFinished() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// Cancel asks the worker to stop. It is idempotent and does not block;
// the worker observes the request at the top of its next loop
// iteration.
func (w *Worker[T]) Cancel() {
	w.canceled.put(true)
}

// Stop cancels the worker and blocks until its goroutine has exited,
// waiting out an in-flight handler call if there is one.
func (w *Worker[T]) Stop() {
	w.Cancel()
	<-w.done
}
