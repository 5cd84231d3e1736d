/*
Package taskqueue provides a fixed pool of background workers draining
a shared FIFO backlog.

A TaskQueue owns N workers, each running on its own goroutine, all
polling one shared backlog. Producers push items from any goroutine;
an idle worker pops the next item and invokes the handler with it. A
panic in the handler is contained at the worker loop: the item is
dropped and the worker keeps going.

	q := taskqueue.New(2, func(n int) {
		process(n)
	})
	defer q.Stop()

	q.Push(1)
	q.Push(2)
	q.Wait()

Semantics worth knowing:

  - Push never fails and never blocks beyond lock contention; the
    backlog is unbounded.
  - With more than one worker, items may complete out of push order;
    any idle worker can win the race for the next item. A single
    worker processes items strictly in push order.
  - IsEmpty refers to the backlog only and says nothing about items a
    worker is still handling; use Wait to drain.
  - Wait is a best-effort drain barrier: it returns once the backlog
    is empty and no worker is busy at the same polling instant. Stop
    pushing before calling Wait if a true barrier is needed.
  - New(0, handler) is legal and returns a queue that accepts pushes
    but never processes them; Wait then blocks forever once an item is
    pushed.
  - Workers poll with a short sleep between attempts rather than
    parking on the queue, so idle pickup latency is bounded by the
    poll interval.

Stop cancels every worker and blocks until their goroutines have
exited, waiting out at most one in-flight handler call per worker plus
one poll interval. Items still queued at Stop are never processed.
*/
package taskqueue
