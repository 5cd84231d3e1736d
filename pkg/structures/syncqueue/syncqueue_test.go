package syncqueue

import (
	"sync"
	"testing"

	"github.com/vnykmshr/gobag/internal/testutil"
)

func TestBasicOperations(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	for want := 1; want <= 3; want++ {
		got, ok := q.Pop()
		testutil.AssertEqual(t, ok, true)
		testutil.AssertEqual(t, got, want)
	}

	_, ok := q.Pop()
	testutil.AssertEqual(t, ok, false)
}

func TestIsEmpty(t *testing.T) {
	q := New[int]()
	testutil.AssertEqual(t, q.IsEmpty(), true)

	q.Push(1)
	testutil.AssertEqual(t, q.IsEmpty(), false)
	testutil.AssertEqual(t, q.Len(), 1)

	q.Pop()
	testutil.AssertEqual(t, q.IsEmpty(), true)
}

func TestProducerConsumer(t *testing.T) {
	const n = 100
	q := New[int]()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(i)
		}
	}()

	sum := 0
	count := 0
	for count < n {
		if v, ok := q.Pop(); ok {
			sum += v
			count++
		}
	}
	wg.Wait()

	testutil.AssertEqual(t, sum, n*(n-1)/2)
	testutil.AssertEqual(t, q.IsEmpty(), true)
}

func TestConcurrentProducers(t *testing.T) {
	const producers = 5
	const perProducer = 50
	q := New[int]()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(1)
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, q.Len(), producers*perProducer)

	total := 0
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		total += v
	}
	testutil.AssertEqual(t, total, producers*perProducer)
}

func TestFIFOWithinProducer(t *testing.T) {
	// A single producer's items must come out in push order even with
	// a concurrent consumer draining the queue.
	const n = 200
	q := New[int]()

	done := make(chan struct{})
	var out []int
	go func() {
		defer close(done)
		for len(out) < n {
			if v, ok := q.Pop(); ok {
				out = append(out, v)
			}
		}
	}()

	for i := 0; i < n; i++ {
		q.Push(i)
	}
	<-done

	for i, v := range out {
		if v != i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i)
		}
	}
}
