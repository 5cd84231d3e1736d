package structures

// LinearData is the common interface of the linear containers in this
// library. Pop and Peek report false when the container is empty.
//
// Implementations are not safe for concurrent use unless documented
// otherwise; syncqueue provides the lock-guarded variant.
type LinearData[T any] interface {
	// Push adds an item to the container.
	Push(item T)

	// Pop removes and returns the next item per the container's
	// discipline (LIFO for stacks, FIFO for queues).
	Pop() (T, bool)

	// Peek returns the next item without removing it.
	Peek() (T, bool)

	// IsEmpty reports whether the container holds no items.
	IsEmpty() bool

	// Len returns the number of items currently held.
	Len() int
}
