package bus_test

import (
	"fmt"

	"github.com/vnykmshr/gobag/pkg/events/bus"
)

// Example demonstrates fan-out delivery to every subscriber.
func Example() {
	b := bus.New[string]()
	b.Subscribe(func(msg string) { fmt.Println("audit:", msg) })
	b.Subscribe(func(msg string) { fmt.Println("alert:", msg) })

	b.Publish("deploy finished")
	// Output:
	// audit: deploy finished
	// alert: deploy finished
}

// ExampleChain demonstrates stop-propagation delivery: the first
// handler that consumes a message ends the chain.
func ExampleChain() {
	c := bus.NewChain[int]()
	c.Subscribe(func(n int) bool {
		if n < 0 {
			fmt.Println("rejected:", n)
			return true
		}
		return false
	})
	c.Subscribe(func(n int) bool {
		fmt.Println("accepted:", n)
		return true
	})

	c.Publish(7)
	c.Publish(-1)
	// Output:
	// accepted: 7
	// rejected: -1
}
