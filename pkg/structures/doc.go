/*
Package structures defines the shared contract for the linear container
packages (stack, queue, syncqueue).

The LinearData interface captures the push/pop surface that all linear
containers in this library expose, so code can be written against the
abstraction and swap LIFO for FIFO behavior:

	func drain[T any](d structures.LinearData[T]) []T {
		var out []T
		for {
			item, ok := d.Pop()
			if !ok {
				return out
			}
			out = append(out, item)
		}
	}
*/
package structures
