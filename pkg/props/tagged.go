package props

// Tagged wraps a value of any type and attaches a property collection
// to it, so metadata can ride along without changing the value's type.
type Tagged[T any] struct {
	value T
	props *Collection
}

// NewTagged wraps value with an empty property collection.
func NewTagged[T any](value T) *Tagged[T] {
	return &Tagged[T]{
		value: value,
		props: NewCollection(),
	}
}

// Unwrap returns the wrapped value.
func (t *Tagged[T]) Unwrap() T {
	return t.value
}

// Set stores a property on the wrapper.
func (t *Tagged[T]) Set(key string, value Value) {
	t.props.Set(key, value)
}

// Get returns a property stored on the wrapper.
func (t *Tagged[T]) Get(key string) (Value, bool) {
	return t.props.Get(key)
}

// Properties exposes the full property collection.
func (t *Tagged[T]) Properties() *Collection {
	return t.props
}
