package glue

type constant[T any] struct {
	value T
}

// Constant returns an observable whose value never changes.
func Constant[T any](v T) ObservableValue[T] {
	return constant[T]{value: v}
}

func (c constant[T]) Value() T {
	return c.value
}

func (c constant[T]) Updates() Source[Update[ValueChange[T]]] {
	return silentSource[Update[ValueChange[T]]]{}
}

type silentSource[T any] struct{}

func (silentSource[T]) Connect(Sink[T]) *Connection {
	return newConnection(func() {})
}
