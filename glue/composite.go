package glue

// erasedValue is an observable with its type parameter stripped, so that a
// composite can hold sources of different types in one slice.
type erasedValue interface {
	anyValue() any
	connectAny(sink func(kind UpdateKind, newValue any)) *Connection
}

type erased[T any] struct {
	o ObservableValue[T]
}

func erase[T any](o ObservableValue[T]) erasedValue {
	return erased[T]{o: o}
}

func (e erased[T]) anyValue() any {
	return e.o.Value()
}

func (e erased[T]) connectAny(sink func(UpdateKind, any)) *Connection {
	return e.o.Updates().Connect(func(u Update[ValueChange[T]]) {
		sink(u.Kind, u.Change.New)
	})
}

// as converts back from any. Nil interface values become the zero T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

// composite combines several sources through fn. While observed it caches
// the last known value of every source and the combined value.
type composite[O any] struct {
	tx      transactional[ValueChange[O]]
	sources []erasedValue
	fn      func(args ...any) O

	active bool
	args   []any
	value  O
	conns  ConnectionBag
}

func newComposite[O any](fn func(args ...any) O, sources ...erasedValue) *composite[O] {
	c := &composite[O]{sources: sources, fn: fn}
	c.tx.init("composite", c.startObserving, c.stopObserving)
	return c
}

func (c *composite[O]) currentArgs() []any {
	args := make([]any, len(c.sources))
	for i, src := range c.sources {
		args[i] = src.anyValue()
	}
	return args
}

func (c *composite[O]) Value() O {
	if c.active {
		return c.value
	}
	return c.fn(c.currentArgs()...)
}

func (c *composite[O]) Updates() Source[Update[ValueChange[O]]] {
	return &c.tx
}

func (c *composite[O]) startObserving() {
	c.args = c.currentArgs()
	c.value = c.fn(c.args...)
	c.active = true
	for i, src := range c.sources {
		i := i
		c.conns.Add(src.connectAny(func(kind UpdateKind, v any) {
			c.apply(i, kind, v)
		}))
	}
}

func (c *composite[O]) stopObserving() {
	c.conns.DisconnectAll()
	c.active = false
	c.args = nil
	var zero O
	c.value = zero
}

func (c *composite[O]) apply(i int, kind UpdateKind, v any) {
	switch kind {
	case BeginTransaction:
		c.tx.beginTransaction()
	case Changed:
		c.args[i] = v
		old := c.value
		c.value = c.fn(c.args...)
		c.tx.sendChange(ValueChange[O]{Old: old, New: c.value})
	case EndTransaction:
		c.tx.endTransaction()
	}
}
