package glue

// Variable is a source value: it holds its value and notifies on writes.
type Variable[T any] struct {
	tx    transactional[ValueChange[T]]
	value T
}

func NewVariable[T any](v T) *Variable[T] {
	x := &Variable[T]{value: v}
	x.tx.init("variable", nil, nil)
	return x
}

func (v *Variable[T]) Value() T {
	return v.value
}

func (v *Variable[T]) SetValue(value T) {
	v.tx.beginTransaction()
	old := v.value
	v.value = value
	v.tx.sendChange(ValueChange[T]{Old: old, New: value})
	v.tx.endTransaction()
}

// Update replaces the value with fn applied to the current one.
func (v *Variable[T]) Update(fn func(T) T) {
	v.SetValue(fn(v.value))
}

func (v *Variable[T]) WithTransaction(body func()) {
	v.tx.withTransaction(body)
}

func (v *Variable[T]) Updates() Source[Update[ValueChange[T]]] {
	return &v.tx
}

func (v *Variable[T]) Changes() Source[ValueChange[T]] {
	return Changes[ValueChange[T]](&v.tx)
}

// IsObserved reports whether any sink is connected to the update stream.
func (v *Variable[T]) IsObserved() bool {
	return v.tx.isObserved()
}
