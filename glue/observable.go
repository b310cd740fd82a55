package glue

// ValueChange describes a scalar observable going from Old to New.
type ValueChange[T any] struct {
	Old T
	New T
}

// IsEmpty is always false: values are not required to be comparable, so a
// ValueChange is never assumed to be a no-op.
func (c ValueChange[T]) IsEmpty() bool {
	return false
}

// Merged returns the change spanning c followed by next.
func (c ValueChange[T]) Merged(next ValueChange[T]) ValueChange[T] {
	return ValueChange[T]{Old: c.Old, New: next.New}
}

// Reversed returns the change that undoes c.
func (c ValueChange[T]) Reversed() ValueChange[T] {
	return ValueChange[T]{Old: c.New, New: c.Old}
}

// ObservableValue is a value with a transactional update stream. Value is
// authoritative whether or not anybody is observing.
type ObservableValue[T any] interface {
	Value() T
	Updates() Source[Update[ValueChange[T]]]
}

// UpdatableValue is an ObservableValue that also accepts writes.
// WithTransaction brackets body so that every write it performs reaches
// observers as a single transaction.
type UpdatableValue[T any] interface {
	ObservableValue[T]
	SetValue(v T)
	WithTransaction(body func())
}

// ValueChanges returns the completed changes of o.
func ValueChanges[T any](o ObservableValue[T]) Source[ValueChange[T]] {
	return Changes(o.Updates())
}

type mapping[T, R any] struct {
	tx     transactional[ValueChange[R]]
	parent ObservableValue[T]
	fn     func(T) R

	conn  *Connection
	value R
}

// Map returns an observable whose value is fn applied to the value of parent.
func Map[T, R any](parent ObservableValue[T], fn func(T) R) ObservableValue[R] {
	m := &mapping[T, R]{parent: parent, fn: fn}
	m.tx.init("map", m.startObserving, m.stopObserving)
	return m
}

type updatableMapping[T, R any] struct {
	*mapping[T, R]
	target  UpdatableValue[T]
	inverse func(R) T
}

// MapUpdatable is Map for an updatable parent. Setting the result writes
// inverse of the new value to parent, so inverse must undo fn.
func MapUpdatable[T, R any](parent UpdatableValue[T], fn func(T) R, inverse func(R) T) UpdatableValue[R] {
	m := &mapping[T, R]{parent: parent, fn: fn}
	m.tx.init("map-updatable", m.startObserving, m.stopObserving)
	return updatableMapping[T, R]{mapping: m, target: parent, inverse: inverse}
}

func (u updatableMapping[T, R]) SetValue(v R) {
	u.target.SetValue(u.inverse(v))
}

func (u updatableMapping[T, R]) WithTransaction(body func()) {
	u.target.WithTransaction(body)
}

func (m *mapping[T, R]) Value() R {
	if m.conn != nil {
		return m.value
	}
	return m.fn(m.parent.Value())
}

func (m *mapping[T, R]) Updates() Source[Update[ValueChange[R]]] {
	return &m.tx
}

func (m *mapping[T, R]) startObserving() {
	m.value = m.fn(m.parent.Value())
	m.conn = m.parent.Updates().Connect(m.apply)
}

func (m *mapping[T, R]) stopObserving() {
	m.conn.Disconnect()
	m.conn = nil
	var zero R
	m.value = zero
}

func (m *mapping[T, R]) apply(u Update[ValueChange[T]]) {
	switch u.Kind {
	case BeginTransaction:
		m.tx.beginTransaction()
	case Changed:
		old := m.value
		m.value = m.fn(u.Change.New)
		m.tx.sendChange(ValueChange[R]{Old: old, New: m.value})
	case EndTransaction:
		m.tx.endTransaction()
	}
}
