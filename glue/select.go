package glue

// fieldSelection tracks key(parent.Value()): it follows both the parent
// switching to another field and the current field changing its value.
type fieldSelection[P, F any] struct {
	tx     transactional[ValueChange[F]]
	parent ObservableValue[P]
	key    func(P) ObservableValue[F]

	active     bool
	value      F
	parentConn *Connection
	fieldConn  *Connection
}

// Select returns an observable for the field that key picks out of the
// current value of parent.
//
// For a model like
//
//	type Message struct{ Text *glue.Variable[string] }
//	room := glue.NewVariable(&Message{...})
//
// glue.Select(room, func(m *Message) glue.ObservableValue[string] { return m.Text })
// fires when room switches to another message and when the text of the
// current message changes.
func Select[P, F any](parent ObservableValue[P], key func(P) ObservableValue[F]) ObservableValue[F] {
	return newFieldSelection(parent, key)
}

func newFieldSelection[P, F any](parent ObservableValue[P], key func(P) ObservableValue[F]) *fieldSelection[P, F] {
	s := &fieldSelection[P, F]{parent: parent, key: key}
	s.tx.init("select", s.startObserving, s.stopObserving)
	return s
}

func (s *fieldSelection[P, F]) Value() F {
	if s.active {
		return s.value
	}
	return s.key(s.parent.Value()).Value()
}

func (s *fieldSelection[P, F]) Updates() Source[Update[ValueChange[F]]] {
	return &s.tx
}

func (s *fieldSelection[P, F]) startObserving() {
	field := s.key(s.parent.Value())
	s.value = field.Value()
	s.active = true
	s.fieldConn = field.Updates().Connect(s.applyField)
	s.parentConn = s.parent.Updates().Connect(s.applyParent)
}

func (s *fieldSelection[P, F]) stopObserving() {
	s.parentConn.Disconnect()
	s.fieldConn.Disconnect()
	s.parentConn = nil
	s.fieldConn = nil
	s.active = false
	var zero F
	s.value = zero
}

func (s *fieldSelection[P, F]) applyParent(u Update[ValueChange[P]]) {
	switch u.Kind {
	case BeginTransaction:
		s.tx.beginTransaction()
	case Changed:
		field := s.key(u.Change.New)
		old := s.value
		s.value = field.Value()
		s.fieldConn.Disconnect()
		s.fieldConn = field.Updates().Connect(s.applyField)
		s.tx.sendChange(ValueChange[F]{Old: old, New: s.value})
	case EndTransaction:
		s.tx.endTransaction()
	}
}

func (s *fieldSelection[P, F]) applyField(u Update[ValueChange[F]]) {
	switch u.Kind {
	case BeginTransaction:
		s.tx.beginTransaction()
	case Changed:
		old := s.value
		s.value = u.Change.New
		s.tx.sendChange(ValueChange[F]{Old: old, New: s.value})
	case EndTransaction:
		s.tx.endTransaction()
	}
}

type updatableFieldSelection[P, F any] struct {
	*fieldSelection[P, F]
	key func(P) UpdatableValue[F]
}

// SelectUpdatable is Select for updatable fields. Writes go to the field
// selected by the current value of parent, inside that field's own
// transaction.
func SelectUpdatable[P, F any](parent ObservableValue[P], key func(P) UpdatableValue[F]) UpdatableValue[F] {
	return updatableFieldSelection[P, F]{
		fieldSelection: newFieldSelection(parent, func(p P) ObservableValue[F] { return key(p) }),
		key:            key,
	}
}

func (s updatableFieldSelection[P, F]) SetValue(v F) {
	s.key(s.parent.Value()).SetValue(v)
}

func (s updatableFieldSelection[P, F]) WithTransaction(body func()) {
	s.key(s.parent.Value()).WithTransaction(body)
}
