package glue

import "slices"

// buffered keeps a materialized copy of its content while observed. Changes
// made inside a transaction are merged and only land in the copy, and reach
// sinks, when the transaction ends.
type buffered[E any] struct {
	tx      transactional[ArrayChange[E]]
	content ObservableArray[E]

	conn       *Connection
	elems      []E
	pending    ArrayChange[E]
	hasPending bool
}

// Buffered returns an array that reads as content did before the current
// transaction started. Arrays that are buffered already are returned as is.
func Buffered[E any](content ObservableArray[E]) ObservableArray[E] {
	if content.IsBuffered() {
		return content
	}
	b := &buffered[E]{content: content}
	b.tx.init("buffered", b.startObserving, b.stopObserving)
	return b
}

func (b *buffered[E]) Value() []E {
	if b.conn == nil {
		return b.content.Value()
	}
	return slices.Clone(b.elems)
}

func (b *buffered[E]) Count() int {
	if b.conn == nil {
		return b.content.Count()
	}
	return len(b.elems)
}

func (b *buffered[E]) At(i int) E {
	if b.conn == nil {
		return b.content.At(i)
	}
	checkIndex(i, len(b.elems))
	return b.elems[i]
}

func (b *buffered[E]) Slice(from, to int) []E {
	if b.conn == nil {
		return b.content.Slice(from, to)
	}
	checkRange(from, to, len(b.elems))
	return slices.Clone(b.elems[from:to])
}

func (b *buffered[E]) IsBuffered() bool {
	return true
}

func (b *buffered[E]) Updates() Source[Update[ArrayChange[E]]] {
	return &b.tx
}

func (b *buffered[E]) startObserving() {
	b.elems = b.content.Value()
	b.conn = b.content.Updates().Connect(b.apply)
}

func (b *buffered[E]) stopObserving() {
	conn := b.conn
	conn.Disconnect()
	b.conn = nil
	b.elems = nil
	b.pending, b.hasPending = ArrayChange[E]{}, false
}

func (b *buffered[E]) apply(u Update[ArrayChange[E]]) {
	switch u.Kind {
	case BeginTransaction:
		b.tx.beginTransaction()
	case Changed:
		if b.hasPending {
			b.pending = b.pending.Merged(u.Change)
		} else {
			b.pending, b.hasPending = u.Change, true
		}
	case EndTransaction:
		if b.hasPending {
			c := b.pending
			b.pending, b.hasPending = ArrayChange[E]{}, false
			b.elems = c.Apply(b.elems)
			b.tx.sendChange(c)
		}
		b.tx.endTransaction()
	}
}
