package glue

import (
	"slices"

	"go.uber.org/zap"
)

// ArrayVariable is a source array.
type ArrayVariable[E any] struct {
	tx    transactional[ArrayChange[E]]
	value []E
}

func NewArrayVariable[E any](elems ...E) *ArrayVariable[E] {
	a := &ArrayVariable[E]{value: slices.Clone(elems)}
	a.tx.init("array-variable", nil, nil)
	return a
}

func (a *ArrayVariable[E]) Value() []E {
	return slices.Clone(a.value)
}

func (a *ArrayVariable[E]) Count() int {
	return len(a.value)
}

func (a *ArrayVariable[E]) At(i int) E {
	checkIndex(i, len(a.value))
	return a.value[i]
}

func (a *ArrayVariable[E]) Slice(from, to int) []E {
	checkRange(from, to, len(a.value))
	return slices.Clone(a.value[from:to])
}

func (a *ArrayVariable[E]) IsBuffered() bool {
	return true
}

func (a *ArrayVariable[E]) Updates() Source[Update[ArrayChange[E]]] {
	return &a.tx
}

func (a *ArrayVariable[E]) Changes() Source[ArrayChange[E]] {
	return Changes[ArrayChange[E]](&a.tx)
}

// IsObserved reports whether any sink is connected to the update stream.
func (a *ArrayVariable[E]) IsObserved() bool {
	return a.tx.isObserved()
}

// Apply applies change, which must start from the current count.
func (a *ArrayVariable[E]) Apply(change ArrayChange[E]) {
	if change.InitialCount() != len(a.value) {
		defect("array change does not match the array",
			zap.Int("count", len(a.value)), zap.Int("initial", change.InitialCount()))
	}
	if change.IsEmpty() {
		return
	}
	a.tx.beginTransaction()
	a.value = change.Apply(a.value)
	a.tx.sendChange(change)
	a.tx.endTransaction()
}

func (a *ArrayVariable[E]) modify(m ArrayModification[E]) {
	a.Apply(NewArrayChange(len(a.value), m))
}

// SetValue replaces every element.
func (a *ArrayVariable[E]) SetValue(elems []E) {
	a.modify(ReplaceSlice(slices.Clone(a.value), 0, slices.Clone(elems)))
}

func (a *ArrayVariable[E]) Insert(e E, at int) {
	checkRange(at, at, len(a.value))
	a.modify(InsertAt(e, at))
}

func (a *ArrayVariable[E]) Append(elems ...E) {
	a.modify(ReplaceSlice(nil, len(a.value), slices.Clone(elems)))
}

// RemoveAt removes and returns the element at index i.
func (a *ArrayVariable[E]) RemoveAt(i int) E {
	checkIndex(i, len(a.value))
	old := a.value[i]
	a.modify(RemoveAt(old, i))
	return old
}

// ReplaceAt sets the element at index i.
func (a *ArrayVariable[E]) ReplaceAt(i int, e E) {
	checkIndex(i, len(a.value))
	a.modify(ReplaceAt(a.value[i], i, e))
}

// ReplaceRange replaces the elements in [from, to) with elems.
func (a *ArrayVariable[E]) ReplaceRange(from, to int, elems ...E) {
	checkRange(from, to, len(a.value))
	a.modify(ReplaceSlice(slices.Clone(a.value[from:to]), from, slices.Clone(elems)))
}

func (a *ArrayVariable[E]) WithTransaction(body func()) {
	a.tx.withTransaction(body)
}
