package glue

import "go.uber.org/zap"

// ObservableArray is an observable whose changes are ArrayChange diffs.
type ObservableArray[E any] interface {
	// Value returns a copy of the current elements.
	Value() []E
	Count() int
	At(i int) E
	// Slice returns a copy of the elements in [from, to).
	Slice(from, to int) []E
	// IsBuffered reports whether the array keeps its own materialized copy,
	// so that reads during a transaction show the state before it.
	IsBuffered() bool
	Updates() Source[Update[ArrayChange[E]]]
}

// ArrayChanges returns the completed changes of a.
func ArrayChanges[E any](a ObservableArray[E]) Source[ArrayChange[E]] {
	return Changes(a.Updates())
}

func checkIndex(i, count int) {
	if i < 0 || i >= count {
		defect("index out of range", zap.Int("index", i), zap.Int("count", count))
	}
}

func checkRange(from, to, count int) {
	if from < 0 || from > to || to > count {
		defect("range out of bounds", zap.Int("from", from), zap.Int("to", to), zap.Int("count", count))
	}
}
