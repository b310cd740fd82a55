package glue

type filterElement[E any] struct {
	elem E
	node *indexNode
	conn *Connection
}

func elementOf[E any](n *indexNode) *filterElement[E] {
	return n.elem.(*filterElement[E])
}

// filter keeps the elements of parent whose test is true. While observed it
// holds one subscription per parent element and an indexMap from parent to
// filtered indices, so a predicate flip costs O(log n) and a parent
// modification of k elements costs O(k + log n).
type filter[E any] struct {
	tx     transactional[ArrayChange[E]]
	parent ObservableArray[E]
	test   func(E) ObservableValue[bool]

	parentConn *Connection
	index      *indexMap
}

// Filter returns the elements of parent for which test currently holds, in
// parent order. The observable returned by test is watched for as long as
// its element stays in parent.
func Filter[E any](parent ObservableArray[E], test func(E) ObservableValue[bool]) ObservableArray[E] {
	f := &filter[E]{parent: parent, test: test}
	f.tx.init("filter", f.startObserving, f.stopObserving)
	return f
}

// FilterFunc is Filter with a predicate that never changes its mind.
func FilterFunc[E any](parent ObservableArray[E], pred func(E) bool) ObservableArray[E] {
	return Filter(parent, func(e E) ObservableValue[bool] {
		return Constant(pred(e))
	})
}

func (f *filter[E]) observed() bool {
	return f.index != nil
}

func (f *filter[E]) Value() []E {
	if !f.observed() {
		var out []E
		for _, e := range f.parent.Value() {
			if f.test(e).Value() {
				out = append(out, e)
			}
		}
		return out
	}
	out := make([]E, 0, f.index.visibleCount())
	f.index.each(func(n *indexNode) {
		if n.visible {
			out = append(out, elementOf[E](n).elem)
		}
	})
	return out
}

func (f *filter[E]) Count() int {
	if !f.observed() {
		return len(f.Value())
	}
	return f.index.visibleCount()
}

func (f *filter[E]) At(i int) E {
	if !f.observed() {
		v := f.Value()
		checkIndex(i, len(v))
		return v[i]
	}
	checkIndex(i, f.index.visibleCount())
	return elementOf[E](f.index.visibleAt(i)).elem
}

func (f *filter[E]) Slice(from, to int) []E {
	if !f.observed() {
		v := f.Value()
		checkRange(from, to, len(v))
		return v[from:to]
	}
	checkRange(from, to, f.index.visibleCount())
	out := make([]E, 0, to-from)
	for k := from; k < to; k++ {
		out = append(out, elementOf[E](f.index.visibleAt(k)).elem)
	}
	return out
}

func (f *filter[E]) IsBuffered() bool {
	return false
}

func (f *filter[E]) Updates() Source[Update[ArrayChange[E]]] {
	return &f.tx
}

func (f *filter[E]) startObserving() {
	elems := f.parent.Value()
	nodes := make([]*indexNode, len(elems))
	for i, e := range elems {
		nodes[i] = f.watch(e)
	}
	f.index = newIndexMap(nodes)
	f.parentConn = f.parent.Updates().Connect(f.applyParent)
}

func (f *filter[E]) stopObserving() {
	f.parentConn.Disconnect()
	f.parentConn = nil
	f.index.each(func(n *indexNode) {
		elementOf[E](n).conn.Disconnect()
	})
	f.index = nil
}

// watch subscribes to the test of e and returns the index node holding e,
// marked with its current visibility.
func (f *filter[E]) watch(e E) *indexNode {
	el := &filterElement[E]{elem: e}
	test := f.test(e)
	el.node = newIndexNode(test.Value(), el)
	el.conn = test.Updates().Connect(func(u Update[ValueChange[bool]]) {
		f.applyElement(el, u)
	})
	return el.node
}

func (f *filter[E]) applyElement(el *filterElement[E], u Update[ValueChange[bool]]) {
	switch u.Kind {
	case BeginTransaction:
		f.tx.beginTransaction()
	case Changed:
		before := f.index.visibleCount()
		at, changed := f.index.set(el.node, u.Change.New)
		if !changed {
			return
		}
		var m ArrayModification[E]
		if u.Change.New {
			m = InsertAt(el.elem, at)
		} else {
			m = RemoveAt(el.elem, at)
		}
		f.tx.sendChange(NewArrayChange(before, m))
	case EndTransaction:
		f.tx.endTransaction()
	}
}

func (f *filter[E]) applyParent(u Update[ArrayChange[E]]) {
	switch u.Kind {
	case BeginTransaction:
		f.tx.beginTransaction()
	case Changed:
		f.tx.sendChange(f.translate(u.Change))
	case EndTransaction:
		f.tx.endTransaction()
	}
}

// translate applies a parent change to the element subscriptions and the
// index map and returns the matching change of the filtered array. The
// modifications are in sequential coordinates, so each one is spliced into
// the index map as it stands after the previous ones.
func (f *filter[E]) translate(c ArrayChange[E]) ArrayChange[E] {
	out := NewArrayChange[E](f.index.visibleCount())
	for _, m := range c.Modifications() {
		at := f.index.rank(m.At)

		nodes := make([]*indexNode, len(m.New))
		var inserted []E
		for k, e := range m.New {
			nodes[k] = f.watch(e)
			if nodes[k].visible {
				inserted = append(inserted, e)
			}
		}
		var removed []E
		for _, n := range f.index.splice(m.At, len(m.Old), nodes) {
			el := elementOf[E](n)
			el.conn.Disconnect()
			if n.visible {
				removed = append(removed, el.elem)
			}
		}

		out.Add(ReplaceSlice(removed, at, inserted))
	}
	return out
}
