package glue

// TestChange records every value an observable went through.
type TestChange struct {
	Values []int
}

func NewTestChange(values ...int) TestChange {
	return TestChange{Values: values}
}

func (c TestChange) IsEmpty() bool {
	return false
}

func (c TestChange) Merged(next TestChange) TestChange {
	values := append([]int(nil), c.Values...)
	return TestChange{Values: append(values, next.Values[1:]...)}
}

// TestObservable exposes the transaction hooks of an observable directly.
type TestObservable struct {
	tx    transactional[TestChange]
	value int
}

func NewTestObservable(v int) *TestObservable {
	o := &TestObservable{value: v}
	o.tx.init("test", nil, nil)
	return o
}

func (o *TestObservable) Value() int {
	return o.value
}

func (o *TestObservable) SetValue(v int) {
	o.tx.beginTransaction()
	old := o.value
	o.value = v
	o.tx.sendChange(NewTestChange(old, v))
	o.tx.endTransaction()
}

func (o *TestObservable) Begin() {
	o.tx.beginTransaction()
}

func (o *TestObservable) End() {
	o.tx.endTransaction()
}

func (o *TestObservable) IsConnected() bool {
	return o.tx.isObserved()
}

func (o *TestObservable) IsInTransaction() bool {
	return o.tx.isInTransaction()
}

func (o *TestObservable) Updates() Source[Update[TestChange]] {
	return &o.tx
}

func (o *TestObservable) Changes() Source[TestChange] {
	return Changes[TestChange](&o.tx)
}

// IndexMap wraps indexMap so tests can compare it with a linear scan.
type IndexMap struct {
	m *indexMap
}

func indexNodes(visible []bool) []*indexNode {
	nodes := make([]*indexNode, len(visible))
	for i, v := range visible {
		nodes[i] = newIndexNode(v, i)
	}
	return nodes
}

func NewIndexMap(visible []bool) IndexMap {
	return IndexMap{m: newIndexMap(indexNodes(visible))}
}

func (m IndexMap) Len() int {
	return m.m.len()
}

func (m IndexMap) Count() int {
	return m.m.visibleCount()
}

func (m IndexMap) Rank(i int) int {
	return m.m.rank(i)
}

func (m IndexMap) ParentIndex(k int) int {
	return m.m.positionOf(m.m.visibleAt(k))
}

func (m IndexMap) nodeAt(i int) *indexNode {
	var found *indexNode
	k := 0
	m.m.each(func(n *indexNode) {
		if k == i {
			found = n
		}
		k++
	})
	return found
}

func (m IndexMap) Set(i int, visible bool) (int, bool) {
	return m.m.set(m.nodeAt(i), visible)
}

// Splice replaces remove elements at parent index at and returns the
// visibility of the removed ones.
func (m IndexMap) Splice(at, remove int, insert []bool) []bool {
	var out []bool
	for _, n := range m.m.splice(at, remove, indexNodes(insert)) {
		out = append(out, n.visible)
	}
	return out
}

// Positions returns the parent index every node computes for itself,
// in parent order.
func (m IndexMap) Positions() []int {
	var out []int
	m.m.each(func(n *indexNode) {
		out = append(out, m.m.positionOf(n))
	})
	return out
}

// Visible returns the visibility bits in parent order.
func (m IndexMap) Visible() []bool {
	var out []bool
	m.m.each(func(n *indexNode) {
		out = append(out, n.visible)
	})
	return out
}
