package glue

import "math/rand/v2"

// indexNode is one parent element in an indexMap. Nodes are positioned
// implicitly by their place in the tree, so a node keeps its identity while
// elements are inserted and removed around it.
type indexNode struct {
	left, right, parent *indexNode

	prio    uint32
	size    int // nodes in this subtree
	count   int // visible nodes in this subtree
	visible bool
	elem    any
}

func newIndexNode(visible bool, elem any) *indexNode {
	n := &indexNode{prio: rand.Uint32(), size: 1, visible: visible, elem: elem}
	if visible {
		n.count = 1
	}
	return n
}

func sizeOf(n *indexNode) int {
	if n == nil {
		return 0
	}
	return n.size
}

func countOf(n *indexNode) int {
	if n == nil {
		return 0
	}
	return n.count
}

func (n *indexNode) self() int {
	if n.visible {
		return 1
	}
	return 0
}

func (n *indexNode) update() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
	n.count = n.self() + countOf(n.left) + countOf(n.right)
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}
}

// indexMap maps the indices of a parent array to the indices of the subset
// of its elements that are visible. It is a treap ordered by parent index
// whose subtrees know their size and visible count: rank, select, toggles
// and splices of k nodes run in O(log n) and O(k + log n) expected time.
type indexMap struct {
	root *indexNode
}

// newIndexMap builds a map over nodes, in parent order, in O(n).
func newIndexMap(nodes []*indexNode) *indexMap {
	return &indexMap{root: build(nodes)}
}

func build(nodes []*indexNode) *indexNode {
	var stack []*indexNode
	for _, x := range nodes {
		x.left, x.right, x.parent = nil, nil, nil
		var last *indexNode
		for len(stack) > 0 && stack[len(stack)-1].prio < x.prio {
			last = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		x.left = last
		if len(stack) > 0 {
			stack[len(stack)-1].right = x
		}
		stack = append(stack, x)
	}
	if len(stack) == 0 {
		return nil
	}
	root := stack[0]
	fixup(root)
	root.parent = nil
	return root
}

func fixup(n *indexNode) {
	if n == nil {
		return
	}
	fixup(n.left)
	fixup(n.right)
	n.update()
}

// split cuts t into its first k nodes and the rest.
func split(t *indexNode, k int) (*indexNode, *indexNode) {
	if t == nil {
		return nil, nil
	}
	if k <= sizeOf(t.left) {
		l, r := split(t.left, k)
		t.left = r
		t.update()
		return l, t
	}
	l, r := split(t.right, k-sizeOf(t.left)-1)
	t.right = l
	t.update()
	return t, r
}

func merge(a, b *indexNode) *indexNode {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.prio > b.prio:
		a.right = merge(a.right, b)
		a.update()
		return a
	default:
		b.left = merge(a, b.left)
		b.update()
		return b
	}
}

func detach(n *indexNode) *indexNode {
	if n != nil {
		n.parent = nil
	}
	return n
}

func (m *indexMap) len() int {
	return sizeOf(m.root)
}

func (m *indexMap) visibleCount() int {
	return countOf(m.root)
}

// rank returns the number of visible elements before parent index i.
func (m *indexMap) rank(i int) int {
	r := 0
	for n := m.root; n != nil; {
		if ls := sizeOf(n.left); i <= ls {
			n = n.left
		} else {
			r += countOf(n.left) + n.self()
			i -= ls + 1
			n = n.right
		}
	}
	return r
}

// rankOf returns the number of visible elements before n.
func (m *indexMap) rankOf(n *indexNode) int {
	r := countOf(n.left)
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.right {
			r += countOf(p.left) + p.self()
		}
	}
	return r
}

// positionOf returns the parent index of n.
func (m *indexMap) positionOf(n *indexNode) int {
	i := sizeOf(n.left)
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.right {
			i += sizeOf(p.left) + 1
		}
	}
	return i
}

// visibleAt returns the node of the k-th visible element.
func (m *indexMap) visibleAt(k int) *indexNode {
	n := m.root
	for n != nil {
		lc := countOf(n.left)
		switch {
		case k < lc:
			n = n.left
			continue
		case n.visible && k == lc:
			return n
		}
		k -= lc + n.self()
		n = n.right
	}
	return nil
}

// set changes the visibility of n. It reports the filtered index the
// element takes or gives up, and whether anything changed.
func (m *indexMap) set(n *indexNode, visible bool) (int, bool) {
	if n.visible == visible {
		return 0, false
	}
	at := m.rankOf(n)
	n.visible = visible
	for x := n; x != nil; x = x.parent {
		x.count = x.self() + countOf(x.left) + countOf(x.right)
	}
	return at, true
}

// splice replaces the remove nodes starting at parent index at with insert
// and returns the removed nodes in order.
func (m *indexMap) splice(at, remove int, insert []*indexNode) []*indexNode {
	l, rest := split(m.root, at)
	mid, r := split(detach(rest), remove)
	var removed []*indexNode
	walk(detach(mid), func(n *indexNode) {
		removed = append(removed, n)
	})
	m.root = detach(merge(merge(detach(l), build(insert)), detach(r)))
	return removed
}

// each calls fn for every node in parent order.
func (m *indexMap) each(fn func(n *indexNode)) {
	walk(m.root, fn)
}

func walk(n *indexNode, fn func(n *indexNode)) {
	for n != nil {
		walk(n.left, fn)
		fn(n)
		n = n.right
	}
}
