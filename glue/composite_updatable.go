package glue

// Pair is the value of an updatable composite of two sources.
type Pair[A, B any] struct {
	First  A
	Second B
}

func pairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

type compositeUpdatable[A, B any] struct {
	tx    transactional[ValueChange[Pair[A, B]]]
	left  UpdatableValue[A]
	right UpdatableValue[B]

	active    bool
	latest    Pair[A, B]
	leftConn  *Connection
	rightConn *Connection
}

// CombineUpdatables returns an updatable pair of left and right. Setting
// the pair writes both components inside one combined transaction, so
// observers of the composite see a single change.
func CombineUpdatables[A, B any](left UpdatableValue[A], right UpdatableValue[B]) UpdatableValue[Pair[A, B]] {
	c := &compositeUpdatable[A, B]{left: left, right: right}
	c.tx.init("composite-updatable", c.startObserving, c.stopObserving)
	return c
}

func (c *compositeUpdatable[A, B]) Value() Pair[A, B] {
	if c.active {
		return c.latest
	}
	return Pair[A, B]{First: c.left.Value(), Second: c.right.Value()}
}

func (c *compositeUpdatable[A, B]) SetValue(v Pair[A, B]) {
	c.tx.beginTransaction()
	c.left.WithTransaction(func() {
		c.left.SetValue(v.First)
		c.right.WithTransaction(func() {
			c.right.SetValue(v.Second)
		})
	})
	c.tx.endTransaction()
}

func (c *compositeUpdatable[A, B]) WithTransaction(body func()) {
	c.tx.withTransaction(body)
}

func (c *compositeUpdatable[A, B]) Updates() Source[Update[ValueChange[Pair[A, B]]]] {
	return &c.tx
}

func (c *compositeUpdatable[A, B]) startObserving() {
	c.latest = Pair[A, B]{First: c.left.Value(), Second: c.right.Value()}
	c.active = true
	c.leftConn = c.left.Updates().Connect(c.applyLeft)
	c.rightConn = c.right.Updates().Connect(c.applyRight)
}

func (c *compositeUpdatable[A, B]) stopObserving() {
	c.leftConn.Disconnect()
	c.rightConn.Disconnect()
	c.leftConn, c.rightConn = nil, nil
	c.active = false
	c.latest = Pair[A, B]{}
}

func (c *compositeUpdatable[A, B]) applyLeft(u Update[ValueChange[A]]) {
	switch u.Kind {
	case BeginTransaction:
		c.tx.beginTransaction()
	case Changed:
		old := c.latest
		c.latest.First = u.Change.New
		c.tx.sendChange(ValueChange[Pair[A, B]]{Old: old, New: c.latest})
	case EndTransaction:
		c.tx.endTransaction()
	}
}

func (c *compositeUpdatable[A, B]) applyRight(u Update[ValueChange[B]]) {
	switch u.Kind {
	case BeginTransaction:
		c.tx.beginTransaction()
	case Changed:
		old := c.latest
		c.latest.Second = u.Change.New
		c.tx.sendChange(ValueChange[Pair[A, B]]{Old: old, New: c.latest})
	case EndTransaction:
		c.tx.endTransaction()
	}
}
