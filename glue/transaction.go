package glue

import "go.uber.org/zap"

// UpdateKind tells the three stages of the transaction protocol apart.
type UpdateKind uint8

const (
	BeginTransaction UpdateKind = iota
	Changed
	EndTransaction
)

func (k UpdateKind) String() string {
	switch k {
	case BeginTransaction:
		return "beginTransaction"
	case Changed:
		return "change"
	case EndTransaction:
		return "endTransaction"
	default:
		return "unknown"
	}
}

// Update is one event on an observable's update stream. Change is only set
// when Kind is Changed.
type Update[C any] struct {
	Kind   UpdateKind
	Change C
}

func BeginUpdate[C any]() Update[C] {
	return Update[C]{Kind: BeginTransaction}
}

func ChangeUpdate[C any](c C) Update[C] {
	return Update[C]{Kind: Changed, Change: c}
}

func EndUpdate[C any]() Update[C] {
	return Update[C]{Kind: EndTransaction}
}

// Change is a payload that can be merged with the change that follows it.
// Merging must be associative.
type Change[C any] interface {
	IsEmpty() bool
	Merged(next C) C
}

// transactional is the update stream of one observable. It keeps the
// nesting depth, forwards only the outermost begin/end, and makes sure every
// sink sees a balanced protocol even when it joins or leaves while a
// transaction is open.
type transactional[C Change[C]] struct {
	kind   string
	signal *Signal[Update[C]]
	depth  int

	start func()
	stop  func()
}

func (t *transactional[C]) init(kind string, start, stop func()) {
	t.kind = kind
	t.start = start
	t.stop = stop
	t.signal = NewSignalWithHooks[Update[C]](t.activate, t.deactivate)
}

func (t *transactional[C]) activate() {
	logger.Debug("observing started", zap.String("kind", t.kind))
	if t.start != nil {
		t.start()
	}
}

func (t *transactional[C]) deactivate() {
	if t.stop != nil {
		t.stop()
	}
	logger.Debug("observing stopped", zap.String("kind", t.kind))
}

// transactionSink filters one sink's view of the stream down to a balanced
// begin/change/end sequence.
type transactionSink[C any] struct {
	sink Sink[Update[C]]
	open bool
}

func (ts *transactionSink[C]) receive(u Update[C]) {
	switch u.Kind {
	case BeginTransaction:
		if ts.open {
			return
		}
		ts.open = true
	case EndTransaction:
		if !ts.open {
			return
		}
		ts.open = false
	default:
		if !ts.open {
			return
		}
	}
	ts.sink(u)
}

// Connect subscribes sink to the update stream. A sink that joins during a
// transaction gets a begin right away; a sink that leaves during one gets
// the matching end while it is being disconnected.
func (t *transactional[C]) Connect(sink Sink[Update[C]]) *Connection {
	ts := &transactionSink[C]{sink: sink}
	conn := t.signal.Connect(ts.receive)
	if t.depth > 0 {
		ts.receive(BeginUpdate[C]())
	}
	return newConnection(func() {
		conn.Disconnect()
		if ts.open {
			ts.open = false
			sink(EndUpdate[C]())
		}
	})
}

func (t *transactional[C]) isObserved() bool {
	return t.signal.IsConnected()
}

func (t *transactional[C]) isInTransaction() bool {
	return t.depth > 0
}

func (t *transactional[C]) beginTransaction() {
	t.depth++
	if t.depth == 1 {
		t.signal.Send(BeginUpdate[C]())
	}
}

func (t *transactional[C]) sendChange(c C) {
	if t.depth == 0 {
		defect("change sent outside of a transaction", zap.String("kind", t.kind))
	}
	if c.IsEmpty() {
		return
	}
	t.signal.Send(ChangeUpdate(c))
}

func (t *transactional[C]) endTransaction() {
	if t.depth == 0 {
		defect("unbalanced endTransaction", zap.String("kind", t.kind))
	}
	t.depth--
	if t.depth == 0 {
		t.signal.Send(EndUpdate[C]())
	}
}

func (t *transactional[C]) withTransaction(body func()) {
	t.beginTransaction()
	body()
	t.endTransaction()
}

type changesSource[C Change[C]] struct {
	updates Source[Update[C]]
}

// Changes turns an update stream into a stream of completed changes: each
// sink gets one merged change per transaction, counted from the moment it
// connected. A sink that disconnects in the middle of a transaction receives
// whatever it had accumulated so far. Empty changes are dropped.
func Changes[C Change[C]](updates Source[Update[C]]) Source[C] {
	return changesSource[C]{updates: updates}
}

func (s changesSource[C]) Connect(sink Sink[C]) *Connection {
	var (
		pending C
		has     bool
	)
	return s.updates.Connect(func(u Update[C]) {
		switch u.Kind {
		case Changed:
			if has {
				pending = pending.Merged(u.Change)
			} else {
				pending, has = u.Change, true
			}
		case EndTransaction:
			if !has {
				return
			}
			c := pending
			var zero C
			pending, has = zero, false
			if !c.IsEmpty() {
				sink(c)
			}
		}
	})
}

// Subscribe connects sink to the completed changes of updates.
func Subscribe[C Change[C]](updates Source[Update[C]], sink Sink[C]) *Connection {
	return Changes(updates).Connect(sink)
}
