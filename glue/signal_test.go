package glue_test

import (
	"testing"

	"github.com/delaneyj/gluekit/glue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleConnection(t *testing.T) {
	signal := glue.NewSignal[int]()
	signal.Send(1)

	var r []int
	c := signal.Connect(func(i int) { r = append(r, i) })

	signal.Send(2)
	signal.Send(3)
	signal.Send(4)

	c.Disconnect()
	signal.Send(5)

	assert.Equal(t, []int{2, 3, 4}, r)
}

func TestDuplicateDisconnect(t *testing.T) {
	signal := glue.NewSignal[int]()
	c := signal.Connect(func(int) {})
	require.True(t, c.IsConnected())

	c.Disconnect()
	c.Disconnect()
	assert.False(t, c.IsConnected())
	assert.False(t, signal.IsConnected())

	var nilConn *glue.Connection
	assert.NotPanics(t, nilConn.Disconnect)
}

func TestMultipleConnections(t *testing.T) {
	signal := glue.NewSignal[int]()
	signal.Send(1)

	var a []int
	c1 := signal.Connect(func(i int) { a = append(a, i) })
	signal.Send(2)

	var b []int
	c2 := signal.Connect(func(i int) { b = append(b, i) })
	signal.Send(3)
	assert.Equal(t, 2, signal.SinkCount())

	c1.Disconnect()
	signal.Send(4)

	c2.Disconnect()
	signal.Send(5)

	assert.Equal(t, []int{2, 3}, a)
	assert.Equal(t, []int{3, 4}, b)
}

func TestSinksAreCalledInRegistrationOrder(t *testing.T) {
	signal := glue.NewSignal[int]()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		signal.Connect(func(int) { order = append(order, name) })
	}
	signal.Send(1)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestAddingAConnectionInASink(t *testing.T) {
	signal := glue.NewSignal[int]()

	var v1, v2 []int
	var c2 *glue.Connection

	signal.Send(1)

	c1 := signal.Connect(func(i int) {
		v1 = append(v1, i)
		if c2 == nil {
			c2 = signal.Connect(func(i int) { v2 = append(v2, i) })
		}
	})
	assert.Nil(t, c2)

	signal.Send(2)
	assert.NotNil(t, c2)

	signal.Send(3)

	c1.Disconnect()
	c2.Disconnect()
	signal.Send(4)

	assert.Equal(t, []int{2, 3}, v1)
	assert.Equal(t, []int{3}, v2)
}

func TestRemovingConnectionWhileItIsBeingTriggered(t *testing.T) {
	signal := glue.NewSignal[int]()
	signal.Send(1)

	var r []int
	var c *glue.Connection
	c = signal.Connect(func(i int) {
		r = append(r, i)
		c.Disconnect()
	})

	signal.Send(2)
	signal.Send(3)
	signal.Send(4)

	assert.Equal(t, []int{2}, r)
}

func TestRemovingNextConnection(t *testing.T) {
	signal := glue.NewSignal[int]()
	var r []int
	var c1, c2 *glue.Connection

	signal.Send(0)

	// Once Disconnect returns the sink must not fire again, even when a
	// sink of the same dispatch is the one calling it.
	c1 = signal.Connect(func(i int) {
		r = append(r, i)
		c2.Disconnect()
	})
	c2 = signal.Connect(func(i int) {
		r = append(r, i)
		c1.Disconnect()
	})

	signal.Send(1)
	assert.True(t, c1.IsConnected() != c2.IsConnected())

	signal.Send(2)
	signal.Send(3)
	assert.True(t, c1.IsConnected() != c2.IsConnected())

	assert.Equal(t, []int{1, 2, 3}, r)
}

func TestRemovingAndReaddingConnectionsAlternately(t *testing.T) {
	signal := glue.NewSignal[int]()
	var r1, r2 []int
	var c1, c2 *glue.Connection
	var sink1, sink2 glue.Sink[int]

	sink1 = func(i int) {
		r1 = append(r1, i)
		c1.Disconnect()
		c2 = signal.Connect(sink2)
	}
	sink2 = func(i int) {
		r2 = append(r2, i)
		c2.Disconnect()
		c1 = signal.Connect(sink1)
	}

	c1 = signal.Connect(sink1)
	for i := 1; i <= 6; i++ {
		signal.Send(i)
	}

	assert.Equal(t, []int{1, 3, 5}, r1)
	assert.Equal(t, []int{2, 4, 6}, r2)
}

func TestSinkDisconnectingThenReconnectingItself(t *testing.T) {
	signal := glue.NewSignal[int]()
	var r []int
	var c *glue.Connection
	var sink glue.Sink[int]

	sink = func(i int) {
		r = append(r, i)
		c.Disconnect()
		c = signal.Connect(sink)
	}
	c = signal.Connect(sink)

	for i := 1; i <= 6; i++ {
		signal.Send(i)
	}
	c.Disconnect()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, r)
	assert.Equal(t, 0, signal.SinkCount())
}

func TestReentrantSendIsQueued(t *testing.T) {
	signal := glue.NewSignal[int]()
	var a, b []int

	signal.Connect(func(i int) {
		a = append(a, i)
		if i == 1 {
			signal.Send(2)
			signal.Send(3)
		}
	})
	signal.Connect(func(i int) { b = append(b, i) })

	signal.Send(1)

	// Both sinks see the original value before any queued one.
	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Equal(t, []int{1, 2, 3}, b)
}

func TestFirstAndLastConnectCallbacksAreCalled(t *testing.T) {
	first, last := 0, 0
	signal := glue.NewSignalWithHooks[int](func() { first++ }, func() { last++ })

	signal.Send(0)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)

	count := 0
	c := signal.Connect(func(int) { count++ })
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, last)
	assert.Equal(t, 0, count)

	signal.Send(1)
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, last)
	assert.Equal(t, 1, count)

	c.Disconnect()
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, last)

	signal.Send(2)
	assert.Equal(t, 1, count)
}

func TestFirstAndLastConnectCallbacksCanBeCalledMultipleTimes(t *testing.T) {
	first, last := 0, 0
	signal := glue.NewSignalWithHooks[int](func() { first++ }, func() { last++ })

	c1 := signal.Connect(func(int) {})
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, last)

	c1.Disconnect()
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, last)

	c2 := signal.Connect(func(int) {})
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, last)

	c2.Disconnect()
	assert.Equal(t, 2, first)
	assert.Equal(t, 2, last)
}

func TestHooksOnlyFireOnTransitions(t *testing.T) {
	first, last := 0, 0
	signal := glue.NewSignalWithHooks[int](func() { first++ }, func() { last++ })

	c1 := signal.Connect(func(int) {})
	c2 := signal.Connect(func(int) {})
	assert.Equal(t, 1, first)

	c1.Disconnect()
	assert.Equal(t, 0, last)
	c2.Disconnect()
	assert.Equal(t, 1, last)

	c3 := signal.Connect(func(int) {})
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, last)
	c3.Disconnect()
	assert.Equal(t, 2, last)
}

type tickerDelegate struct {
	starts, stops int
	signal        *glue.Signal[string]
}

func (d *tickerDelegate) Start(s *glue.Signal[string]) {
	d.starts++
	d.signal = s
}

func (d *tickerDelegate) Stop(*glue.Signal[string]) {
	d.stops++
	d.signal = nil
}

func TestSignalDelegate(t *testing.T) {
	d := &tickerDelegate{}
	signal := glue.NewSignalWithDelegate[string](d)
	assert.Nil(t, d.signal)

	var got []string
	c := signal.Connect(func(s string) { got = append(got, s) })
	require.NotNil(t, d.signal)
	d.signal.Send("tick")
	d.signal.Send("tock")

	c.Disconnect()
	assert.Nil(t, d.signal)
	assert.Equal(t, 1, d.starts)
	assert.Equal(t, 1, d.stops)
	assert.Equal(t, []string{"tick", "tock"}, got)
}

func TestNewSource(t *testing.T) {
	var push func(int)
	stopped := false
	src := glue.NewSource(func(send func(int)) { push = send }, func() { stopped = true })
	assert.Nil(t, push)

	var got []int
	c := src.Connect(func(i int) { got = append(got, i) })
	require.NotNil(t, push)
	push(7)
	push(8)
	c.Disconnect()

	assert.True(t, stopped)
	assert.Equal(t, []int{7, 8}, got)
}

func TestSourceStartCanReplayToFirstSink(t *testing.T) {
	src := glue.NewSource(func(send func(string)) { send("current") }, nil)

	var first, second []string
	c1 := src.Connect(func(s string) { first = append(first, s) })
	c2 := src.Connect(func(s string) { second = append(second, s) })
	assert.Equal(t, []string{"current"}, first)
	assert.Empty(t, second)

	c1.Disconnect()
	c2.Disconnect()
	c3 := src.Connect(func(s string) { second = append(second, s) })
	defer c3.Disconnect()
	assert.Equal(t, []string{"current"}, second)
}

func TestDisconnectingLargeFanOut(t *testing.T) {
	const n = 10_000
	stops := 0
	signal := glue.NewSignalWithHooks[int](nil, func() { stops++ })

	var got []int
	conns := make([]*glue.Connection, n)
	for i := range conns {
		id := i
		conns[i] = signal.Connect(func(int) { got = append(got, id) })
	}

	// Drop every odd sink, then the first quarter, leaving the list partly
	// compacted along the way.
	for i := 1; i < n; i += 2 {
		conns[i].Disconnect()
	}
	for i := 0; i < n/4; i += 2 {
		conns[i].Disconnect()
	}
	var want []int
	for i := n / 4; i < n; i += 2 {
		want = append(want, i)
	}
	assert.Equal(t, len(want), signal.SinkCount())

	signal.Send(1)
	assert.Equal(t, want, got)

	got = nil
	late := signal.Connect(func(int) { got = append(got, -1) })
	signal.Send(2)
	assert.Equal(t, append(want, -1), got)

	late.Disconnect()
	for _, c := range conns {
		c.Disconnect()
	}
	assert.Equal(t, 0, signal.SinkCount())
	assert.False(t, signal.IsConnected())
	assert.Equal(t, 1, stops)

	got = nil
	signal.Send(3)
	assert.Empty(t, got)
}

func TestConnectionBag(t *testing.T) {
	signal := glue.NewSignal[int]()
	var bag glue.ConnectionBag
	assert.Equal(t, 0, bag.Len())

	count := 0
	for i := 0; i < 3; i++ {
		bag.Add(signal.Connect(func(int) { count++ }))
	}
	bag.Add(nil)
	assert.Equal(t, 3, bag.Len())

	signal.Send(1)
	assert.Equal(t, 3, count)

	bag.DisconnectAll()
	assert.Equal(t, 0, bag.Len())
	assert.False(t, signal.IsConnected())

	signal.Send(2)
	assert.Equal(t, 3, count)
}
