// Package glue is a synchronous reactive core: signals with reentrancy-safe
// sink lists, a begin/change/end transaction protocol, observable values and
// arrays, and derived observables that attach to their upstream only while
// somebody is watching them.
package glue

// Sink receives the values sent by a Source.
type Sink[T any] func(T)

// Source is anything sinks can connect to.
type Source[T any] interface {
	Connect(sink Sink[T]) *Connection
}

// SignalDelegate adapts an external event producer to a Signal. Start is
// called when the first sink connects and Stop after the last one leaves.
// Values Start sends synchronously reach that first sink.
type SignalDelegate[T any] interface {
	Start(s *Signal[T])
	Stop(s *Signal[T])
}

type sinkEntry[T any] struct {
	sink  Sink[T]
	alive bool
}

// Signal dispatches values to an ordered list of sinks.
//
// Sinks may connect and disconnect any sink, themselves included, while a
// dispatch is in progress: a sink connected during a dispatch only receives
// later values, a sink disconnected during a dispatch is skipped for the rest
// of it. A Send issued from inside a sink is queued and delivered once the
// current dispatch has finished, so all sinks see values in send order.
type Signal[T any] struct {
	entries []*sinkEntry[T]
	live    int
	dead    int // disconnected entries still in entries
	sending bool
	queue   []T

	didConnectFirst   func()
	didDisconnectLast func()
}

// NewSignal returns a signal without lifecycle hooks.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{}
}

// NewSignalWithHooks returns a signal that calls first on every 0→1
// transition of its sink count and last on every 1→0 transition.
func NewSignalWithHooks[T any](first, last func()) *Signal[T] {
	return &Signal[T]{
		didConnectFirst:   first,
		didDisconnectLast: last,
	}
}

// NewSignalWithDelegate returns a signal that starts and stops d as sinks
// come and go.
func NewSignalWithDelegate[T any](d SignalDelegate[T]) *Signal[T] {
	s := &Signal[T]{}
	s.didConnectFirst = func() { d.Start(s) }
	s.didDisconnectLast = func() { d.Stop(s) }
	return s
}

// Connect registers sink. When sink is the first one, the first-sink hook
// runs after sink is registered, so values the hook sends synchronously
// reach it.
func (s *Signal[T]) Connect(sink Sink[T]) *Connection {
	e := &sinkEntry[T]{sink: sink, alive: true}
	s.entries = append(s.entries, e)
	s.live++
	if s.live == 1 && s.didConnectFirst != nil {
		s.didConnectFirst()
	}
	return newConnection(func() {
		s.remove(e)
	})
}

func (s *Signal[T]) remove(e *sinkEntry[T]) {
	if !e.alive {
		return
	}
	e.alive = false
	e.sink = nil
	s.live--
	s.dead++
	if !s.sending {
		s.maybeCompact()
	}
	if s.live == 0 && s.didDisconnectLast != nil {
		s.didDisconnectLast()
	}
}

// maybeCompact drops dead entries once they make up more than half of the
// list, which keeps n disconnects at O(n) overall.
func (s *Signal[T]) maybeCompact() {
	if s.dead*2 > len(s.entries) {
		s.compact()
	}
}

func (s *Signal[T]) compact() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if e.alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = live
	s.dead = 0
}

// Send delivers v to every sink that is connected when the dispatch starts.
func (s *Signal[T]) Send(v T) {
	if s.sending {
		s.queue = append(s.queue, v)
		return
	}
	s.sending = true
	for {
		n := len(s.entries)
		for i := 0; i < n; i++ {
			if e := s.entries[i]; e.alive {
				e.sink(v)
			}
		}
		if len(s.queue) == 0 {
			break
		}
		v = s.queue[0]
		var zero T
		s.queue[0] = zero
		s.queue = s.queue[1:]
	}
	s.queue = nil
	s.sending = false
	s.maybeCompact()
}

// SinkCount returns the number of connected sinks.
func (s *Signal[T]) SinkCount() int {
	return s.live
}

// IsConnected reports whether at least one sink is connected.
func (s *Signal[T]) IsConnected() bool {
	return s.live > 0
}

type funcDelegate[T any] struct {
	start func(send func(T))
	stop  func()
}

func (d funcDelegate[T]) Start(s *Signal[T]) {
	if d.start != nil {
		d.start(s.Send)
	}
}

func (d funcDelegate[T]) Stop(*Signal[T]) {
	if d.stop != nil {
		d.stop()
	}
}

// NewSource wraps an external producer. start receives the function to push
// values with and runs when the first sink connects; stop runs when the last
// sink disconnects.
func NewSource[T any](start func(send func(T)), stop func()) Source[T] {
	return NewSignalWithDelegate[T](funcDelegate[T]{start: start, stop: stop})
}
