package glue

import mapset "github.com/deckarep/golang-set/v2"

// Connection is the handle of one subscription. Disconnect removes the sink
// from its source; once it returns the sink is never called again.
type Connection struct {
	release func()
}

func newConnection(release func()) *Connection {
	return &Connection{release: release}
}

// Disconnect releases the subscription. Calling it more than once is a no-op.
func (c *Connection) Disconnect() {
	if c == nil || c.release == nil {
		return
	}
	release := c.release
	c.release = nil
	release()
}

// IsConnected reports whether Disconnect has not been called yet.
func (c *Connection) IsConnected() bool {
	return c != nil && c.release != nil
}

// ConnectionBag owns a group of connections that are released together.
type ConnectionBag struct {
	conns mapset.Set[*Connection]
}

// Add puts c into the bag. Nil connections are ignored.
func (b *ConnectionBag) Add(c *Connection) {
	if c == nil {
		return
	}
	if b.conns == nil {
		b.conns = mapset.NewThreadUnsafeSet[*Connection]()
	}
	b.conns.Add(c)
}

// Len returns the number of connections held.
func (b *ConnectionBag) Len() int {
	if b.conns == nil {
		return 0
	}
	return b.conns.Cardinality()
}

// DisconnectAll disconnects every connection in the bag and empties it.
func (b *ConnectionBag) DisconnectAll() {
	if b.conns == nil {
		return
	}
	conns := b.conns.ToSlice()
	b.conns.Clear()
	for _, c := range conns {
		c.Disconnect()
	}
}
