package wire

import (
	"fmt"
	"net"
	"sync"
	"time"
)

// Conn sends and receives framed messages over a stream connection.
// Send is safe for concurrent use; Receive must be called from a single
// goroutine.
type Conn struct {
	conn         net.Conn
	writeMu      sync.Mutex
	writeTimeout time.Duration
	maxFrameSize uint32
}

type ConnOption func(*Conn)

// WithWriteTimeout bounds every Send. Zero disables the deadline.
func WithWriteTimeout(d time.Duration) ConnOption {
	return func(c *Conn) { c.writeTimeout = d }
}

func WithMaxFrameSize(n uint32) ConnOption {
	return func(c *Conn) { c.maxFrameSize = n }
}

func NewConn(conn net.Conn, opts ...ConnOption) *Conn {
	c := &Conn{conn: conn, maxFrameSize: DefaultMaxFrameSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Conn) Send(m Message) error {
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.Type, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	}
	return WriteFrame(c.conn, data)
}

// Receive blocks until a whole frame has arrived and decodes it.
func (c *Conn) Receive() (Message, error) {
	data, err := ReadFrame(c.conn, c.maxFrameSize)
	if err != nil {
		return Message{}, err
	}
	return Decode(data)
}

func (c *Conn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *Conn) Close() error {
	return c.conn.Close()
}
