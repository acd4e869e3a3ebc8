// Package client keeps a read-only mirror of the server's board.
//
// The mirror changes only when a board update arrives from the server; it
// is replaced wholesale. Local input never touches it: moves are sent to
// the server and show up once the server broadcasts the result.
package client

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"time"

	"github.com/nkornelsen/chess3d/internal/model"
	"github.com/nkornelsen/chess3d/internal/wire"
)

var ErrClosed = errors.New("connection closed")

type Client struct {
	conn    *wire.Conn
	mu      sync.Mutex
	board   *model.Board
	updates chan struct{}
	done    chan struct{}
	err     error
	once    sync.Once
}

// Dial connects to a server at addr (host:port).
func Dial(addr string, timeout time.Duration) (*Client, error) {
	c, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return New(c), nil
}

// New wraps an established connection. Call Run to start receiving.
func New(conn net.Conn) *Client {
	return &Client{
		conn:    wire.NewConn(conn),
		board:   model.NewBoard(),
		updates: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Run receives messages until the connection fails or the mirrored game
// stops running. It is meant to run on its own goroutine.
func (c *Client) Run() {
	for c.IsRunning() {
		msg, err := c.conn.Receive()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrClosed
			}
			c.finish(err)
			return
		}
		switch msg.Type {
		case wire.MessageTypeBoardUpdate:
			board, err := msg.BoardUpdate()
			if err != nil {
				c.finish(err)
				return
			}
			c.mu.Lock()
			c.board.Replace(board)
			c.mu.Unlock()
			c.notify()
			log.Printf("received board update")
		}
	}
	c.finish(nil)
}

// notify wakes the foreground without blocking. Pending wake-ups coalesce.
func (c *Client) notify() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}

func (c *Client) finish(err error) {
	c.once.Do(func() {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		close(c.done)
	})
}

// Board returns a copy of the mirrored board.
func (c *Client) Board() model.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.board
}

func (c *Client) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board.IsRunning()
}

// Submit asks the server to play m. The mirror is left alone.
func (c *Client) Submit(m model.Move) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	msg, err := wire.NewPlayerMove(m)
	if err != nil {
		return err
	}
	return c.conn.Send(msg)
}

// Updates signals every time the mirror has been replaced.
func (c *Client) Updates() <-chan struct{} {
	return c.updates
}

// Done is closed when Run returns.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err reports why Run stopped, or nil if it has not.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Client) Close() error {
	return c.conn.Close()
}
