package transport

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/mt"
)

// ErrConnectionClosed is returned by I/O on a closed Conn.
var ErrConnectionClosed = errors.New("connection closed")

// Conn is one MT frame stream over a net.Conn. Reads and writes may run
// concurrently with each other; concurrent readers are serialized.
type Conn struct {
	conn   net.Conn
	framer *Framer
	connID string

	closeCh   chan struct{}
	closeOnce sync.Once
	readMu    sync.Mutex
}

// NewConn wraps c. Every frame crossing the connection is logged to logger
// when it is non-nil.
func NewConn(c net.Conn, logger log.Logger) *Conn {
	connID := uuid.New().String()
	framer := NewFramer(c)
	if logger != nil {
		framer.SetLogger(logger, connID)
	}
	return &Conn{
		conn:    c,
		framer:  framer,
		connID:  connID,
		closeCh: make(chan struct{}),
	}
}

// Pipe returns two connected in-memory Conns. Writes block until the peer
// reads them.
func Pipe(logger log.Logger) (*Conn, *Conn) {
	a, b := net.Pipe()
	return NewConn(a, logger), NewConn(b, logger)
}

// ConnID returns the unique connection identifier.
func (c *Conn) ConnID() string {
	return c.connID
}

// LocalAddr returns the local network address.
func (c *Conn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr returns the remote network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Done is closed once the connection is closed.
func (c *Conn) Done() <-chan struct{} {
	return c.closeCh
}

// ReadFrame blocks for the next encoded frame.
func (c *Conn) ReadFrame() ([]byte, error) {
	return c.Receive(0)
}

// Receive reads one frame, waiting at most timeout. A zero timeout waits
// until a frame arrives or the connection closes.
func (c *Conn) Receive(timeout time.Duration) ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	select {
	case <-c.closeCh:
		return nil, ErrConnectionClosed
	default:
	}

	if timeout > 0 {
		c.conn.SetReadDeadline(time.Now().Add(timeout))
		defer c.conn.SetReadDeadline(time.Time{})
	}

	data, err := c.framer.ReadFrame()
	if err != nil && c.closed() {
		return nil, ErrConnectionClosed
	}
	return data, err
}

// WriteFrame writes one encoded frame.
func (c *Conn) WriteFrame(data []byte) error {
	if c.closed() {
		return ErrConnectionClosed
	}
	return c.framer.WriteFrame(data)
}

// Send encodes and writes f.
func (c *Conn) Send(f mt.Frame) error {
	if c.closed() {
		return ErrConnectionClosed
	}
	return c.framer.WriteMessage(f)
}

// Close closes the connection. It is safe to call Close multiple times.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		err = c.conn.Close()
	})
	return err
}

func (c *Conn) closed() bool {
	select {
	case <-c.closeCh:
		return true
	default:
		return false
	}
}
