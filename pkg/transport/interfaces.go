package transport

import (
	"context"
	"net"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mt"
)

// Link is a bidirectional MT frame stream.
// Implemented by Conn.
type Link interface {
	// ReadFrame blocks for the next encoded frame.
	ReadFrame() ([]byte, error)

	// WriteFrame writes one encoded frame.
	WriteFrame(data []byte) error

	// Close closes the link and unblocks ReadFrame.
	Close() error
}

// HostConnection is the host's view of a bridge connection.
// Implemented by Conn.
type HostConnection interface {
	Link

	// Send encodes and writes a frame.
	Send(f mt.Frame) error

	// Receive reads one frame with the specified timeout.
	Receive(timeout time.Duration) ([]byte, error)

	// LocalAddr returns the local network address.
	LocalAddr() net.Addr

	// RemoteAddr returns the remote network address.
	RemoteAddr() net.Addr
}

// TransportServer represents a TCP-attached bridge listener.
// Implemented by Server.
type TransportServer interface {
	// Start begins accepting connections.
	Start(ctx context.Context) error

	// Stop closes the listener and every active connection.
	Stop() error

	// Addr returns the server's listen address.
	Addr() net.Addr

	// ConnectionCount returns the number of active connections.
	ConnectionCount() int
}

// FrameReadWriter provides MT frame I/O.
// Implemented by Framer.
type FrameReadWriter interface {
	ReadFrame() ([]byte, error)
	WriteFrame(data []byte) error
}

// Compile-time interface satisfaction checks.
var (
	_ Link            = (*Conn)(nil)
	_ HostConnection  = (*Conn)(nil)
	_ TransportServer = (*Server)(nil)
	_ FrameReadWriter = (*Framer)(nil)
)
