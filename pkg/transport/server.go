package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
)

// DefaultPort is the default TCP port of a network-attached bridge.
const DefaultPort = 2560

// ErrTooManyConnections is reported through OnError when a connection is
// refused because MaxConnections are already active.
var ErrTooManyConnections = errors.New("too many connections")

// Handler serves one connection. The connection is closed when it returns.
// ctx is cancelled when the server stops.
type Handler func(ctx context.Context, conn *Conn)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Address to listen on (e.g., ":2560" or "127.0.0.1:0").
	Address string

	// MaxConnections caps concurrent connections (default: 1).
	MaxConnections int

	// Logger for protocol logging (optional).
	Logger log.Logger

	// Handler serves each accepted connection. Required.
	Handler Handler

	// OnError is called when an error occurs. conn may be nil.
	OnError func(conn *Conn, err error)
}

// Server accepts host connections for a TCP-attached bridge.
type Server struct {
	config   ServerConfig
	listener net.Listener

	conns   map[*Conn]struct{}
	connsMu sync.RWMutex

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewServer creates a new server.
func NewServer(config ServerConfig) (*Server, error) {
	if config.Handler == nil {
		return nil, fmt.Errorf("Handler is required")
	}
	if config.Address == "" {
		config.Address = fmt.Sprintf(":%d", DefaultPort)
	}
	if config.MaxConnections <= 0 {
		config.MaxConnections = 1
	}
	return &Server{
		config: config,
		conns:  make(map[*Conn]struct{}),
	}, nil
}

// Start starts listening and accepting connections.
func (s *Server) Start(ctx context.Context) error {
	if s.running.Load() {
		return fmt.Errorf("server already running")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	lc := net.ListenConfig{KeepAlive: 30 * time.Second}
	listener, err := lc.Listen(s.ctx, "tcp", s.config.Address)
	if err != nil {
		s.cancel()
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener
	s.running.Store(true)

	s.wg.Add(1)
	go s.acceptLoop()

	return nil
}

// Stop stops the server, closes all connections and waits for handlers.
func (s *Server) Stop() error {
	if !s.running.Swap(false) {
		return nil
	}
	s.cancel()

	if s.listener != nil {
		s.listener.Close()
	}

	s.connsMu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.connsMu.Unlock()

	s.wg.Wait()
	return nil
}

// Addr returns the server's listen address.
func (s *Server) Addr() net.Addr {
	if s.listener != nil {
		return s.listener.Addr()
	}
	return nil
}

// ConnectionCount returns the number of active connections.
func (s *Server) ConnectionCount() int {
	s.connsMu.RLock()
	defer s.connsMu.RUnlock()
	return len(s.conns)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() {
				return
			}
			s.reportError(nil, fmt.Errorf("accept error: %w", err))
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(nc net.Conn) {
	defer s.wg.Done()

	conn := NewConn(nc, s.config.Logger)

	s.connsMu.Lock()
	if len(s.conns) >= s.config.MaxConnections {
		s.connsMu.Unlock()
		s.logState(conn, "", "REJECTED")
		conn.Close()
		s.reportError(conn, ErrTooManyConnections)
		return
	}
	s.conns[conn] = struct{}{}
	s.connsMu.Unlock()

	s.logState(conn, "", "CONNECTED")

	s.config.Handler(s.ctx, conn)
	conn.Close()

	s.connsMu.Lock()
	delete(s.conns, conn)
	s.connsMu.Unlock()

	s.logState(conn, "CONNECTED", "DISCONNECTED")
}

func (s *Server) logState(conn *Conn, oldState, newState string) {
	if s.config.Logger == nil {
		return
	}
	s.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: conn.ConnID(),
		Layer:        log.LayerTransport,
		Category:     log.CategoryState,
		LocalRole:    log.RoleBridge,
		RemoteAddr:   conn.RemoteAddr().String(),
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityConnection,
			OldState: oldState,
			NewState: newState,
		},
	})
}

func (s *Server) reportError(conn *Conn, err error) {
	if s.config.OnError != nil {
		s.config.OnError(conn, err)
	}
}
