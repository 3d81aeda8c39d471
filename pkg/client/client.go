package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/fragment"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/transport"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Client errors.
var (
	ErrRequestTimeout  = errors.New("request timed out")
	ErrClientClosed    = errors.New("client is closed")
	ErrNotRequest      = errors.New("frame is not an SREQ")
	ErrShortResponse   = errors.New("response too short")
	ErrFragmentAborted = errors.New("fragmented request aborted")
	ErrLinkLost        = errors.New("bridge stopped answering pings")
	ErrRejected        = errors.New("request rejected by bridge")
	ErrValueTooLarge   = errors.New("value too large")
)

// DefaultTimeout bounds a request when the context has no earlier deadline.
const DefaultTimeout = 5 * time.Second

// StatusError reports a non-success status answered by the bridge.
type StatusError struct {
	Command string
	Status  wire.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Status)
}

// Config configures a Client.
type Config struct {
	// Timeout bounds every request (default: DefaultTimeout).
	Timeout time.Duration

	// StackID stamps outbound fragments.
	StackID uint8

	// Fragment is the fragmentation policy for both directions.
	Fragment fragment.Config

	// KeepAlive enables SYS PING probes when non-nil. A dead link closes
	// the client with ErrLinkLost.
	KeepAlive *transport.KeepAliveConfig

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:  DefaultTimeout,
		StackID:  1,
		Fragment: fragment.DefaultConfig(),
	}
}

type result struct {
	frame mt.Frame
	err   error
}

// pending is the one outstanding SREQ.
type pending struct {
	sub mt.Subsystem
	cmd uint8
	ch  chan result
}

// matches accepts the response itself and RES0 subsystem errors.
func (p *pending) matches(f mt.Frame) bool {
	return f.Command == p.cmd && (f.Subsystem == p.sub || f.Subsystem == mt.SubsystemRes0)
}

type report struct {
	version mt.ExtVersion
	report  mt.FragmentReport
}

// Client is an MT host connection.
type Client struct {
	link   transport.Link
	config Config

	writeMu sync.Mutex
	reqMu   sync.Mutex

	mu      sync.Mutex
	pending *pending
	handler func(mt.Frame)
	err     error

	reports     chan report
	fragmenting atomic.Bool

	// Owned by the reader goroutine.
	assembler *fragment.Assembler

	keepAlive *transport.KeepAlive
	started   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a client for link. Call Start before issuing requests.
func New(link transport.Link, config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Fragment.AckTimeout <= 0 {
		config.Fragment.AckTimeout = fragment.DefaultAckTimeout
	}
	if ka := config.KeepAlive; ka != nil {
		normalized := *ka
		if normalized.PingInterval <= 0 {
			normalized.PingInterval = transport.DefaultPingInterval
		}
		if normalized.ReplyTimeout <= 0 {
			normalized.ReplyTimeout = transport.DefaultReplyTimeout
		}
		if normalized.MaxMissed <= 0 {
			normalized.MaxMissed = transport.DefaultMaxMissed
		}
		config.KeepAlive = &normalized
	}
	c := &Client{
		link:      link,
		config:    config,
		reports:   make(chan report, 1),
		assembler: fragment.NewAssembler(config.Fragment, config.StackID),
		done:      make(chan struct{}),
	}
	if config.KeepAlive != nil {
		c.keepAlive = transport.NewKeepAlive(*config.KeepAlive, c.probe, func() {
			c.warn("keep-alive timeout, closing link")
			c.shutdown(ErrLinkLost)
		})
	}
	return c
}

// OnIndication sets the handler for AREQs from the bridge. It runs on the
// reader goroutine and must not issue requests itself.
func (c *Client) OnIndication(handler func(mt.Frame)) {
	c.mu.Lock()
	c.handler = handler
	c.mu.Unlock()
}

// Start launches the reader and, if configured, the keep-alive monitor.
func (c *Client) Start(ctx context.Context) {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	go c.readLoop()
	if c.keepAlive != nil {
		c.keepAlive.Start(ctx)
	}
}

// Done is closed once the client is closed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns why the client closed, or nil while it is open.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close closes the client and its link.
func (c *Client) Close() error {
	c.shutdown(ErrClientClosed)
	return nil
}

func (c *Client) shutdown(err error) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		close(c.done)
		if c.keepAlive != nil {
			c.keepAlive.Stop()
		}
		_ = c.link.Close()
	})
}

func (c *Client) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Send writes an AREQ, or any frame that expects no answer.
func (c *Client) Send(f mt.Frame) error {
	if c.closed() {
		return ErrClientClosed
	}
	return c.write(f)
}

func (c *Client) write(f mt.Frame) error {
	data, err := mt.Encode(f)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.link.WriteFrame(data); err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}

// Request sends an SREQ and waits for its SRSP. A request for an unknown
// subsystem is answered on the RES0 subsystem. Requests are serialized.
func (c *Client) Request(ctx context.Context, req mt.Frame) (mt.Frame, error) {
	if req.Type != mt.TypeSREQ {
		return mt.Frame{}, ErrNotRequest
	}

	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	if c.closed() {
		return mt.Frame{}, ErrClientClosed
	}

	p := &pending{sub: req.Subsystem, cmd: req.Command, ch: make(chan result, 1)}
	c.mu.Lock()
	c.pending = p
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		if c.pending == p {
			c.pending = nil
		}
		c.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var err error
	if len(req.Data) > mt.MaxDataSize {
		err = c.sendFragmented(ctx, req)
	} else {
		err = c.write(req)
	}
	if err != nil {
		return mt.Frame{}, err
	}

	select {
	case r := <-p.ch:
		return r.frame, r.err
	case <-c.done:
		return mt.Frame{}, ErrClientClosed
	case <-ctx.Done():
		return mt.Frame{}, contextError(ctx)
	}
}

func contextError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrRequestTimeout
	}
	return ctx.Err()
}

// sendFragmented sends an oversized request block by block. Each block
// waits for its acknowledgement; a missing one counts as a resend request.
func (c *Client) sendFragmented(ctx context.Context, req mt.Frame) error {
	c.drainReports()
	c.fragmenting.Store(true)
	defer c.fragmenting.Store(false)

	s := fragment.NewSplitter(c.config.Fragment, c.config.StackID)
	res, err := s.Start(req, time.Now())
	if err != nil {
		return err
	}

	timer := time.NewTimer(c.config.Fragment.AckTimeout)
	defer timer.Stop()

	for {
		if res.Frame != nil {
			if err := c.write(*res.Frame); err != nil {
				return err
			}
		}
		switch res.State {
		case fragment.SendDone:
			return nil
		case fragment.SendAborted:
			return fmt.Errorf("%w: %s", ErrFragmentAborted, res.Reason)
		}
		timer.Reset(c.config.Fragment.AckTimeout)

		select {
		case r := <-c.reports:
			if r.version == mt.ExtVersionStatus {
				s.Abort()
				return fmt.Errorf("%w: %s", ErrFragmentAborted, r.report.Status)
			}
			res, err = s.HandleAck(r.report, time.Now())
			if err != nil {
				return err
			}
		case <-timer.C:
			res = s.Expire(time.Now())
		case <-c.done:
			return ErrClientClosed
		case <-ctx.Done():
			if abort := s.Abort(); abort.Frame != nil {
				_ = c.write(*abort.Frame)
			}
			return contextError(ctx)
		}
	}
}

func (c *Client) drainReports() {
	for {
		select {
		case <-c.reports:
		default:
			return
		}
	}
}

func (c *Client) readLoop() {
	for {
		data, err := c.link.ReadFrame()
		if err != nil {
			c.debug("link read failed", "error", err)
			c.shutdown(fmt.Errorf("%w: %w", ErrClientClosed, err))
			return
		}
		f, err := mt.Decode(data)
		if err != nil {
			c.debug("dropping malformed frame", "error", err)
			continue
		}
		c.handleFrame(f)
	}
}

func (c *Client) handleFrame(f mt.Frame) {
	if !f.Extended {
		c.deliver(f)
		return
	}

	switch f.Version {
	case mt.ExtVersionStackID:
		f.Extended, f.Version, f.StackID = false, 0, 0
		c.deliver(f)

	case mt.ExtVersionFragment:
		res := c.assembler.Accept(f, time.Now())
		if res.Reply != nil {
			if err := c.write(*res.Reply); err != nil {
				c.debug("fragment reply failed", "error", err)
			}
		}
		if res.State == fragment.RecvAborted {
			c.debug("inbound fragments rejected", "reason", res.Reason.String())
		}
		if res.State == fragment.RecvComplete {
			c.deliver(*res.Message)
		}

	case mt.ExtVersionFragAck, mt.ExtVersionStatus:
		rep, err := mt.ParseFragmentReport(f.Data)
		if err != nil {
			c.debug("dropping malformed fragment report", "error", err)
			return
		}
		if f.Version == mt.ExtVersionStatus {
			c.assembler.HandleStatus(rep)
			if !c.fragmenting.Load() {
				c.fail(f, rep)
				return
			}
		}
		select {
		case c.reports <- report{version: f.Version, report: rep}:
		default:
			c.debug("dropping unexpected fragment report", "frame", f.String())
		}

	default:
		c.debug("dropping extended frame", "frame", f.String())
	}
}

// fail ends the outstanding request after the bridge rejected its frame.
func (c *Client) fail(f mt.Frame, rep mt.FragmentReport) {
	c.mu.Lock()
	p := c.pending
	if p != nil && p.sub == f.Subsystem && p.cmd == f.Command {
		c.pending = nil
	} else {
		p = nil
	}
	c.mu.Unlock()

	if p == nil {
		c.debug("fragment status without request", "frame", f.String(), "status", rep.Status.String())
		return
	}
	p.ch <- result{err: fmt.Errorf("%w: %s", ErrRejected, rep.Status)}
}

func (c *Client) deliver(f mt.Frame) {
	switch f.Type {
	case mt.TypeSRSP:
		c.mu.Lock()
		p := c.pending
		if p != nil && p.matches(f) {
			c.pending = nil
		} else {
			p = nil
		}
		c.mu.Unlock()

		if p == nil {
			c.debug("unexpected response", "frame", f.String())
			return
		}
		p.ch <- result{frame: f}

	case mt.TypeAREQ:
		c.mu.Lock()
		handler := c.handler
		c.mu.Unlock()
		if handler != nil {
			handler(f)
		}

	default:
		c.debug("dropping frame", "frame", f.String())
	}
}

// probe sends one keep-alive ping without blocking the monitor.
func (c *Client) probe() error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.config.KeepAlive.ReplyTimeout)
		defer cancel()
		if _, err := c.Ping(ctx); err == nil {
			c.keepAlive.Replied()
		}
	}()
	return nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, args...)
	}
}

func (c *Client) warn(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Warn(msg, args...)
	}
}
