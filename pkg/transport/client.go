package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
)

// DialConfig configures Dial.
type DialConfig struct {
	// ConnectTimeout bounds each TCP connect when ctx has no deadline
	// (default: 10s).
	ConnectTimeout time.Duration

	// Retries is the number of redials after a failed connect. Zero dials
	// once.
	Retries int

	// Backoff shapes the delay between redials.
	Backoff BackoffConfig

	// OnRetry is called before each redial (optional).
	OnRetry func(attempt int, delay time.Duration, err error)

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// Dial connects to a TCP-attached bridge, redialing with exponential
// backoff up to config.Retries times.
func Dial(ctx context.Context, address string, config DialConfig) (*Conn, error) {
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = 10 * time.Second
	}

	var backoff *Backoff
	for attempt := 0; ; attempt++ {
		conn, err := dialOnce(ctx, address, config.ConnectTimeout)
		if err == nil {
			return NewConn(conn, config.Logger), nil
		}
		if attempt >= config.Retries || ctx.Err() != nil {
			return nil, fmt.Errorf("dial failed: %w", err)
		}

		if backoff == nil {
			backoff = NewBackoff(config.Backoff)
		}
		delay := backoff.Next()
		if config.OnRetry != nil {
			config.OnRetry(attempt+1, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("dial failed: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

func dialOnce(ctx context.Context, address string, timeout time.Duration) (net.Conn, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	dialer := &net.Dialer{}
	return dialer.DialContext(ctx, "tcp", address)
}
