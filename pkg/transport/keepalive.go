package transport

import (
	"context"
	"sync"
	"time"
)

// Keep-alive constants.
const (
	// DefaultPingInterval is the default interval between probes.
	DefaultPingInterval = 10 * time.Second

	// DefaultReplyTimeout is the default time a probe may stay unanswered.
	DefaultReplyTimeout = 2 * time.Second

	// DefaultMaxMissed is the default number of missed replies before the
	// link is declared dead.
	DefaultMaxMissed = 3
)

// KeepAliveConfig configures keep-alive behavior.
type KeepAliveConfig struct {
	// PingInterval is the interval between probes.
	PingInterval time.Duration

	// ReplyTimeout is how long a probe may stay unanswered.
	ReplyTimeout time.Duration

	// MaxMissed is the number of missed replies before timeout.
	MaxMissed int
}

// DefaultKeepAliveConfig returns the default keep-alive configuration.
func DefaultKeepAliveConfig() KeepAliveConfig {
	return KeepAliveConfig{
		PingInterval: DefaultPingInterval,
		ReplyTimeout: DefaultReplyTimeout,
		MaxMissed:    DefaultMaxMissed,
	}
}

// DetectionDelay is the longest time a dead link can go unnoticed.
func (c KeepAliveConfig) DetectionDelay() time.Duration {
	return c.PingInterval*time.Duration(c.MaxMissed) + c.ReplyTimeout
}

// KeepAlive probes a peer periodically. The probe itself is supplied by the
// caller, which reports answers through Replied.
type KeepAlive struct {
	config KeepAliveConfig

	sendPing  func() error
	onTimeout func()

	missed       int
	lastPingTime time.Time
	lastReply    time.Time
	latency      time.Duration
	pending      bool

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	replyCh chan time.Time
}

// NewKeepAlive creates a keep-alive monitor. onTimeout runs on the monitor
// goroutine, which exits right after.
func NewKeepAlive(config KeepAliveConfig, sendPing func() error, onTimeout func()) *KeepAlive {
	if config.PingInterval == 0 {
		config.PingInterval = DefaultPingInterval
	}
	if config.ReplyTimeout == 0 {
		config.ReplyTimeout = DefaultReplyTimeout
	}
	if config.MaxMissed == 0 {
		config.MaxMissed = DefaultMaxMissed
	}
	return &KeepAlive{
		config:    config,
		sendPing:  sendPing,
		onTimeout: onTimeout,
		stopCh:    make(chan struct{}),
		replyCh:   make(chan time.Time, 1),
	}
}

// Start begins monitoring.
func (ka *KeepAlive) Start(ctx context.Context) {
	ka.mu.Lock()
	if ka.running {
		ka.mu.Unlock()
		return
	}
	ka.running = true
	ka.stopCh = make(chan struct{})
	ka.mu.Unlock()

	go ka.loop(ctx)
}

// Stop stops monitoring.
func (ka *KeepAlive) Stop() {
	ka.mu.Lock()
	defer ka.mu.Unlock()

	if !ka.running {
		return
	}
	ka.running = false
	close(ka.stopCh)
}

// Replied records an answer to the outstanding probe.
func (ka *KeepAlive) Replied() {
	select {
	case ka.replyCh <- time.Now():
	default:
	}
}

// IsRunning reports whether monitoring is active.
func (ka *KeepAlive) IsRunning() bool {
	ka.mu.Lock()
	defer ka.mu.Unlock()
	return ka.running
}

// KeepAliveStats contains keep-alive statistics.
type KeepAliveStats struct {
	LastPingTime  time.Time
	LastReplyTime time.Time
	Latency       time.Duration
	Missed        int
}

// Stats returns current keep-alive statistics.
func (ka *KeepAlive) Stats() KeepAliveStats {
	ka.mu.Lock()
	defer ka.mu.Unlock()
	return KeepAliveStats{
		LastPingTime:  ka.lastPingTime,
		LastReplyTime: ka.lastReply,
		Latency:       ka.latency,
		Missed:        ka.missed,
	}
}

func (ka *KeepAlive) loop(ctx context.Context) {
	ticker := time.NewTicker(ka.config.PingInterval)
	defer ticker.Stop()

	ka.ping()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ka.stopCh:
			return
		case <-ticker.C:
			if ka.expired() {
				ka.mu.Lock()
				ka.running = false
				ka.mu.Unlock()
				if ka.onTimeout != nil {
					ka.onTimeout()
				}
				return
			}
			ka.ping()
		case at := <-ka.replyCh:
			ka.reply(at)
		}
	}
}

func (ka *KeepAlive) ping() {
	ka.mu.Lock()
	ka.lastPingTime = time.Now()
	ka.pending = true
	ka.mu.Unlock()

	// A failed send is counted when the reply deadline passes.
	_ = ka.sendPing()
}

// expired counts an unanswered probe and reports whether the miss limit
// is reached.
func (ka *KeepAlive) expired() bool {
	ka.mu.Lock()
	defer ka.mu.Unlock()

	if ka.pending && time.Since(ka.lastPingTime) >= ka.config.ReplyTimeout {
		ka.pending = false
		ka.missed++
	}
	return ka.missed >= ka.config.MaxMissed
}

func (ka *KeepAlive) reply(at time.Time) {
	ka.mu.Lock()
	defer ka.mu.Unlock()

	ka.lastReply = at
	if ka.pending {
		ka.latency = at.Sub(ka.lastPingTime)
		ka.pending = false
		ka.missed = 0
	}
}
