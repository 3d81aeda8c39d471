package subscription

import (
	"fmt"
	"sync/atomic"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/payload"
)

// DefaultQueueSize is the default capacity of the event handoff.
const DefaultQueueSize = 64

// SendFunc transmits one AREQ message.
type SendFunc func(f mt.Frame) error

// Config configures a Router.
type Config struct {
	// QueueSize is the capacity of the event handoff channel.
	QueueSize int

	// OnEmit is called after an event was sent.
	OnEmit func(sub mt.Subsystem, cmd uint8)

	// OnSuppress is called when an event was filtered out.
	OnSuppress func(sub mt.Subsystem, cmd uint8)

	// OnDrop is called when Post found the handoff full.
	OnDrop func(ev mac.Event)
}

// DefaultConfig returns the default router configuration.
func DefaultConfig() Config {
	return Config{QueueSize: DefaultQueueSize}
}

// Router sends subscribed callbacks to the host.
type Router struct {
	table  *Table
	send   SendFunc
	config Config
	events chan mac.Event

	dropped atomic.Uint64
}

// NewRouter creates a router that filters through table and sends through
// send.
func NewRouter(table *Table, send SendFunc, config Config) *Router {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultQueueSize
	}
	return &Router{
		table:  table,
		send:   send,
		config: config,
		events: make(chan mac.Event, config.QueueSize),
	}
}

// Table returns the subscription table.
func (r *Router) Table() *Table {
	return r.table
}

// Post hands an engine event to the worker without blocking. It returns
// false if the event was dropped.
func (r *Router) Post(ev mac.Event) bool {
	select {
	case r.events <- ev:
		return true
	default:
		r.dropped.Add(1)
		if r.config.OnDrop != nil {
			r.config.OnDrop(ev)
		}
		return false
	}
}

// Events returns the handoff channel drained by the worker.
func (r *Router) Events() <-chan mac.Event {
	return r.events
}

// Dropped returns the number of events lost to a full handoff.
func (r *Router) Dropped() uint64 {
	return r.dropped.Load()
}

// MaybeEmit sends an AREQ if bit is subscribed for sub. It reports whether
// the frame was sent.
func (r *Router) MaybeEmit(sub mt.Subsystem, bit uint32, cmd uint8, body []byte) (bool, error) {
	if !r.table.Enabled(sub, bit) {
		if r.config.OnSuppress != nil {
			r.config.OnSuppress(sub, cmd)
		}
		return false, nil
	}

	if err := r.send(mt.NewFrame(mt.TypeAREQ, sub, cmd, body)); err != nil {
		return false, fmt.Errorf("send %s/0x%02X: %w", sub, cmd, err)
	}
	if r.config.OnEmit != nil {
		r.config.OnEmit(sub, cmd)
	}
	return true, nil
}

// Dispatch encodes a MAC engine event and emits it if subscribed.
func (r *Router) Dispatch(ev mac.Event) (bool, error) {
	info, body, err := payload.EncodeEvent(ev)
	if err != nil {
		return false, err
	}
	return r.MaybeEmit(mt.SubsystemMAC, info.Callback, info.Command, body)
}
