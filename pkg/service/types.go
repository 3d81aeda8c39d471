package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/fragment"
	"github.com/lowpan-mt/mt-go/pkg/interaction"
	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/metrics"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/subscription"
	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Service errors.
var (
	ErrNotStarted     = errors.New("service not started")
	ErrAlreadyStarted = errors.New("service already started")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNilEngine      = errors.New("engine is nil")
)

// Bridge defaults.
const (
	DefaultStackID      = 1
	MaxStackID          = 7
	DefaultTickInterval = 50 * time.Millisecond
	DefaultMaxLogData   = 64
	inboundQueueSize    = 16
)

// ServiceState represents the service state.
type ServiceState uint8

const (
	// StateIdle - bridge created but not serving.
	StateIdle ServiceState = iota

	// StateStarting - a link is being attached.
	StateStarting

	// StateRunning - the worker is serving a link.
	StateRunning

	// StateStopping - the worker is shutting down.
	StateStopping

	// StateStopped - the last link was released.
	StateStopped
)

// String returns the state name.
func (s ServiceState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateStarting:
		return "STARTING"
	case StateRunning:
		return "RUNNING"
	case StateStopping:
		return "STOPPING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// BridgeConfig configures a Bridge.
type BridgeConfig struct {
	// StackID is the only stack id accepted in extended frames (0-7).
	StackID uint8

	// IndexWidth is the security table index width of the payload codec.
	IndexWidth wire.IndexWidth

	// Version is reported by SYS_VERSION and SYS_RESET_IND.
	Version version.Record

	// Fragment is the fragmentation policy.
	Fragment fragment.Config

	// QueueSize is the capacity of the engine event handoff.
	QueueSize int

	// TickInterval is how often fragment timeouts are checked.
	TickInterval time.Duration

	// Storage backs the NV commands. If nil, they answer unsupported.
	Storage nv.Storage

	// Reset is called after a reset request was recorded and the bridge
	// state was cleared.
	Reset interaction.ResetFunc

	// Metrics is optional.
	Metrics *metrics.Metrics

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger captures decoded messages, fragment frames and state
	// changes. If nil, nothing is captured.
	ProtocolLogger log.Logger

	// MaxLogData truncates message bodies in protocol events.
	MaxLogData int
}

// DefaultBridgeConfig returns a BridgeConfig with sensible defaults.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		StackID:      DefaultStackID,
		IndexWidth:   wire.IndexWidth8,
		Version:      version.Default,
		Fragment:     fragment.DefaultConfig(),
		QueueSize:    subscription.DefaultQueueSize,
		TickInterval: DefaultTickInterval,
		MaxLogData:   DefaultMaxLogData,
	}
}

// Validate checks if the bridge config is valid.
func (c *BridgeConfig) Validate() error {
	if c.StackID > MaxStackID {
		return fmt.Errorf("%w: stack id %d > %d", ErrInvalidConfig, c.StackID, MaxStackID)
	}
	if !c.IndexWidth.Valid() {
		return fmt.Errorf("%w: index width %d", ErrInvalidConfig, c.IndexWidth)
	}
	if c.Fragment.MaxMessageSize > fragment.MaxMessageSize {
		return fmt.Errorf("%w: max message size %d > %d", ErrInvalidConfig, c.Fragment.MaxMessageSize, fragment.MaxMessageSize)
	}
	if c.Fragment.MaxMessageSize != 0 && c.Fragment.MaxMessageSize <= mt.MaxDataSize {
		return fmt.Errorf("%w: max message size %d fits in one frame", ErrInvalidConfig, c.Fragment.MaxMessageSize)
	}
	return nil
}

// EventType identifies a bridge lifecycle event.
type EventType uint8

const (
	// EventLinkUp - a host link is being served.
	EventLinkUp EventType = iota

	// EventLinkDown - the host link was released.
	EventLinkDown

	// EventReset - the bridge reset on host request.
	EventReset
)

// String returns the event type name.
func (e EventType) String() string {
	switch e {
	case EventLinkUp:
		return "LINK_UP"
	case EventLinkDown:
		return "LINK_DOWN"
	case EventReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// Event represents a bridge event.
type Event struct {
	Type EventType

	// ConnectionID identifies the link.
	ConnectionID string

	// ResetType is set for reset events.
	ResetType interaction.ResetType

	// Error is set when a link ended with an error.
	Error error
}

// EventHandler handles bridge events.
type EventHandler func(Event)
