package log

import (
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the link (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// LocalRole indicates whether this is the bridge or a host.
	LocalRole Role `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the peer address (IP:port or device path).
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"` // Transport layer
	Message     *MessageEvent     `cbor:"11,keyasint,omitempty"` // Decoded MT frame
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Link/bridge state
	Fragment    *FragmentEvent    `cbor:"13,keyasint,omitempty"` // Fragment session
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer captured the event.
type Layer uint8

const (
	// LayerTransport is the stream layer (raw frame bytes).
	LayerTransport Layer = 0
	// LayerFrame is the MT frame layer (decoded header, reassembled messages).
	LayerFrame Layer = 1
	// LayerService is the bridge service layer.
	LayerService Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerFrame:
		return "FRAME"
	case LayerService:
		return "SERVICE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates an MT command, response, or callback.
	CategoryMessage Category = 0
	// CategoryFragment indicates fragment data, acks, and status frames.
	CategoryFragment Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryFragment:
		return "FRAGMENT"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Role indicates which end of the link logged the event.
type Role uint8

const (
	// RoleBridge indicates the coprocessor bridge.
	RoleBridge Role = 0
	// RoleHost indicates a host controller.
	RoleHost Role = 1
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleBridge:
		return "BRIDGE"
	case RoleHost:
		return "HOST"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures raw frame data at the transport layer.
type FrameEvent struct {
	// Size is the encoded frame size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw frame bytes (may be truncated for large frames).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MessageEvent captures a decoded MT frame or reassembled message.
type MessageEvent struct {
	Type      mt.Type      `cbor:"1,keyasint"`
	Subsystem mt.Subsystem `cbor:"2,keyasint"`
	Command   uint8        `cbor:"3,keyasint"`

	// Extended header, if present.
	Extended bool          `cbor:"4,keyasint,omitempty"`
	Version  mt.ExtVersion `cbor:"5,keyasint,omitempty"`
	StackID  uint8         `cbor:"6,keyasint,omitempty"`

	// Status is the leading status byte of status-only responses.
	Status *wire.Status `cbor:"7,keyasint,omitempty"`

	// Data is the frame body (may be truncated).
	Data []byte `cbor:"8,keyasint,omitempty"`

	// Length is the untruncated body length.
	Length int `cbor:"9,keyasint"`

	// ProcessingTime is the duration from request receipt to response send
	// (responses only). Stored as nanoseconds.
	ProcessingTime *time.Duration `cbor:"10,keyasint,omitempty"`
}

// NewMessageEvent describes f. Bodies longer than maxData are truncated;
// a one-byte SRSP body is also reported as Status.
func NewMessageEvent(f mt.Frame, maxData int) *MessageEvent {
	m := &MessageEvent{
		Type:      f.Type,
		Subsystem: f.Subsystem,
		Command:   f.Command,
		Extended:  f.Extended,
		Version:   f.Version,
		StackID:   f.StackID,
		Data:      f.Data,
		Length:    len(f.Data),
	}
	if maxData >= 0 && len(m.Data) > maxData {
		m.Data = m.Data[:maxData]
	}
	if f.Type == mt.TypeSRSP && len(f.Data) == 1 {
		st := wire.Status(f.Data[0])
		m.Status = &st
	}
	return m
}

// StateChangeEvent captures link and session lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityConnection indicates a link state change.
	StateEntityConnection StateEntity = 0
	// StateEntitySendSession indicates an outbound fragment session change.
	StateEntitySendSession StateEntity = 1
	// StateEntityRecvSession indicates an inbound fragment session change.
	StateEntityRecvSession StateEntity = 2
	// StateEntityBridge indicates a bridge lifecycle change (start, reset).
	StateEntityBridge StateEntity = 3
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntitySendSession:
		return "SEND_SESSION"
	case StateEntityRecvSession:
		return "RECV_SESSION"
	case StateEntityBridge:
		return "BRIDGE"
	default:
		return "UNKNOWN"
	}
}

// FragmentEvent captures one fragmentation protocol frame.
type FragmentEvent struct {
	// Version is the extended frame kind (data, ack, status).
	Version mt.ExtVersion `cbor:"1,keyasint"`

	StackID uint8 `cbor:"2,keyasint,omitempty"`
	Block   uint8 `cbor:"3,keyasint"`

	// Total is the full message length (first data block only).
	Total uint16 `cbor:"4,keyasint,omitempty"`

	// ChunkSize is the data carried by a data block.
	ChunkSize int `cbor:"5,keyasint,omitempty"`

	// Status is set on ack and status frames.
	Status *mt.FragStatus `cbor:"6,keyasint,omitempty"`
}

// NewFragmentEvent describes an extended fragment frame. It returns nil for
// other frames and for bodies that do not parse.
func NewFragmentEvent(f mt.Frame) *FragmentEvent {
	if !f.Extended {
		return nil
	}
	ev := &FragmentEvent{Version: f.Version, StackID: f.StackID}
	switch f.Version {
	case mt.ExtVersionFragment:
		fd, err := mt.ParseFragmentData(f.Data)
		if err != nil {
			return nil
		}
		ev.Block, ev.Total, ev.ChunkSize = fd.Block, fd.Total, len(fd.Chunk)
	case mt.ExtVersionFragAck, mt.ExtVersionStatus:
		r, err := mt.ParseFragmentReport(f.Data)
		if err != nil {
			return nil
		}
		ev.Block = r.Block
		ev.Status = &r.Status
	default:
		return nil
	}
	return ev
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the error code (if applicable), e.g. an RPC status.
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
