package fragment

import (
	"errors"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mt"
)

// Fragmentation limits.
const (
	// MaxBlocks is the number of distinct block indices.
	MaxBlocks = 256

	// MaxMessageSize is the largest message the protocol can carry: bounded
	// both by the u16 total length and by the u8 block index.
	MaxMessageSize = MaxBlocks * mt.MaxFragmentSize

	// DefaultMaxMessageSize is the default reassembly limit.
	DefaultMaxMessageSize = 2048

	// DefaultAckTimeout is how long a sender waits for an acknowledgement.
	DefaultAckTimeout = time.Second

	// DefaultMaxResends is the number of consecutive resends tolerated.
	DefaultMaxResends = 3

	// DefaultReassemblyTimeout bounds an inbound session.
	DefaultReassemblyTimeout = 5 * time.Second
)

// Fragmentation errors.
var (
	ErrSessionBusy     = errors.New("fragmentation session already active")
	ErrNoSession       = errors.New("no fragmentation session")
	ErrMessageTooLarge = errors.New("message too large for fragmentation")
	ErrNotOversized    = errors.New("message fits in a single frame")
)

// Config holds the fragmentation policy.
type Config struct {
	// MaxMessageSize caps the size of a reassembled inbound message.
	// Values above MaxMessageSize are clamped.
	MaxMessageSize int

	// AckTimeout is how long a sender waits for an acknowledgement before
	// treating the silence as a RESEND request.
	AckTimeout time.Duration

	// MaxResends is the number of consecutive RESEND requests (or ack
	// timeouts) after which the send is aborted.
	MaxResends int

	// ReassemblyTimeout bounds the gap between inbound blocks.
	ReassemblyTimeout time.Duration
}

// DefaultConfig returns the default fragmentation policy.
func DefaultConfig() Config {
	return Config{
		MaxMessageSize:    DefaultMaxMessageSize,
		AckTimeout:        DefaultAckTimeout,
		MaxResends:        DefaultMaxResends,
		ReassemblyTimeout: DefaultReassemblyTimeout,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.MaxMessageSize > MaxMessageSize {
		c.MaxMessageSize = MaxMessageSize
	}
	if c.AckTimeout <= 0 {
		c.AckTimeout = d.AckTimeout
	}
	if c.MaxResends < 0 {
		c.MaxResends = 0
	}
	if c.ReassemblyTimeout <= 0 {
		c.ReassemblyTimeout = d.ReassemblyTimeout
	}
	return c
}

// Split cuts data into ordered fragment bodies of at most mt.MaxFragmentSize
// bytes. Block 0 carries the total length.
func Split(data []byte) ([]mt.FragmentData, error) {
	if len(data) <= mt.MaxDataSize {
		return nil, ErrNotOversized
	}
	if len(data) > MaxMessageSize {
		return nil, ErrMessageTooLarge
	}

	count := (len(data) + mt.MaxFragmentSize - 1) / mt.MaxFragmentSize
	blocks := make([]mt.FragmentData, 0, count)
	for i := 0; i < count; i++ {
		start := i * mt.MaxFragmentSize
		end := min(start+mt.MaxFragmentSize, len(data))
		fd := mt.FragmentData{Block: uint8(i), Chunk: data[start:end]}
		if i == 0 {
			fd.Total = uint16(len(data))
		}
		blocks = append(blocks, fd)
	}
	return blocks, nil
}

// FragmentCount returns the number of blocks needed for size bytes.
func FragmentCount(size int) int {
	if size <= 0 {
		return 0
	}
	return (size + mt.MaxFragmentSize - 1) / mt.MaxFragmentSize
}
