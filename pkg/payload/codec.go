package payload

import (
	"errors"
	"fmt"

	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// ErrUnknownEvent is returned when an event has no MT encoding.
var ErrUnknownEvent = errors.New("unknown engine event")

// Codec encodes and decodes the bodies whose layout depends on the security
// table index width.
type Codec struct {
	width wire.IndexWidth
}

// NewCodec creates a codec with the given index width.
func NewCodec(width wire.IndexWidth) (*Codec, error) {
	if !width.Valid() {
		return nil, fmt.Errorf("%w: %d", wire.ErrInvalidIndexWidth, width)
	}
	return &Codec{width: width}, nil
}

// MustCodec is like NewCodec but panics on an invalid width.
func MustCodec(width wire.IndexWidth) *Codec {
	c, err := NewCodec(width)
	if err != nil {
		panic(err)
	}
	return c
}

// IndexWidth returns the codec's index width.
func (c *Codec) IndexWidth() wire.IndexWidth {
	return c.width
}

// StatusBody returns a one-byte status body.
func StatusBody(s wire.Status) []byte {
	return []byte{uint8(s)}
}

// exact reports whether data has exactly n bytes.
func exact(data []byte, n int) bool {
	return len(data) == n
}

// finish maps the reader state after a decode to a status. Leftover bytes
// count as a length error.
func finish(r *wire.Reader) wire.Status {
	switch err := r.Err(); {
	case errors.Is(err, wire.ErrInvalidAddressMode):
		return wire.StatusInvalidParameter
	case err != nil, r.Remaining() != 0:
		return wire.StatusLengthError
	}
	return wire.StatusSuccess
}
