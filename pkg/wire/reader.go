package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Codec errors.
var (
	// ErrShortBuffer indicates a read past the end of the payload.
	ErrShortBuffer = errors.New("short buffer")

	// ErrInvalidIndexWidth indicates an IndexWidth other than 1 or 2.
	ErrInvalidIndexWidth = errors.New("invalid index width")

	// ErrInvalidAddressMode indicates an unknown address mode byte.
	ErrInvalidAddressMode = errors.New("invalid address mode")
)

// Reader walks a little-endian payload. Reads past the end set a sticky
// error and return zero values.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader creates a reader over data. The reader does not copy data.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.off+n > len(r.buf) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, r.off, len(r.buf)-r.off)
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Uint8 reads one byte.
func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Bool reads one byte; any non-zero value is true.
func (r *Reader) Bool() bool {
	return r.Uint8() != 0
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Bytes reads n bytes into a new slice.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Fixed copies len(dst) bytes into dst.
func (r *Reader) Fixed(dst []byte) {
	b := r.take(len(dst))
	if b != nil {
		copy(dst, b)
	}
}

// Rest reads all remaining bytes into a new slice.
func (r *Reader) Rest() []byte {
	return r.Bytes(r.Remaining())
}

// Index reads a table index of the given width.
func (r *Reader) Index(w IndexWidth) uint16 {
	switch w {
	case IndexWidth8:
		return uint16(r.Uint8())
	case IndexWidth16:
		return r.Uint16()
	default:
		if r.err == nil {
			r.err = fmt.Errorf("%w: %d", ErrInvalidIndexWidth, w)
		}
		return 0
	}
}

// ExtAddr reads an 8-byte extended address.
func (r *Reader) ExtAddr() ExtAddr {
	var a ExtAddr
	r.Fixed(a[:])
	return a
}

// Address reads a mode byte and an 8-byte address slot.
func (r *Reader) Address() Address {
	mode := AddrMode(r.Uint8())
	slot := r.take(AddressSlotSize)
	if slot == nil {
		return Address{}
	}
	a := Address{Mode: mode}
	switch mode {
	case AddrModeNone:
	case AddrModeShort:
		a.Short = binary.LittleEndian.Uint16(slot)
	case AddrModeExt:
		copy(a.Ext[:], slot)
	default:
		if r.err == nil {
			r.err = fmt.Errorf("%w: %d", ErrInvalidAddressMode, mode)
		}
	}
	return a
}

// SecurityDescriptor reads the 11-byte security descriptor.
func (r *Reader) SecurityDescriptor() SecurityDescriptor {
	var s SecurityDescriptor
	r.Fixed(s.KeySource[:])
	s.SecurityLevel = r.Uint8()
	s.KeyIDMode = r.Uint8()
	s.KeyIndex = r.Uint8()
	return s
}
