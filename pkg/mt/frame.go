package mt

import (
	"errors"
	"fmt"
)

// Frame layout constants.
const (
	// HeaderSize is the size of the basic frame header.
	HeaderSize = 3

	// ExtHeaderSize is the size of the header when the extended flag is set.
	ExtHeaderSize = HeaderSize + 1

	// MaxDataSize is the largest data field a single frame carries.
	MaxDataSize = 250

	// MaxFrameSize is the largest encoded frame.
	MaxFrameSize = ExtHeaderSize + MaxDataSize

	typeMask   = 0x60
	typeShift  = 5
	extBit     = 0x80
	subsysMask = 0x1F
)

// Frame errors.
var (
	ErrFrameTooShort    = errors.New("frame too short")
	ErrLengthMismatch   = errors.New("frame length mismatch")
	ErrDataTooLong      = errors.New("frame data too long")
	ErrBadExtVersion    = errors.New("unknown extended version")
	ErrBadFragmentFrame = errors.New("malformed fragment frame")
)

// Type is the frame type carried in bits 5-6 of the second header byte.
type Type uint8

const (
	TypePoll Type = 0
	TypeSREQ Type = 1
	TypeAREQ Type = 2
	TypeSRSP Type = 3
)

// String returns the frame type name.
func (t Type) String() string {
	switch t {
	case TypePoll:
		return "POLL"
	case TypeSREQ:
		return "SREQ"
	case TypeAREQ:
		return "AREQ"
	case TypeSRSP:
		return "SRSP"
	default:
		return "UNKNOWN"
	}
}

// Subsystem is the 5-bit command namespace.
type Subsystem uint8

const (
	SubsystemRes0 Subsystem = 0
	SubsystemSys  Subsystem = 1
	SubsystemMAC  Subsystem = 2
	SubsystemUtil Subsystem = 7
	SubsystemApp  Subsystem = 9
)

// String returns the subsystem name.
func (s Subsystem) String() string {
	switch s {
	case SubsystemRes0:
		return "RES0"
	case SubsystemSys:
		return "SYS"
	case SubsystemMAC:
		return "MAC"
	case SubsystemUtil:
		return "UTIL"
	case SubsystemApp:
		return "APP"
	default:
		return fmt.Sprintf("RES%d", uint8(s))
	}
}

// Capability returns the ping capability bit for the subsystem.
func (s Subsystem) Capability() uint16 {
	if s == SubsystemRes0 || s > 16 {
		return 0
	}
	return 1 << (s - 1)
}

// Frame is a decoded MT frame. Frames produced by fragment reassembly may
// carry more than MaxDataSize bytes of data; such frames are dispatched but
// never encoded directly.
type Frame struct {
	Type      Type
	Subsystem Subsystem
	Command   uint8

	// Extended frames only.
	Extended bool
	Version  ExtVersion
	StackID  uint8

	Data []byte
}

// NewFrame returns a basic frame.
func NewFrame(t Type, sub Subsystem, cmd uint8, data []byte) Frame {
	return Frame{Type: t, Subsystem: sub, Command: cmd, Data: data}
}

// Header returns the packed second header byte.
func (f Frame) Header() uint8 {
	h := uint8(f.Type)<<typeShift | uint8(f.Subsystem)&subsysMask
	if f.Extended {
		h |= extBit
	}
	return h
}

// Response returns an SRSP frame addressed like f.
func (f Frame) Response(data []byte) Frame {
	return Frame{Type: TypeSRSP, Subsystem: f.Subsystem, Command: f.Command, Data: data}
}

// String returns a short description used in logs.
func (f Frame) String() string {
	if f.Extended {
		return fmt.Sprintf("%s %s/0x%02X ext=%s stack=%d len=%d", f.Type, f.Subsystem, f.Command, f.Version, f.StackID, len(f.Data))
	}
	return fmt.Sprintf("%s %s/0x%02X len=%d", f.Type, f.Subsystem, f.Command, len(f.Data))
}

// ParseHeader splits the packed second header byte.
func ParseHeader(b uint8) (t Type, sub Subsystem, extended bool) {
	return Type((b & typeMask) >> typeShift), Subsystem(b & subsysMask), b&extBit != 0
}

// IsExtended reports whether an encoded frame has the extended flag set.
// It only inspects the second header byte.
func IsExtended(buf []byte) bool {
	return len(buf) >= 2 && buf[1]&extBit != 0
}

// Decode parses exactly one encoded frame. buf must hold the complete frame
// and nothing else.
func Decode(buf []byte) (Frame, error) {
	if len(buf) < HeaderSize {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrFrameTooShort, len(buf))
	}

	length := int(buf[0])
	if length > MaxDataSize {
		return Frame{}, fmt.Errorf("%w: %d > %d", ErrDataTooLong, length, MaxDataSize)
	}

	t, sub, ext := ParseHeader(buf[1])
	f := Frame{Type: t, Subsystem: sub, Command: buf[2], Extended: ext}

	offset := HeaderSize
	if ext {
		if len(buf) < ExtHeaderSize {
			return Frame{}, fmt.Errorf("%w: extended header needs %d bytes", ErrFrameTooShort, ExtHeaderSize)
		}
		f.Version, f.StackID = ParseExtByte(buf[HeaderSize])
		offset = ExtHeaderSize
	}

	if len(buf)-offset != length {
		return Frame{}, fmt.Errorf("%w: declared %d, have %d", ErrLengthMismatch, length, len(buf)-offset)
	}

	f.Data = make([]byte, length)
	copy(f.Data, buf[offset:])
	return f, nil
}

// Encode serializes the frame.
func Encode(f Frame) ([]byte, error) {
	if len(f.Data) > MaxDataSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrDataTooLong, len(f.Data), MaxDataSize)
	}

	size := HeaderSize + len(f.Data)
	if f.Extended {
		size++
	}

	buf := make([]byte, 0, size)
	buf = append(buf, uint8(len(f.Data)), f.Header(), f.Command)
	if f.Extended {
		buf = append(buf, ExtByte(f.Version, f.StackID))
	}
	return append(buf, f.Data...), nil
}

// FrameSize returns the encoded size of a frame declared by the first two
// header bytes, or 0 if hdr is too short to tell.
func FrameSize(hdr []byte) int {
	if len(hdr) < 2 {
		return 0
	}
	size := HeaderSize + int(hdr[0])
	if hdr[1]&extBit != 0 {
		size++
	}
	return size
}
