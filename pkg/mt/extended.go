package mt

import (
	"encoding/binary"
	"fmt"
)

const (
	extVersionShift = 3
	stackIDMask     = 0x07

	// MaxStackID is the largest 3-bit stack id.
	MaxStackID = 7
)

// ExtVersion is the 5-bit extended version, which selects the extended frame kind.
type ExtVersion uint8

const (
	ExtVersionNone     ExtVersion = 0
	ExtVersionStackID  ExtVersion = 1
	ExtVersionFragment ExtVersion = 2
	ExtVersionFragAck  ExtVersion = 3
	ExtVersionStatus   ExtVersion = 4
)

// String returns the extended version name.
func (v ExtVersion) String() string {
	switch v {
	case ExtVersionStackID:
		return "STACK_ID"
	case ExtVersionFragment:
		return "FRAGMENT"
	case ExtVersionFragAck:
		return "FRAG_ACK"
	case ExtVersionStatus:
		return "FRAG_STATUS"
	default:
		return fmt.Sprintf("V%d", uint8(v))
	}
}

// Known returns true for the versions this codec understands.
func (v ExtVersion) Known() bool {
	return v >= ExtVersionStackID && v <= ExtVersionStatus
}

// ParseExtByte splits the extended header byte.
func ParseExtByte(b uint8) (ExtVersion, uint8) {
	return ExtVersion(b >> extVersionShift), b & stackIDMask
}

// ExtByte packs an extended version and stack id.
func ExtByte(v ExtVersion, stackID uint8) uint8 {
	return uint8(v)<<extVersionShift | stackID&stackIDMask
}

// FragStatus is the status carried in fragment ACK and status frames.
type FragStatus uint8

const (
	FragSuccess   FragStatus = 0
	FragResend    FragStatus = 1
	FragBadStack  FragStatus = 2
	FragBadBlock  FragStatus = 3
	FragBadLength FragStatus = 4
	FragNoMemory  FragStatus = 5
	FragDone      FragStatus = 6
	FragAbort     FragStatus = 7
	FragBadAck    FragStatus = 8
)

// String returns the fragment status name.
func (s FragStatus) String() string {
	switch s {
	case FragSuccess:
		return "SUCCESS"
	case FragResend:
		return "RESEND"
	case FragBadStack:
		return "BADSTACK"
	case FragBadBlock:
		return "BADBLOCK"
	case FragBadLength:
		return "BADLENGTH"
	case FragNoMemory:
		return "NOMEMORY"
	case FragDone:
		return "FRAGDONE"
	case FragAbort:
		return "FRAGABORT"
	case FragBadAck:
		return "BADACK"
	default:
		return "UNKNOWN"
	}
}

// Fragment body sizes.
const (
	// FirstFragmentHeaderSize is block index plus total length.
	FirstFragmentHeaderSize = 3

	// FragmentHeaderSize is the block index carried by later fragments.
	FragmentHeaderSize = 1

	// MaxFragmentSize is the chunk budget of a fragment. It uses the larger
	// first-block header so every block obeys the same limit.
	MaxFragmentSize = MaxDataSize - FirstFragmentHeaderSize
)

// FragmentData is the body of a fragment data frame. Total is only present
// on the wire in block 0.
type FragmentData struct {
	Block uint8
	Total uint16
	Chunk []byte
}

// ParseFragmentData parses a fragment data body.
func ParseFragmentData(data []byte) (FragmentData, error) {
	if len(data) < FragmentHeaderSize {
		return FragmentData{}, fmt.Errorf("%w: empty fragment", ErrBadFragmentFrame)
	}
	fd := FragmentData{Block: data[0]}
	body := data[FragmentHeaderSize:]
	if fd.Block == 0 {
		if len(data) < FirstFragmentHeaderSize {
			return FragmentData{}, fmt.Errorf("%w: first fragment without total length", ErrBadFragmentFrame)
		}
		fd.Total = binary.LittleEndian.Uint16(data[1:3])
		body = data[FirstFragmentHeaderSize:]
	}
	fd.Chunk = body
	return fd, nil
}

// Encode serializes the fragment body.
func (fd FragmentData) Encode() []byte {
	size := FragmentHeaderSize + len(fd.Chunk)
	if fd.Block == 0 {
		size = FirstFragmentHeaderSize + len(fd.Chunk)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, fd.Block)
	if fd.Block == 0 {
		buf = binary.LittleEndian.AppendUint16(buf, fd.Total)
	}
	return append(buf, fd.Chunk...)
}

// FragmentReport is the body of fragment ACK and fragment status frames.
type FragmentReport struct {
	Block  uint8
	Status FragStatus
}

// ParseFragmentReport parses an ACK or status body.
func ParseFragmentReport(data []byte) (FragmentReport, error) {
	if len(data) != 2 {
		return FragmentReport{}, fmt.Errorf("%w: report body is %d bytes", ErrBadFragmentFrame, len(data))
	}
	return FragmentReport{Block: data[0], Status: FragStatus(data[1])}, nil
}

// Encode serializes the report body.
func (r FragmentReport) Encode() []byte {
	return []byte{r.Block, uint8(r.Status)}
}

// NewFragmentFrame builds an extended fragment data frame addressed like msg.
func NewFragmentFrame(msg Frame, stackID uint8, fd FragmentData) Frame {
	return Frame{
		Type:      msg.Type,
		Subsystem: msg.Subsystem,
		Command:   msg.Command,
		Extended:  true,
		Version:   ExtVersionFragment,
		StackID:   stackID,
		Data:      fd.Encode(),
	}
}

// NewReportFrame builds a fragment ACK or status frame addressed like msg.
func NewReportFrame(msg Frame, version ExtVersion, stackID uint8, r FragmentReport) Frame {
	return Frame{
		Type:      msg.Type,
		Subsystem: msg.Subsystem,
		Command:   msg.Command,
		Extended:  true,
		Version:   version,
		StackID:   stackID,
		Data:      r.Encode(),
	}
}
