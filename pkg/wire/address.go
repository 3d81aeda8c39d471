package wire

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Wire sizes of the shared structures.
const (
	// AddressSlotSize is the fixed slot following the address mode byte.
	AddressSlotSize = 8

	// AddressSize is the full wire size of an Address.
	AddressSize = 1 + AddressSlotSize

	// ExtAddrSize is the size of an extended (IEEE) address.
	ExtAddrSize = 8

	// KeySourceSize is the size of a security key source.
	KeySourceSize = 8

	// SecurityDescriptorSize is the wire size of a SecurityDescriptor.
	SecurityDescriptorSize = KeySourceSize + 3
)

// AddrMode is the MAC address mode.
type AddrMode uint8

const (
	AddrModeNone  AddrMode = 0
	AddrModeShort AddrMode = 2
	AddrModeExt   AddrMode = 3
)

// String returns the address mode name.
func (m AddrMode) String() string {
	switch m {
	case AddrModeNone:
		return "NONE"
	case AddrModeShort:
		return "SHORT"
	case AddrModeExt:
		return "EXTENDED"
	default:
		return "UNKNOWN"
	}
}

// ExtAddr is an 8-byte extended address in wire (little-endian) order.
type ExtAddr [ExtAddrSize]byte

// String formats the address most-significant byte first, as printed on labels.
func (a ExtAddr) String() string {
	var sb strings.Builder
	for i := len(a) - 1; i >= 0; i-- {
		sb.WriteString(hex.EncodeToString(a[i : i+1]))
		if i > 0 {
			sb.WriteByte(':')
		}
	}
	return sb.String()
}

// ParseExtAddr parses the format produced by ExtAddr.String. Colons are optional.
func ParseExtAddr(s string) (ExtAddr, error) {
	var a ExtAddr
	raw, err := hex.DecodeString(strings.ReplaceAll(s, ":", ""))
	if err != nil {
		return a, fmt.Errorf("invalid extended address %q: %w", s, err)
	}
	if len(raw) != ExtAddrSize {
		return a, fmt.Errorf("invalid extended address %q: want %d bytes, got %d", s, ExtAddrSize, len(raw))
	}
	for i := range raw {
		a[ExtAddrSize-1-i] = raw[i]
	}
	return a, nil
}

// Address is a MAC address in one of the three modes.
type Address struct {
	Mode  AddrMode
	Short uint16
	Ext   ExtAddr
}

// ShortAddress returns a short-mode address.
func ShortAddress(v uint16) Address {
	return Address{Mode: AddrModeShort, Short: v}
}

// ExtAddress returns an extended-mode address.
func ExtAddress(v ExtAddr) Address {
	return Address{Mode: AddrModeExt, Ext: v}
}

// String returns a readable representation of the address.
func (a Address) String() string {
	switch a.Mode {
	case AddrModeShort:
		return fmt.Sprintf("0x%04X", a.Short)
	case AddrModeExt:
		return a.Ext.String()
	default:
		return "none"
	}
}

// SecurityDescriptor carries the per-frame security parameters.
type SecurityDescriptor struct {
	KeySource     [KeySourceSize]byte
	SecurityLevel uint8
	KeyIDMode     uint8
	KeyIndex      uint8
}

// IndexWidth is the byte width of security table indices on the wire.
type IndexWidth uint8

const (
	IndexWidth8  IndexWidth = 1
	IndexWidth16 IndexWidth = 2
)

// Valid returns true for the two supported widths.
func (w IndexWidth) Valid() bool {
	return w == IndexWidth8 || w == IndexWidth16
}

// Size returns the width in bytes.
func (w IndexWidth) Size() int {
	return int(w)
}

// ParseIndexWidth parses "1"/"8" or "2"/"16" as used in configuration files.
func ParseIndexWidth(s string) (IndexWidth, error) {
	switch s {
	case "1", "8":
		return IndexWidth8, nil
	case "2", "16":
		return IndexWidth16, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndexWidth, s)
	}
}
