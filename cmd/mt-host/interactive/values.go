package interactive

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/lowpan-mt/mt-go/pkg/interaction"
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// parseItemID parses "sys/item/sub", the form printed by nv.ItemID.String.
func parseItemID(s string) (nv.ItemID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nv.ItemID{}, fmt.Errorf("invalid item id %q (use sys/item/sub)", s)
	}
	sys, err := parseUint(parts[0], 8)
	if err != nil {
		return nv.ItemID{}, err
	}
	item, err := parseUint(parts[1], 16)
	if err != nil {
		return nv.ItemID{}, err
	}
	sub, err := parseUint(parts[2], 16)
	if err != nil {
		return nv.ItemID{}, err
	}
	return nv.ItemID{SystemID: uint8(sys), ItemID: uint16(item), SubID: uint16(sub)}, nil
}

func parseSubsystem(s string) (mt.Subsystem, error) {
	switch strings.ToLower(s) {
	case "sys":
		return mt.SubsystemSys, nil
	case "mac":
		return mt.SubsystemMAC, nil
	case "util":
		return mt.SubsystemUtil, nil
	}
	v, err := parseUint(s, 5)
	if err != nil {
		return 0, fmt.Errorf("unknown subsystem: %s (use sys, mac, util or a number)", s)
	}
	return mt.Subsystem(v), nil
}

func parseResetType(s string) (interaction.ResetType, error) {
	switch strings.ToLower(s) {
	case "", "soft":
		return interaction.ResetSoft, nil
	case "hard":
		return interaction.ResetHard, nil
	default:
		return 0, fmt.Errorf("unknown reset type: %s (use soft or hard)", s)
	}
}

func parseExtAddrType(s string) (mac.ExtAddrType, error) {
	switch strings.ToLower(s) {
	case "", "primary":
		return mac.ExtAddrPrimary, nil
	case "pib":
		return mac.ExtAddrPIB, nil
	case "user":
		return mac.ExtAddrUserConfig, nil
	default:
		return 0, fmt.Errorf("unknown address type: %s (use primary, pib or user)", s)
	}
}

// parseHex parses a hex byte string. Colons and a 0x prefix are ignored.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.ReplaceAll(s, ":", ""), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q", s)
	}
	return b, nil
}

// encodePIBValue encodes a console value for attr. Scalars are numbers,
// arrays are hex strings.
func encodePIBValue(attr mac.PIBAttribute, s string) ([]byte, error) {
	d, ok := payload.PIBDescriptor(attr)
	if !ok {
		return nil, fmt.Errorf("unknown attribute %s", attr)
	}

	var size int
	switch d.Width {
	case payload.WidthBool, payload.WidthUint8:
		size = 1
	case payload.WidthUint16:
		size = 2
	case payload.WidthUint32:
		size = 4
	default:
		return parseHex(s)
	}

	v, err := parseUint(s, size*8)
	if err != nil {
		return nil, err
	}
	w := wire.NewWriter(size)
	switch size {
	case 1:
		w.PutUint8(uint8(v))
	case 2:
		w.PutUint16(uint16(v))
	default:
		w.PutUint32(uint32(v))
	}
	return w.Bytes(), nil
}

// formatPIBValue prints a scalar value as a number and anything else as hex.
func formatPIBValue(value []byte) string {
	switch len(value) {
	case 1:
		return fmt.Sprintf("%d (0x%02X)", value[0], value[0])
	case 2:
		v := wire.NewReader(value).Uint16()
		return fmt.Sprintf("%d (0x%04X)", v, v)
	case 4:
		v := wire.NewReader(value).Uint32()
		return fmt.Sprintf("%d (0x%08X)", v, v)
	default:
		return hex.EncodeToString(value)
	}
}
