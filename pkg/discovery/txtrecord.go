package discovery

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeBridgeTXT creates the TXT record for a bridge.
func EncodeBridgeTXT(info *BridgeInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	txt[TXTKeyTransport] = strconv.FormatUint(uint64(info.TransportVersion), 10)
	txt[TXTKeyProduct] = strconv.FormatUint(uint64(info.Product), 10)
	txt[TXTKeyRelease] = info.Release
	txt[TXTKeyStackID] = strconv.FormatUint(uint64(info.StackID), 10)
	txt[TXTKeyCapabilities] = fmt.Sprintf("%04x", info.Capabilities)

	if info.ID != "" {
		txt[TXTKeyID] = strings.ToLower(info.ID)
	}
	if info.Name != "" {
		txt[TXTKeyName] = info.Name
	}

	return txt
}

// DecodeBridgeTXT parses a bridge TXT record.
func DecodeBridgeTXT(txt TXTRecordMap) (*BridgeInfo, error) {
	info := &BridgeInfo{}

	tv, err := requiredUint(txt, TXTKeyTransport, 8)
	if err != nil {
		return nil, err
	}
	info.TransportVersion = uint8(tv)

	pv, err := requiredUint(txt, TXTKeyProduct, 8)
	if err != nil {
		return nil, err
	}
	info.Product = uint8(pv)

	var ok bool
	if info.Release, ok = txt[TXTKeyRelease]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyRelease)
	}

	st, err := requiredUint(txt, TXTKeyStackID, 8)
	if err != nil {
		return nil, err
	}
	if st > MaxStackID {
		return nil, fmt.Errorf("%w: %s=%d", ErrInvalidTXTRecord, TXTKeyStackID, st)
	}
	info.StackID = uint8(st)

	capStr, ok := txt[TXTKeyCapabilities]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyCapabilities)
	}
	caps, err := strconv.ParseUint(capStr, 16, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, TXTKeyCapabilities, capStr)
	}
	info.Capabilities = uint16(caps)

	if id, ok := txt[TXTKeyID]; ok {
		if !ValidateID(id) {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, TXTKeyID, id)
		}
		info.ID = id
	}
	info.Name = txt[TXTKeyName]

	return info, nil
}

func requiredUint(txt TXTRecordMap, key string, bits int) (uint64, error) {
	s, ok := txt[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingRequired, key)
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, key, s)
	}
	return v, nil
}

// ValidateID reports whether id is a 16-digit hex extended address.
func ValidateID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

// TXTRecordsToStrings converts a TXTRecordMap to "key=value" strings,
// sorted by key.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// TXTRecordSize returns the encoded size of the record: each string is
// preceded by a length byte.
func TXTRecordSize(strs []string) int {
	n := 0
	for _, s := range strs {
		n += 1 + len(s)
	}
	return n
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInstanceNameTooLong)
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}

// InstanceName builds the default instance name for a bridge. The last
// eight hex digits of the id keep names unique on a shared link.
func InstanceName(info *BridgeInfo) string {
	if info.Name != "" {
		return info.Name
	}
	if len(info.ID) == IDLength {
		return InstancePrefix + strings.ToUpper(info.ID[IDLength-8:])
	}
	return fmt.Sprintf("%sbridge-%d", InstancePrefix, info.StackID)
}
