package mac

import "github.com/lowpan-mt/mt-go/pkg/wire"

// SecurityEntry is one of the six security table entry kinds. Every entry
// carries the table indices that address it.
type SecurityEntry interface {
	Attribute() SecurityAttribute
}

// KeyIDLookupEntry maps lookup data to a key.
type KeyIDLookupEntry struct {
	KeyIndex    uint16
	LookupIndex uint16
	LookupData  [KeyLookupSize]byte
	LookupSize  uint8
}

// KeyDeviceEntry links a key to a device.
type KeyDeviceEntry struct {
	KeyIndex       uint16
	KeyDeviceIndex uint16
	DeviceHandle   uint8 // device descriptor handle, not a table index
	UniqueDevice   bool
	Blacklisted    bool
}

// KeyUsageEntry lists a frame type a key may protect.
type KeyUsageEntry struct {
	KeyIndex      uint16
	KeyUsageIndex uint16
	FrameType     uint8
	CmdFrameID    uint8
}

// KeyEntry is a key with its outgoing frame counter.
type KeyEntry struct {
	KeyIndex     uint16
	Key          [KeySize]byte
	FrameCounter uint32
}

// DeviceEntry is a device descriptor.
type DeviceEntry struct {
	DeviceIndex  uint16
	PANID        uint16
	ShortAddr    uint16
	ExtAddr      wire.ExtAddr
	FrameCounter uint32
	Exempt       bool
}

// SecurityLevelEntry is the minimum security for a frame type.
type SecurityLevelEntry struct {
	LevelIndex      uint16
	FrameType       uint8
	CmdFrameID      uint8
	SecurityMinimum uint8
	OverrideMinimum bool
}

func (KeyIDLookupEntry) Attribute() SecurityAttribute   { return SecAttrKeyIDLookupEntry }
func (KeyDeviceEntry) Attribute() SecurityAttribute     { return SecAttrKeyDeviceEntry }
func (KeyUsageEntry) Attribute() SecurityAttribute      { return SecAttrKeyUsageEntry }
func (KeyEntry) Attribute() SecurityAttribute           { return SecAttrKeyEntry }
func (DeviceEntry) Attribute() SecurityAttribute        { return SecAttrDeviceEntry }
func (SecurityLevelEntry) Attribute() SecurityAttribute { return SecAttrSecurityLevelEntry }
