package mac

import "github.com/lowpan-mt/mt-go/pkg/wire"

// ChannelMaskSize is the size of a channel bitmap (129 channels).
const ChannelMaskSize = 17

// ChannelMask is a bitmap of channels, channel n at bit n%8 of byte n/8.
type ChannelMask [ChannelMaskSize]byte

// Has returns true if channel ch is set.
func (m ChannelMask) Has(ch uint8) bool {
	if int(ch)/8 >= len(m) {
		return false
	}
	return m[ch/8]&(1<<(ch%8)) != 0
}

// Set marks channel ch.
func (m *ChannelMask) Set(ch uint8) {
	if int(ch)/8 < len(m) {
		m[ch/8] |= 1 << (ch % 8)
	}
}

// Channels lists the set channels in ascending order.
func (m ChannelMask) Channels() []uint8 {
	var out []uint8
	for i := 0; i < len(m)*8; i++ {
		if m.Has(uint8(i)) {
			out = append(out, uint8(i))
		}
	}
	return out
}

// TxOptions are the transmit option flags of a data request.
type TxOptions uint8

const (
	TxOptionAck                TxOptions = 0x01
	TxOptionIndirect           TxOptions = 0x04
	TxOptionPendingBit         TxOptions = 0x08
	TxOptionNoRetransmits      TxOptions = 0x10
	TxOptionNoConfirm          TxOptions = 0x20
	TxOptionUseAltBE           TxOptions = 0x40
	TxOptionUsePowerAndChannel TxOptions = 0x80
)

// CapabilityInfo is the device capability field of an association.
type CapabilityInfo uint8

const (
	CapPANCoordinator CapabilityInfo = 0x01
	CapFFD            CapabilityInfo = 0x02
	CapMainsPower     CapabilityInfo = 0x04
	CapRxOnWhenIdle   CapabilityInfo = 0x08
	CapSecurity       CapabilityInfo = 0x40
	CapAllocAddress   CapabilityInfo = 0x80
)

// ScanType selects the kind of scan.
type ScanType uint8

const (
	ScanEnergyDetect   ScanType = 0
	ScanActive         ScanType = 1
	ScanPassive        ScanType = 2
	ScanOrphan         ScanType = 3
	ScanActiveEnhanced ScanType = 5
)

// StartRequest starts or reconfigures a PAN.
type StartRequest struct {
	StartTime        uint32
	PANID            uint16
	LogicalChannel   uint8
	ChannelPage      uint8
	PhyID            uint8
	BeaconOrder      uint8
	SuperframeOrder  uint8
	PANCoordinator   bool
	BatteryLifeExt   bool
	CoordRealignment bool
	RealignSec       wire.SecurityDescriptor
	BeaconSec        wire.SecurityDescriptor
	StartFH          bool

	// Multi-PHY-layer management (enhanced beacon) parameters.
	EnhancedBeaconOrder    uint8
	OffsetTimeslot         uint8
	NonBeaconEnhancedOrder uint16
	HeaderIEIDs            []uint8
}

// SyncRequest synchronizes with a coordinator's beacons.
type SyncRequest struct {
	LogicalChannel uint8
	ChannelPage    uint8
	TrackBeacon    bool
	PhyID          uint8
}

// DataRequest transmits an MSDU.
type DataRequest struct {
	DstAddr      wire.Address
	DstPANID     uint16
	SrcAddrMode  wire.AddrMode
	MSDUHandle   uint8
	TxOptions    TxOptions
	Channel      uint8
	Power        uint8
	Sec          wire.SecurityDescriptor
	IncludeFHIEs uint32
	MSDU         []byte
	PayloadIEs   []byte
}

// AssociateRequest asks a coordinator for association.
type AssociateRequest struct {
	LogicalChannel uint8
	ChannelPage    uint8
	PhyID          uint8
	CoordAddr      wire.Address
	CoordPANID     uint16
	CapabilityInfo CapabilityInfo
	Sec            wire.SecurityDescriptor
}

// AssociateResponse answers an association indication.
type AssociateResponse struct {
	DeviceAddr wire.ExtAddr
	AssocShort uint16
	Status     wire.Status
	Sec        wire.SecurityDescriptor
}

// DisassociateRequest leaves a PAN or evicts a device.
type DisassociateRequest struct {
	DeviceAddr  wire.Address
	DevicePANID uint16
	Reason      uint8
	TxIndirect  bool
	Sec         wire.SecurityDescriptor
}

// OrphanResponse answers an orphan indication.
type OrphanResponse struct {
	OrphanAddr       wire.ExtAddr
	ShortAddr        uint16
	AssociatedMember bool
	Sec              wire.SecurityDescriptor
}

// ScanRequest starts a channel scan.
type ScanRequest struct {
	ScanType        ScanType
	ScanDuration    uint8
	ChannelPage     uint8
	PhyID           uint8
	MaxResults      uint8
	PermitJoining   bool
	LinkQuality     uint8
	PercentFilter   uint8
	MPMScan         bool
	MPMScanType     uint8
	MPMScanDuration uint16
	Sec             wire.SecurityDescriptor
	Channels        ChannelMask
}

// PollRequest polls a coordinator for pending data.
type PollRequest struct {
	CoordAddr  wire.Address
	CoordPANID uint16
	Sec        wire.SecurityDescriptor
}

// KeyLookupSize is the size of the key id lookup data.
const KeyLookupSize = 9

// KeySize is the size of a security key.
const KeySize = 16

// AddDeviceRequest adds a device to the security device table.
type AddDeviceRequest struct {
	PANID           uint16
	ShortAddr       uint16
	ExtAddr         wire.ExtAddr
	FrameCounter    uint32
	Exempt          bool
	UniqueDevice    bool
	DuplicateDevice bool
	LookupSize      uint8
	LookupData      [KeyLookupSize]byte
}

// WriteKeyRequest writes or replaces a key table entry.
type WriteKeyRequest struct {
	New          bool
	KeyIndex     uint16
	Key          [KeySize]byte
	FrameCounter uint32
	LookupSize   uint8
	LookupData   [KeyLookupSize]byte
}

// ExtAddrType selects which extended address to report.
type ExtAddrType uint8

const (
	ExtAddrPIB        ExtAddrType = 0
	ExtAddrPrimary    ExtAddrType = 1
	ExtAddrUserConfig ExtAddrType = 2
)
